package service

import (
	"context"
	"errors"
	"time"

	"pfe_service/internal/model"
	"pfe_service/internal/util"
	"pfe_service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProposalStore 提案持久化抽象
type ProposalStore interface {
	Create(proposal *model.Proposal) error
	FindByID(id uint) (*model.Proposal, error)
	List() ([]model.Proposal, error)
	ListByCompany(companyID string) ([]model.Proposal, error)
	ListByStudent(studentID string) ([]model.Proposal, error)
	ListByPfe(pfeID uint) ([]model.Proposal, error)
	Update(proposal *model.Proposal) error
	Delete(id uint) error
}

// PfeFinder 提案创建时校验项目存在
type PfeFinder interface {
	FindByID(id uint) (*model.Pfe, error)
}

// TestCreator 接受提案时的建测入口
type TestCreator interface {
	CreateForProposal(ctx context.Context, proposal *model.Proposal) (*model.TechnicalTest, error)
}

// InvitationSender 面试邀请邮件
type InvitationSender interface {
	SendInterviewInvitation(to string, interviewAt time.Time, message string) error
}

// ProposalService 提案状态机。状态迁移本身不设置禁行表（历史行为如此），
// 只拒绝未知状态字符串；ACCEPTED 迁移额外触发建测。
type ProposalService struct {
	proposals ProposalStore
	pfes      PfeFinder
	tests     TestCreator
	email     InvitationSender
}

func NewProposalService(proposals ProposalStore, pfes PfeFinder, tests TestCreator, email InvitationSender) *ProposalService {
	return &ProposalService{
		proposals: proposals,
		pfes:      pfes,
		tests:     tests,
		email:     email,
	}
}

type ProposalCreateRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	CompanyID string `json:"companyId" binding:"required"`
	PfeID     uint   `json:"pfeId" binding:"required"`
	Message   string `json:"message"`
}

func (s *ProposalService) Create(req *ProposalCreateRequest) (*model.Proposal, error) {
	pfe, err := s.pfes.FindByID(req.PfeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPfeNotFound
		}
		return nil, err
	}

	proposal := &model.Proposal{
		StudentID: req.StudentID,
		CompanyID: req.CompanyID,
		PfeID:     pfe.ID,
		Pfe:       pfe,
		Status:    model.ProposalPending,
		Message:   req.Message,
	}
	if err := s.proposals.Create(proposal); err != nil {
		return nil, err
	}

	logger.Log.Info("Created proposal",
		zap.Uint("proposalId", proposal.ID),
		zap.Uint("pfeId", pfe.ID),
		zap.String("companyId", req.CompanyID))
	return proposal, nil
}

// SetStatus 设置状态并记录响应时间；迁移到 ACCEPTED 时建测并返回测试
func (s *ProposalService) SetStatus(ctx context.Context, id uint, status string) (*model.Proposal, *model.TechnicalTest, error) {
	newStatus, err := model.ParseProposalStatus(status)
	if err != nil {
		return nil, nil, util.ErrInvalidProposalStatus
	}

	proposal, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	proposal.Status = newStatus
	proposal.RespondedAt = &now
	if err := s.proposals.Update(proposal); err != nil {
		return nil, nil, err
	}

	if newStatus == model.ProposalAccepted {
		test, err := s.tests.CreateForProposal(ctx, proposal)
		if err != nil {
			return nil, nil, err
		}
		return proposal, test, nil
	}
	return proposal, nil, nil
}

// AcceptAndCreateTest 接受提案的显式幂等入口：已接受且已有测试时直接返回现有测试
func (s *ProposalService) AcceptAndCreateTest(ctx context.Context, id uint) (*model.Proposal, *model.TechnicalTest, error) {
	proposal, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	if proposal.Status == model.ProposalAccepted && proposal.TechnicalTest != nil {
		logger.Log.Info("Proposal already accepted, returning existing technical test",
			zap.Uint("proposalId", id),
			zap.Uint("technicalTestId", proposal.TechnicalTest.ID))
		return proposal, proposal.TechnicalTest, nil
	}

	now := time.Now()
	proposal.Status = model.ProposalAccepted
	proposal.RespondedAt = &now
	if err := s.proposals.Update(proposal); err != nil {
		return nil, nil, err
	}

	test, err := s.tests.CreateForProposal(ctx, proposal)
	if err != nil {
		return nil, nil, err
	}
	return proposal, test, nil
}

type InterviewRequest struct {
	StudentEmail      string    `json:"studentEmail" binding:"required"`
	InterviewDateTime time.Time `json:"interviewDateTime" binding:"required"`
	Message           string    `json:"message"`
}

// SendInterviewInvitation 邮件成功发出才迁移到 MEETING_SCHEDULED，发送失败中止迁移
func (s *ProposalService) SendInterviewInvitation(ctx context.Context, id uint, companyID string, req *InterviewRequest) error {
	proposal, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if proposal.CompanyID != companyID {
		return util.ErrNotProposalOwner
	}

	if err := s.email.SendInterviewInvitation(req.StudentEmail, req.InterviewDateTime, req.Message); err != nil {
		return err
	}

	now := time.Now()
	proposal.Status = model.ProposalMeetingScheduled
	proposal.RespondedAt = &now
	return s.proposals.Update(proposal)
}

func (s *ProposalService) GetByID(id uint) (*model.Proposal, error) {
	proposal, err := s.proposals.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProposalNotFound
		}
		return nil, err
	}
	return proposal, nil
}

func (s *ProposalService) GetAll() ([]model.Proposal, error) {
	return s.proposals.List()
}

func (s *ProposalService) GetByCompanyID(companyID string) ([]model.Proposal, error) {
	return s.proposals.ListByCompany(companyID)
}

func (s *ProposalService) GetByStudentID(studentID string) ([]model.Proposal, error) {
	return s.proposals.ListByStudent(studentID)
}

func (s *ProposalService) GetByPfeID(pfeID uint) ([]model.Proposal, error) {
	return s.proposals.ListByPfe(pfeID)
}

func (s *ProposalService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.proposals.Delete(id)
}
