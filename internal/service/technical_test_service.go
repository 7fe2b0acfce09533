package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pfe_service/internal/model"
	"pfe_service/internal/util"
	"pfe_service/pkg/logger"
	"pfe_service/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestDeadlineDays 测试创建后的作答期限
const TestDeadlineDays = 7

// TechnicalTestStore 测试持久化抽象
type TechnicalTestStore interface {
	Create(test *model.TechnicalTest) error
	FindByID(id uint) (*model.TechnicalTest, error)
	FindByProposalID(proposalID uint) (*model.TechnicalTest, error)
	ListByStudent(studentID string) ([]model.TechnicalTest, error)
	ListByCompany(companyID string) ([]model.TechnicalTest, error)
	Complete(test *model.TechnicalTest) (bool, error)
	Delete(id uint) error
}

// QuestionGenerator 题目生成抽象
type QuestionGenerator interface {
	Generate(ctx context.Context, technologies []model.Technology, description string) []model.Question
}

// AnswerVerifier 开放题判卷抽象
type AnswerVerifier interface {
	Verify(ctx context.Context, correctAnswer, studentAnswer, questionText string) bool
}

// TechnicalTestService 测试生命周期编排：接受提案时建测，提交时判卷计分
type TechnicalTestService struct {
	testStore TechnicalTestStore
	generator QuestionGenerator
	verifier  AnswerVerifier
}

func NewTechnicalTestService(testStore TechnicalTestStore, generator QuestionGenerator, verifier AnswerVerifier) *TechnicalTestService {
	return &TechnicalTestService{
		testStore: testStore,
		generator: generator,
		verifier:  verifier,
	}
}

// CreateForProposal 为接受的提案建测，幂等：已有测试直接返回，不重复生成。
// 并发接受同一提案时由 proposal_id 唯一索引兜底，撞索引后改读已有测试。
func (s *TechnicalTestService) CreateForProposal(ctx context.Context, proposal *model.Proposal) (*model.TechnicalTest, error) {
	existing, err := s.testStore.FindByProposalID(proposal.ID)
	if err == nil {
		logger.Log.Info("Proposal already owns a technical test, returning existing",
			zap.Uint("proposalId", proposal.ID),
			zap.Uint("technicalTestId", existing.ID))
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if proposal.Pfe == nil {
		return nil, fmt.Errorf("proposal %d has no associated pfe", proposal.ID)
	}

	technologies := proposal.Pfe.Technologies.Dedup()
	questions := s.generator.Generate(ctx, technologies, proposal.Pfe.Description)

	now := time.Now()
	test := &model.TechnicalTest{
		ProposalID:   proposal.ID,
		Title:        "Technical Test for " + proposal.Pfe.Title,
		Description:  "This technical test is based on the PFE: " + proposal.Pfe.Title,
		Deadline:     now.Add(TestDeadlineDays * 24 * time.Hour),
		IsCompleted:  false,
		Score:        0,
		Technologies: technologies,
		Questions:    questions,
	}

	if err := s.testStore.Create(test); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.testStore.FindByProposalID(proposal.ID)
		}
		return nil, err
	}

	logger.Log.Info("Created technical test",
		zap.Uint("proposalId", proposal.ID),
		zap.Uint("technicalTestId", test.ID),
		zap.Int("questions", len(test.Questions)))
	return test, nil
}

type QuestionAnswer struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}

type TestSubmissionRequest struct {
	TechnicalTestID  uint             `json:"technicalTestId" binding:"required"`
	Answers          []QuestionAnswer `json:"answers"`
	TimeSpentSeconds *int64           `json:"timeSpent"`
	Cheated          *bool            `json:"cheated"`
}

// Submit 单次提交判卷。选择题精确匹配（大小写敏感），开放题走语义判卷，
// 判卷出错一律判对。完成标记用 is_completed 条件更新落库，并发重复提交只有一次生效。
func (s *TechnicalTestService) Submit(ctx context.Context, req *TestSubmissionRequest) (*model.TechnicalTest, error) {
	test, err := s.testStore.FindByID(req.TechnicalTestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTechnicalTestNotFound
		}
		return nil, err
	}

	if test.IsCompleted {
		return nil, util.ErrTestAlreadyCompleted
	}
	if len(req.Answers) == 0 {
		return nil, util.ErrNoAnswersProvided
	}

	answerMap := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		answerMap[a.QuestionID] = a.Answer
	}

	earnedPoints := 0
	totalPoints := 0
	for i := range test.Questions {
		q := &test.Questions[i]
		userAnswer := answerMap[q.ID]
		q.UserAnswer = &userAnswer
		totalPoints += q.Points

		var correct bool
		if q.IsMultipleChoice {
			correct = userAnswer == q.CorrectAnswer
		} else {
			correct = s.verifier.Verify(ctx, q.CorrectAnswer, userAnswer, q.Text)
		}
		q.IsCorrect = &correct
		if correct {
			earnedPoints += q.Points
		}
	}

	now := time.Now()
	test.IsCompleted = true
	test.FinishedAt = &now
	test.TimeSpentSeconds = req.TimeSpentSeconds
	test.Cheated = req.Cheated != nil && *req.Cheated

	if totalPoints > 0 {
		test.Score = earnedPoints * 100 / totalPoints
	} else {
		test.Score = 0
	}

	committed, err := s.testStore.Complete(test)
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, util.ErrTestAlreadyCompleted
	}

	monitoring.TestSubmissionCounter.Inc()
	logger.Log.Info("Technical test submitted",
		zap.Uint("technicalTestId", test.ID),
		zap.Int("score", test.Score))
	return test, nil
}

func (s *TechnicalTestService) GetByID(id uint) (*model.TechnicalTest, error) {
	test, err := s.testStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTechnicalTestNotFound
		}
		return nil, err
	}
	return test, nil
}

func (s *TechnicalTestService) GetByStudentID(studentID string) ([]model.TechnicalTest, error) {
	return s.testStore.ListByStudent(studentID)
}

func (s *TechnicalTestService) GetByCompanyID(companyID string) ([]model.TechnicalTest, error) {
	return s.testStore.ListByCompany(companyID)
}

func (s *TechnicalTestService) Delete(id uint) error {
	return s.testStore.Delete(id)
}
