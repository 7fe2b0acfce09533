package service

import (
	"errors"

	"pfe_service/internal/model"
	"pfe_service/internal/repository"
	"pfe_service/internal/util"

	"gorm.io/gorm"
)

// StudentInterestService 学生对实习岗位的意向管理
type StudentInterestService struct {
	repo      *repository.StudentInterestRepository
	offerRepo *repository.InternshipOfferRepository
}

func NewStudentInterestService(repo *repository.StudentInterestRepository, offerRepo *repository.InternshipOfferRepository) *StudentInterestService {
	return &StudentInterestService{repo: repo, offerRepo: offerRepo}
}

func (s *StudentInterestService) Create(interest *model.StudentInterest) (*model.StudentInterest, error) {
	if _, err := s.offerRepo.FindByID(interest.InternshipOfferID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrOfferNotFound
		}
		return nil, err
	}

	// 同一学生对同一岗位重复表达意向时直接返回已有记录
	if existing, err := s.repo.FindByStudentAndOffer(interest.StudentID, interest.InternshipOfferID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.Create(interest); err != nil {
		return nil, err
	}
	return interest, nil
}

func (s *StudentInterestService) Update(id uint, update *model.StudentInterest) (*model.StudentInterest, error) {
	interest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	interest.HasProposal = update.HasProposal
	interest.ProposalAccepted = update.ProposalAccepted
	if err := s.repo.Update(interest); err != nil {
		return nil, err
	}
	return interest, nil
}

func (s *StudentInterestService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *StudentInterestService) GetByID(id uint) (*model.StudentInterest, error) {
	interest, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterestNotFound
		}
		return nil, err
	}
	return interest, nil
}

func (s *StudentInterestService) GetByStudentID(studentID string) ([]model.StudentInterest, error) {
	return s.repo.ListByStudent(studentID)
}

func (s *StudentInterestService) GetByOfferID(offerID uint) ([]model.StudentInterest, error) {
	return s.repo.ListByOffer(offerID)
}
