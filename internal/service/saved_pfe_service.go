package service

import (
	"errors"

	"pfe_service/internal/model"
	"pfe_service/internal/repository"
	"pfe_service/internal/util"

	"gorm.io/gorm"
)

// SavedPfeService 企业收藏夹
type SavedPfeService struct {
	repo    *repository.SavedPfeRepository
	pfeRepo *repository.PfeRepository
}

func NewSavedPfeService(repo *repository.SavedPfeRepository, pfeRepo *repository.PfeRepository) *SavedPfeService {
	return &SavedPfeService{repo: repo, pfeRepo: pfeRepo}
}

func (s *SavedPfeService) Save(companyID string, pfeID uint) (*model.SavedPfe, error) {
	if _, err := s.pfeRepo.FindByID(pfeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPfeNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(companyID, pfeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrPfeAlreadySaved
	}

	saved := &model.SavedPfe{CompanyID: companyID, PfeID: pfeID}
	if err := s.repo.Create(saved); err != nil {
		// (company_id, pfe_id) 唯一索引兜底并发重复收藏
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrPfeAlreadySaved
		}
		return nil, err
	}
	return saved, nil
}

func (s *SavedPfeService) Unsave(companyID string, pfeID uint) error {
	return s.repo.Delete(companyID, pfeID)
}

func (s *SavedPfeService) GetByCompanyID(companyID string) ([]model.SavedPfe, error) {
	return s.repo.ListByCompany(companyID)
}

func (s *SavedPfeService) IsSaved(companyID string, pfeID uint) (bool, error) {
	return s.repo.Exists(companyID, pfeID)
}
