package service

import (
	"errors"

	"pfe_service/internal/model"
	"pfe_service/internal/repository"
	"pfe_service/internal/util"

	"gorm.io/gorm"
)

// InternshipOfferService 实习岗位CRUD
type InternshipOfferService struct {
	repo *repository.InternshipOfferRepository
}

func NewInternshipOfferService(repo *repository.InternshipOfferRepository) *InternshipOfferService {
	return &InternshipOfferService{repo: repo}
}

func (s *InternshipOfferService) Create(offer *model.InternshipOffer) (*model.InternshipOffer, error) {
	offer.RequiredTechnologies = offer.RequiredTechnologies.Dedup()
	if err := s.repo.Create(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *InternshipOfferService) Update(id uint, update *model.InternshipOffer) (*model.InternshipOffer, error) {
	offer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != "" {
		offer.Title = update.Title
	}
	if update.Description != "" {
		offer.Description = update.Description
	}
	if len(update.RequiredTechnologies) > 0 {
		offer.RequiredTechnologies = update.RequiredTechnologies.Dedup()
	}
	if err := s.repo.Update(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *InternshipOfferService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *InternshipOfferService) GetByID(id uint) (*model.InternshipOffer, error) {
	offer, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *InternshipOfferService) GetAll(page, limit int) ([]model.InternshipOffer, int64, error) {
	return s.repo.List(page, limit)
}

func (s *InternshipOfferService) GetByCompanyID(companyID string) ([]model.InternshipOffer, error) {
	return s.repo.ListByCompany(companyID)
}
