package repository

import (
	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type InternshipOfferRepository struct {
	DB *gorm.DB
}

func NewInternshipOfferRepository(db *gorm.DB) *InternshipOfferRepository {
	return &InternshipOfferRepository{DB: db}
}

func (r *InternshipOfferRepository) Create(offer *model.InternshipOffer) error {
	return r.DB.Create(offer).Error
}

func (r *InternshipOfferRepository) FindByID(id uint) (*model.InternshipOffer, error) {
	var o model.InternshipOffer
	err := r.DB.First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *InternshipOfferRepository) List(page, limit int) ([]model.InternshipOffer, int64, error) {
	var offers []model.InternshipOffer
	var total int64
	query := r.DB.Model(&model.InternshipOffer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&offers).Error
	return offers, total, err
}

func (r *InternshipOfferRepository) ListByCompany(companyID string) ([]model.InternshipOffer, error) {
	var offers []model.InternshipOffer
	err := r.DB.Where("company_id = ?", companyID).Order("created_at desc").Find(&offers).Error
	return offers, err
}

func (r *InternshipOfferRepository) Update(offer *model.InternshipOffer) error {
	return r.DB.Save(offer).Error
}

func (r *InternshipOfferRepository) Delete(id uint) error {
	return r.DB.Delete(&model.InternshipOffer{}, id).Error
}
