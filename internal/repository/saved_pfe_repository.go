package repository

import (
	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type SavedPfeRepository struct {
	DB *gorm.DB
}

func NewSavedPfeRepository(db *gorm.DB) *SavedPfeRepository {
	return &SavedPfeRepository{DB: db}
}

func (r *SavedPfeRepository) Create(saved *model.SavedPfe) error {
	return r.DB.Create(saved).Error
}

func (r *SavedPfeRepository) ListByCompany(companyID string) ([]model.SavedPfe, error) {
	var saved []model.SavedPfe
	err := r.DB.Preload("Pfe").
		Where("company_id = ?", companyID).
		Order("created_at desc").Find(&saved).Error
	return saved, err
}

func (r *SavedPfeRepository) Exists(companyID string, pfeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SavedPfe{}).
		Where("company_id = ? AND pfe_id = ?", companyID, pfeID).
		Count(&count).Error
	return count > 0, err
}

func (r *SavedPfeRepository) Delete(companyID string, pfeID uint) error {
	return r.DB.Where("company_id = ? AND pfe_id = ?", companyID, pfeID).
		Delete(&model.SavedPfe{}).Error
}
