package repository

import (
	"time"

	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type PfeRepository struct {
	DB *gorm.DB
}

func NewPfeRepository(db *gorm.DB) *PfeRepository {
	return &PfeRepository{DB: db}
}

func (r *PfeRepository) Create(pfe *model.Pfe) error {
	return r.DB.Create(pfe).Error
}

func (r *PfeRepository) FindByID(id uint) (*model.Pfe, error) {
	var pfe model.Pfe
	err := r.DB.First(&pfe, id).Error
	if err != nil {
		return nil, err
	}
	return &pfe, nil
}

func (r *PfeRepository) List() ([]model.Pfe, error) {
	var pfes []model.Pfe
	err := r.DB.Order("created_at desc").Find(&pfes).Error
	return pfes, err
}

// PfeFilter 列表筛选条件，零值字段不参与过滤
type PfeFilter struct {
	Keyword       string
	Technologies  []model.Technology
	OpenFor       model.OpenFor
	StudentID     string
	Processing    *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}

// Filter technologies 过滤在JSON列上做包含匹配
func (r *PfeRepository) Filter(f PfeFilter) ([]model.Pfe, error) {
	query := r.DB.Model(&model.Pfe{})

	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	for _, t := range f.Technologies {
		query = query.Where("JSON_CONTAINS(technologies, JSON_QUOTE(?))", string(t))
	}
	if f.OpenFor != "" {
		query = query.Where("open_for = ?", f.OpenFor)
	}
	if f.StudentID != "" {
		query = query.Where("student_id = ?", f.StudentID)
	}
	if f.Processing != nil {
		query = query.Where("processing = ?", *f.Processing)
	}
	if f.CreatedAfter != nil {
		query = query.Where("created_at > ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		query = query.Where("created_at < ?", *f.CreatedBefore)
	}
	if f.UpdatedAfter != nil {
		query = query.Where("updated_at > ?", *f.UpdatedAfter)
	}
	if f.UpdatedBefore != nil {
		query = query.Where("updated_at < ?", *f.UpdatedBefore)
	}

	var pfes []model.Pfe
	err := query.Order("created_at desc").Find(&pfes).Error
	return pfes, err
}

func (r *PfeRepository) ListByStudent(studentID string) ([]model.Pfe, error) {
	var pfes []model.Pfe
	err := r.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&pfes).Error
	return pfes, err
}

func (r *PfeRepository) Update(pfe *model.Pfe) error {
	return r.DB.Save(pfe).Error
}

func (r *PfeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Pfe{}, id).Error
}
