package repository

import (
	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type StudentInterestRepository struct {
	DB *gorm.DB
}

func NewStudentInterestRepository(db *gorm.DB) *StudentInterestRepository {
	return &StudentInterestRepository{DB: db}
}

func (r *StudentInterestRepository) Create(interest *model.StudentInterest) error {
	return r.DB.Create(interest).Error
}

func (r *StudentInterestRepository) FindByID(id uint) (*model.StudentInterest, error) {
	var si model.StudentInterest
	err := r.DB.First(&si, id).Error
	if err != nil {
		return nil, err
	}
	return &si, nil
}

func (r *StudentInterestRepository) FindByStudentAndOffer(studentID string, offerID uint) (*model.StudentInterest, error) {
	var si model.StudentInterest
	err := r.DB.Where("student_id = ? AND internship_offer_id = ?", studentID, offerID).First(&si).Error
	if err != nil {
		return nil, err
	}
	return &si, nil
}

func (r *StudentInterestRepository) ListByOffer(offerID uint) ([]model.StudentInterest, error) {
	var sis []model.StudentInterest
	err := r.DB.Where("internship_offer_id = ?", offerID).Order("created_at desc").Find(&sis).Error
	return sis, err
}

func (r *StudentInterestRepository) ListByStudent(studentID string) ([]model.StudentInterest, error) {
	var sis []model.StudentInterest
	err := r.DB.Where("student_id = ?", studentID).Order("created_at desc").Find(&sis).Error
	return sis, err
}

func (r *StudentInterestRepository) Update(interest *model.StudentInterest) error {
	return r.DB.Save(interest).Error
}

func (r *StudentInterestRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudentInterest{}, id).Error
}
