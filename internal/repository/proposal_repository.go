package repository

import (
	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type ProposalRepository struct {
	DB *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{DB: db}
}

func (r *ProposalRepository) Create(proposal *model.Proposal) error {
	return r.DB.Create(proposal).Error
}

func (r *ProposalRepository) FindByID(id uint) (*model.Proposal, error) {
	var p model.Proposal
	err := r.DB.Preload("Pfe").Preload("TechnicalTest").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepository) List() ([]model.Proposal, error) {
	var ps []model.Proposal
	err := r.DB.Preload("Pfe").Preload("TechnicalTest").
		Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProposalRepository) ListByCompany(companyID string) ([]model.Proposal, error) {
	var ps []model.Proposal
	err := r.DB.Preload("Pfe").Preload("TechnicalTest").
		Where("company_id = ?", companyID).
		Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProposalRepository) ListByStudent(studentID string) ([]model.Proposal, error) {
	var ps []model.Proposal
	err := r.DB.Preload("Pfe").Preload("TechnicalTest").
		Where("student_id = ?", studentID).
		Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProposalRepository) ListByPfe(pfeID uint) ([]model.Proposal, error) {
	var ps []model.Proposal
	err := r.DB.Preload("TechnicalTest").
		Where("pfe_id = ?", pfeID).
		Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProposalRepository) ExistsByCompanyAndPfe(companyID string, pfeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Proposal{}).
		Where("company_id = ? AND pfe_id = ?", companyID, pfeID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProposalRepository) Update(proposal *model.Proposal) error {
	return r.DB.Save(proposal).Error
}

func (r *ProposalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Proposal{}, id).Error
}
