package repository

import (
	"pfe_service/internal/model"

	"gorm.io/gorm"
)

type TechnicalTestRepository struct {
	DB *gorm.DB
}

func NewTechnicalTestRepository(db *gorm.DB) *TechnicalTestRepository {
	return &TechnicalTestRepository{DB: db}
}

func (r *TechnicalTestRepository) Create(test *model.TechnicalTest) error {
	return r.DB.Create(test).Error
}

func (r *TechnicalTestRepository) FindByID(id uint) (*model.TechnicalTest, error) {
	var t model.TechnicalTest
	err := r.DB.Preload("Questions").First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicalTestRepository) FindByProposalID(proposalID uint) (*model.TechnicalTest, error) {
	var t model.TechnicalTest
	err := r.DB.Preload("Questions").Where("proposal_id = ?", proposalID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TechnicalTestRepository) ListByStudent(studentID string) ([]model.TechnicalTest, error) {
	var ts []model.TechnicalTest
	err := r.DB.Preload("Questions").
		Joins("JOIN proposals ON proposals.id = technical_tests.proposal_id").
		Where("proposals.student_id = ? AND proposals.deleted_at IS NULL", studentID).
		Order("technical_tests.created_at desc").
		Find(&ts).Error
	return ts, err
}

func (r *TechnicalTestRepository) ListByCompany(companyID string) ([]model.TechnicalTest, error) {
	var ts []model.TechnicalTest
	err := r.DB.Preload("Questions").
		Joins("JOIN proposals ON proposals.id = technical_tests.proposal_id").
		Where("proposals.company_id = ? AND proposals.deleted_at IS NULL", companyID).
		Order("technical_tests.created_at desc").
		Find(&ts).Error
	return ts, err
}

// Complete 以 is_completed = 0 为条件的单事务提交，竞态下只有一个提交生效。
// 返回 false 表示测试已被完成，本次提交未落库。
func (r *TechnicalTestRepository) Complete(test *model.TechnicalTest) (bool, error) {
	committed := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TechnicalTest{}).
			Where("id = ? AND is_completed = ?", test.ID, false).
			Updates(map[string]interface{}{
				"is_completed":       true,
				"score":              test.Score,
				"finished_at":        test.FinishedAt,
				"time_spent_seconds": test.TimeSpentSeconds,
				"cheated":            test.Cheated,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		for i := range test.Questions {
			q := &test.Questions[i]
			if err := tx.Model(&model.Question{}).
				Where("id = ?", q.ID).
				Updates(map[string]interface{}{
					"user_answer": q.UserAnswer,
					"is_correct":  q.IsCorrect,
				}).Error; err != nil {
				return err
			}
		}
		committed = true
		return nil
	})
	return committed, err
}

func (r *TechnicalTestRepository) Update(test *model.TechnicalTest) error {
	return r.DB.Save(test).Error
}

func (r *TechnicalTestRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TechnicalTest{}, id).Error
}
