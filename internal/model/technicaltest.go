package model

import "time"

// TechnicalTest 提案被接受时生成的技术测试，由提案独占拥有
// swagger:model TechnicalTest
type TechnicalTest struct {
	BaseModel
	// 提案与测试一对一，唯一索引同时挡住并发重复建测
	ProposalID       uint           `gorm:"uniqueIndex;type:bigint unsigned" json:"proposalId"`
	Title            string         `gorm:"size:255" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Deadline         time.Time      `json:"deadline"`
	FinishedAt       *time.Time     `json:"finishedAt,omitempty"`
	TimeSpentSeconds *int64         `json:"timeSpent,omitempty"`
	Cheated          bool           `gorm:"default:false" json:"cheated"`
	IsCompleted      bool           `gorm:"default:false" json:"isCompleted"`
	Score            int            `gorm:"default:0" json:"score"` // 0-100
	Technologies     TechnologyList `gorm:"type:json" json:"technologies"`
	Questions        []Question     `gorm:"foreignKey:TechnicalTestID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (TechnicalTest) TableName() string {
	return "technical_tests"
}

// TechnicalTestView 读取投影
type TechnicalTestView struct {
	ID               uint           `json:"id"`
	ProposalID       uint           `json:"proposalId"`
	CompanyID        string         `json:"companyId,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	CreatedAt        time.Time      `json:"createdAt"`
	Deadline         time.Time      `json:"deadline"`
	FinishedAt       *time.Time     `json:"finishedAt,omitempty"`
	TimeSpentSeconds *int64         `json:"timeSpent,omitempty"`
	Cheated          bool           `json:"cheated"`
	IsCompleted      bool           `json:"isCompleted"`
	Score            int            `json:"score"`
	Technologies     TechnologyList `json:"technologies"`
	Questions        []QuestionView `json:"questions,omitempty"`
}

// View 构建测试投影；完成后的测试附带答案复盘字段
func (t *TechnicalTest) View(companyID string, withQuestions bool) TechnicalTestView {
	v := TechnicalTestView{
		ID:               t.ID,
		ProposalID:       t.ProposalID,
		CompanyID:        companyID,
		Title:            t.Title,
		Description:      t.Description,
		CreatedAt:        t.CreatedAt,
		Deadline:         t.Deadline,
		FinishedAt:       t.FinishedAt,
		TimeSpentSeconds: t.TimeSpentSeconds,
		Cheated:          t.Cheated,
		IsCompleted:      t.IsCompleted,
		Score:            t.Score,
		Technologies:     t.Technologies,
	}
	if withQuestions {
		v.Questions = make([]QuestionView, len(t.Questions))
		for i := range t.Questions {
			v.Questions[i] = t.Questions[i].View(t.IsCompleted)
		}
	}
	return v
}
