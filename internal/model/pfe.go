package model

import "time"

// OpenFor 项目开放类型
type OpenFor string

const (
	OpenForPFE        OpenFor = "PFE"
	OpenForInternship OpenFor = "INTERNSHIP"
	OpenForBoth       OpenFor = "BOTH"
)

func (o OpenFor) IsValid() bool {
	switch o {
	case OpenForPFE, OpenForInternship, OpenForBoth:
		return true
	}
	return false
}

// Pfe 学生发布的毕业设计项目（final-year project）
// swagger:model Pfe
type Pfe struct {
	BaseModel
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	RapportKey   string         `gorm:"type:text" json:"-"` // 对象存储key，对外只暴露预签名URL
	GithubURL    string         `gorm:"type:text" json:"githubUrl"`
	VideoURL     string         `gorm:"type:text" json:"videoUrl"`
	Processing   bool           `gorm:"default:false" json:"processing"`
	Technologies TechnologyList `gorm:"type:json" json:"technologies"`
	OpenFor      OpenFor        `gorm:"size:20" json:"openFor"`
	StudentID    string         `gorm:"size:64;index" json:"studentId"`

	Proposals []Proposal `gorm:"foreignKey:PfeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pfe) TableName() string {
	return "pfes"
}

// PfeView 读取投影：RapportURL为预签名下载地址，不带持久化实体的反向引用
type PfeView struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	RapportURL   string         `json:"rapportUrl,omitempty"`
	GithubURL    string         `json:"githubUrl"`
	VideoURL     string         `json:"videoUrl"`
	Processing   bool           `json:"processing"`
	Technologies TechnologyList `json:"technologies"`
	OpenFor      OpenFor        `json:"openFor"`
	StudentID    string         `json:"studentId"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
