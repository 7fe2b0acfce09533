package model

import (
	"fmt"
	"strings"
	"time"
)

// ProposalStatus 企业提案状态机
type ProposalStatus string

const (
	ProposalPending          ProposalStatus = "PENDING"
	ProposalAccepted         ProposalStatus = "ACCEPTED"
	ProposalDeclined         ProposalStatus = "DECLINED"
	ProposalMeetingScheduled ProposalStatus = "MEETING_SCHEDULED"
	ProposalStudentAccepted  ProposalStatus = "STUDENT_ACCEPTED"
	ProposalStudentRejected  ProposalStatus = "STUDENT_REJECTED"
	ProposalPassed           ProposalStatus = "PASSED"
	ProposalFailed           ProposalStatus = "FAILED"
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalPending, ProposalAccepted, ProposalDeclined,
		ProposalMeetingScheduled, ProposalStudentAccepted,
		ProposalStudentRejected, ProposalPassed, ProposalFailed:
		return true
	}
	return false
}

// ParseProposalStatus 解析状态字符串（大小写不敏感），未知值返回错误
func ParseProposalStatus(s string) (ProposalStatus, error) {
	status := ProposalStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("unknown proposal status: %s", s)
	}
	return status, nil
}

// Proposal 企业对某个PFE项目的提案
// swagger:model Proposal
type Proposal struct {
	BaseModel
	StudentID   string         `gorm:"size:64;index" json:"studentId"` // 外部身份系统的学生ID，透传字符串
	CompanyID   string         `gorm:"size:64;index" json:"companyId"` // 外部身份系统的企业ID
	PfeID       uint           `gorm:"index;type:bigint unsigned" json:"pfeId"`
	Pfe         *Pfe           `gorm:"foreignKey:PfeID" json:"-"`
	Status      ProposalStatus `gorm:"size:32;default:'PENDING'" json:"status"`
	RespondedAt *time.Time     `json:"respondedAt,omitempty"`
	Message     string         `gorm:"type:text" json:"message"`

	// 每个提案最多拥有一份技术测试
	TechnicalTest *TechnicalTest `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// ProposalView 读取投影，树状单向结构
type ProposalView struct {
	ID              uint           `json:"id"`
	StudentID       string         `json:"studentId"`
	CompanyID       string         `json:"companyId"`
	PfeID           uint           `json:"pfeId"`
	PfeTitle        string         `json:"pfeTitle,omitempty"`
	Status          ProposalStatus `json:"status"`
	Message         string         `json:"message"`
	CreatedAt       time.Time      `json:"createdAt"`
	RespondedAt     *time.Time     `json:"respondedAt,omitempty"`
	TechnicalTestID *uint          `json:"technicalTestId,omitempty"`
}

// View 构建不含循环引用的投影
func (p *Proposal) View() ProposalView {
	v := ProposalView{
		ID:          p.ID,
		StudentID:   p.StudentID,
		CompanyID:   p.CompanyID,
		PfeID:       p.PfeID,
		Status:      p.Status,
		Message:     p.Message,
		CreatedAt:   p.CreatedAt,
		RespondedAt: p.RespondedAt,
	}
	if p.Pfe != nil {
		v.PfeTitle = p.Pfe.Title
	}
	if p.TechnicalTest != nil {
		id := p.TechnicalTest.ID
		v.TechnicalTestID = &id
	}
	return v
}
