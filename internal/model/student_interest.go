package model

// StudentInterest 学生对实习岗位的意向记录
// swagger:model StudentInterest
type StudentInterest struct {
	BaseModel
	StudentID         string `gorm:"size:64;index" json:"studentId"`
	InternshipOfferID uint   `gorm:"index;type:bigint unsigned" json:"internshipOfferId"`
	HasProposal       bool   `gorm:"default:false" json:"hasProposal"`
	ProposalAccepted  bool   `gorm:"default:false" json:"proposalAccepted"`
}

func (StudentInterest) TableName() string {
	return "student_interests"
}
