package model

// InternshipOffer 企业发布的实习岗位
// swagger:model InternshipOffer
type InternshipOffer struct {
	BaseModel
	Title                string         `gorm:"size:255;not null" json:"title"`
	Description          string         `gorm:"type:text" json:"description"`
	CompanyID            string         `gorm:"size:64;index" json:"companyId"`
	RequiredTechnologies TechnologyList `gorm:"type:json" json:"requiredTechnologies"`

	InterestedStudents []StudentInterest `gorm:"foreignKey:InternshipOfferID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InternshipOffer) TableName() string {
	return "internship_offers"
}
