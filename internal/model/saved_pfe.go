package model

// SavedPfe 企业收藏的PFE项目
// swagger:model SavedPfe
type SavedPfe struct {
	BaseModel
	CompanyID string `gorm:"size:64;index;uniqueIndex:idx_saved_company_pfe" json:"companyId"`
	PfeID     uint   `gorm:"type:bigint unsigned;uniqueIndex:idx_saved_company_pfe" json:"pfeId"`
	Pfe       *Pfe   `gorm:"foreignKey:PfeID" json:"pfe,omitempty"`
}

func (SavedPfe) TableName() string {
	return "saved_pfes"
}
