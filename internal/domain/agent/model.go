package agent

import (
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
)

// Agent is a sales agent in the back-office directory
type Agent struct {
	ID            string         `json:"id" gorm:"column:id;primaryKey"`
	Name          string         `json:"name" gorm:"column:name;size:100;not null"`
	Email         string         `json:"email" gorm:"column:email;not null"`
	Phone         string         `json:"phone,omitempty" gorm:"column:phone"`
	LicenseNumber string         `json:"license_number,omitempty" gorm:"column:license_number"`
	AgencyName    string         `json:"agency_name,omitempty" gorm:"column:agency_name;index"`
	PhotoFileID   string         `json:"photo_file_id,omitempty" gorm:"column:photo_file_id"`
	Metadata      types.Metadata `json:"metadata,omitempty" gorm:"column:metadata;type:jsonb"`

	types.BaseModel
}

func (Agent) TableName() string {
	return "agents"
}
