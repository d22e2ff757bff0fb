package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteVisit is one tracked page view on a tenant's public booking page.
type SiteVisit struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID string `gorm:"type:uuid;index;not null" json:"tenant_id"`

	PagePath  string `gorm:"size:255" json:"page_path"`
	Referrer  string `gorm:"size:255" json:"referrer"`
	UserAgent string `gorm:"size:512" json:"user_agent"`

	SessionID string `gorm:"size:36;index" json:"session_id"`
	VisitorID string `gorm:"size:36;index" json:"visitor_id"`

	DeviceType string `gorm:"size:10" json:"device_type"`
	Browser    string `gorm:"size:20" json:"browser"`
	OS         string `gorm:"size:20" json:"os"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (v *SiteVisit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
