package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteConfigurationModel is the persistence shape of a site configuration.
// Style and fallback settings are stored as JSON documents.
type SiteConfigurationModel struct {
	ID                uint   `gorm:"primaryKey"`
	SiteID            string `gorm:"size:100;not null;uniqueIndex"`
	Plan              string `gorm:"size:20;not null"`
	PreferredProvider string `gorm:"size:20;not null"`
	ManualRating      *float64
	ManualText        string         `gorm:"size:500"`
	FallbackText      string         `gorm:"size:500"`
	Fallback          datatypes.JSON `gorm:"type:json"`
	Style             datatypes.JSON `gorm:"type:json"`
	StoreOwnerEmail   string         `gorm:"size:255"`
	Enabled           bool           `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (SiteConfigurationModel) TableName() string {
	return "site_configurations"
}
