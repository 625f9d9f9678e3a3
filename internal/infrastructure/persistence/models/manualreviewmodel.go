package models

import (
	"time"

	"gorm.io/gorm"
)

// ManualReviewModel is the persistence shape of a per-product manual review.
type ManualReviewModel struct {
	ID          uint    `gorm:"primaryKey"`
	SiteID      string  `gorm:"size:100;not null;uniqueIndex:idx_site_product"`
	ProductID   string  `gorm:"size:100;not null;uniqueIndex:idx_site_product"`
	Rating      float64 `gorm:"not null"`
	ReviewCount int     `gorm:"not null;default:0"`
	DisplayText string  `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ManualReviewModel) TableName() string {
	return "manual_reviews"
}
