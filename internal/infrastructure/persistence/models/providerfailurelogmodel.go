package models

import "time"

// ProviderFailureLogModel is the append-only persistence shape of a provider
// failure. Rows are never updated except for the notified flag.
type ProviderFailureLogModel struct {
	ID           uint   `gorm:"primaryKey"`
	SiteID       string `gorm:"size:100;not null;index"`
	ProductID    string `gorm:"size:100"`
	ProviderType string `gorm:"size:20;not null"`
	ErrorMessage string `gorm:"size:1000"`
	Notified     bool   `gorm:"not null;default:false;index"`
	OccurredAt   time.Time `gorm:"index"`
}

func (ProviderFailureLogModel) TableName() string {
	return "provider_failure_logs"
}
