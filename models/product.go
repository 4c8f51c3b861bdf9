package models

import (
	"time"

	"gorm.io/gorm"
)

// Product.ID is the catalogue id assigned by the service, not the storage key.
type Product struct {
	StorageID   uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          int       `gorm:"uniqueIndex;not null" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `gorm:"index" json:"category"`
	NewPrice    float64   `json:"new_price"`
	OldPrice    float64   `json:"old_price"`
	Date        time.Time `json:"date"`
	Available   bool      `json:"available"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return nil
}
