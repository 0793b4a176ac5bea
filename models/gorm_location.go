package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomLocation is a user-added map pin (a carpool stop, a practice field)
// using GORM. It corresponds to the 'custom_locations' table.
type CustomLocation struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `gorm:"not null" json:"address"`
	Latitude  float64 `gorm:"not null" json:"lat"`
	Longitude float64 `gorm:"not null" json:"lng"`
	CreatedAt int64   `gorm:"not null" json:"created_at"` // Unix timestamp
}

// BeforeCreate generates a unique id if not provided.
func (cl *CustomLocation) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == "" {
		cl.ID = uuid.New().String()
	}
	return
}

// TableName explicitly sets the table name for GORM.
func (CustomLocation) TableName() string {
	return "custom_locations"
}
