package models

// GeocodeEntry caches one resolved address position using GORM.
// It corresponds to the 'geocode_entries' table. The address string is the
// literal formatted address; formatting variants cache separately.
type GeocodeEntry struct {
	Address     string  `gorm:"primaryKey" json:"address"`
	Latitude    float64 `gorm:"not null" json:"lat"`
	Longitude   float64 `gorm:"not null" json:"lng"`
	IsEstimated bool    `gorm:"not null;default:false" json:"isEstimated"`
	UpdatedAt   int64   `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (GeocodeEntry) TableName() string {
	return "geocode_entries"
}
