package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brightwood-pta/directorybackend/models"
)

// GeocodeRepository handles database operations for cached address positions
type GeocodeRepository struct {
	DB *gorm.DB
}

// NewGeocodeRepository creates a new instance of GeocodeRepository
func NewGeocodeRepository(db *gorm.DB) *GeocodeRepository {
	return &GeocodeRepository{DB: db}
}

// GetByAddress retrieves the cached entry for a literal formatted address
func (r *GeocodeRepository) GetByAddress(address string) (*models.GeocodeEntry, error) {
	var entry models.GeocodeEntry
	err := r.DB.First(&entry, "address = ?", address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get geocode entry for %s: %w", address, err)
	}
	return &entry, nil
}

// Upsert inserts or replaces the cached position for an address
func (r *GeocodeRepository) Upsert(entry *models.GeocodeEntry) error {
	entry.UpdatedAt = time.Now().Unix()
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		UpdateAll: true,
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert geocode entry for %s: %w", entry.Address, err)
	}
	return nil
}

// ListAll retrieves every cached entry, ordered by address
func (r *GeocodeRepository) ListAll() ([]models.GeocodeEntry, error) {
	var entries []models.GeocodeEntry
	err := r.DB.Order("address ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list geocode entries: %w", err)
	}
	return entries, nil
}
