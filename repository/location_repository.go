package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brightwood-pta/directorybackend/models"
)

// LocationRepository handles database operations for custom map locations
type LocationRepository struct {
	DB *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

// Create creates a new custom location record in the database
func (r *LocationRepository) Create(location *models.CustomLocation) error {
	if location.CreatedAt == 0 {
		location.CreatedAt = time.Now().Unix()
	}

	err := r.DB.Create(location).Error
	if err != nil {
		return fmt.Errorf("failed to create custom location %s: %w", location.Name, err)
	}
	return nil
}

// GetByID retrieves a custom location by its id
func (r *LocationRepository) GetByID(id string) (*models.CustomLocation, error) {
	var location models.CustomLocation
	err := r.DB.First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get custom location by ID %s: %w", id, err)
	}
	return &location, nil
}

// ListAll retrieves all custom locations, ordered by creation time
func (r *LocationRepository) ListAll() ([]models.CustomLocation, error) {
	var locations []models.CustomLocation
	err := r.DB.Order("created_at ASC").Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custom locations: %w", err)
	}
	return locations, nil
}

// Delete removes a custom location by its id
func (r *LocationRepository) Delete(id string) error {
	result := r.DB.Delete(&models.CustomLocation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete custom location ID %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
