package repository

import (
	"github.com/brightwood-pta/directorybackend/models"
)

// GeocodeRepositoryInterface defines the methods for geocode cache operations
type GeocodeRepositoryInterface interface {
	GetByAddress(address string) (*models.GeocodeEntry, error)
	Upsert(entry *models.GeocodeEntry) error
	ListAll() ([]models.GeocodeEntry, error)
}

// LocationRepositoryInterface defines the methods for custom map location operations
type LocationRepositoryInterface interface {
	Create(location *models.CustomLocation) error
	GetByID(id string) (*models.CustomLocation, error)
	ListAll() ([]models.CustomLocation, error)
	Delete(id string) error
}
