package repositories

import (
	"errors"

	"unikart/internal/models"
)

// ErrProductNotFound is returned by lookups when no product matches.
// Implementations map their engine-specific "no rows" result onto it so
// callers can use errors.Is without knowing the storage engine.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Rename(id uint, name string) error
	Delete(id uint) error
	GetByPriceGreaterThan(price float64) ([]models.Product, error)
	SearchByName(keyword string) ([]models.Product, error)
	GetByPriceRange(minPrice, maxPrice float64) ([]models.Product, error)
}
