package repositories

import (
	"errors"
	"fmt"

	"unikart/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. The database assigns the ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves a single product by its exact name.
func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by name %s: %w", name, err)
	}
	return &product, nil
}

// GetAll retrieves all products in insertion order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Rename updates the name of an existing product.
func (r *GORMProductRepository) Rename(id uint, name string) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return fmt.Errorf("failed to rename product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM does not return ErrRecordNotFound for updates that match
		// nothing, so we check RowsAffected.
		return ErrProductNotFound
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GetByPriceGreaterThan retrieves all products priced strictly above the
// given threshold.
func (r *GORMProductRepository) GetByPriceGreaterThan(price float64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price > ?", price).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products above price %.2f: %w", price, err)
	}
	return products, nil
}

// SearchByName retrieves all products whose name contains the keyword,
// ignoring case.
func (r *GORMProductRepository) SearchByName(keyword string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + keyword + "%"
	if err := r.db.Where("lower(name) LIKE lower(?)", pattern).Order("id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", keyword, err)
	}
	return products, nil
}

// GetByPriceRange retrieves all products priced between minPrice and
// maxPrice inclusive, ordered by ascending price.
func (r *GORMProductRepository) GetByPriceRange(minPrice, maxPrice float64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("price BETWEEN ? AND ?", minPrice, maxPrice).Order("price asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in price range [%.2f, %.2f]: %w", minPrice, maxPrice, err)
	}
	return products, nil
}
