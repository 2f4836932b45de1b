package repositories

import (
	"sort"
	"strings"
	"sync"

	"unikart/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. IDs come from a monotonically increasing counter, so
// an ID is never reused after deletion.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// Create adds a new product, assigning the next free ID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetByName returns a product by its exact name.
func (r *MemoryProductRepository) GetByName(name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// GetAll returns all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedByID(func(models.Product) bool { return true }), nil
}

// Rename updates the name of an existing product.
func (r *MemoryProductRepository) Rename(id uint, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	product.Name = name
	r.products[id] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// GetByPriceGreaterThan returns all products priced strictly above the
// given threshold.
func (r *MemoryProductRepository) GetByPriceGreaterThan(price float64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedByID(func(p models.Product) bool { return p.Price > price }), nil
}

// SearchByName returns all products whose name contains the keyword,
// ignoring case.
func (r *MemoryProductRepository) SearchByName(keyword string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(keyword)
	return r.sortedByID(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lowered)
	}), nil
}

// GetByPriceRange returns all products priced within [minPrice, maxPrice],
// ordered by ascending price.
func (r *MemoryProductRepository) GetByPriceRange(minPrice, maxPrice float64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := r.sortedByID(func(p models.Product) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	})
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price < products[j].Price
	})
	return products, nil
}

// sortedByID collects matching products ordered by ID. Callers must hold
// at least a read lock.
func (r *MemoryProductRepository) sortedByID(match func(models.Product) bool) []models.Product {
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if match(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	return products
}
