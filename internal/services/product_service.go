package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"unikart/internal/models"
	"unikart/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Violation messages for the product constraints.
const (
	msgNameRequired        = "Product name is required."
	msgDescriptionRequired = "Product description is required."
	msgPriceRequired       = "Product price is required."
	msgPriceNegative       = "Product price must be greater than or equal to 0."
	msgImageURLRequired    = "Product image URL is required."
	msgImageURLInvalid     = "Please provide a valid image URL for the product image."
)

// EventPublisher publishes catalog events to a message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductService handles business logic related to products: candidate
// validation, name uniqueness, lookups, rename and delete.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher // may be nil; events are best-effort
	validate  *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	v := validator.New()
	// "required" treats whitespace-only strings as present, so blank text
	// fields get their own rule.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// A usable image URL needs at least a scheme and a host.
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		return err == nil && u.Scheme != "" && u.Host != ""
	})

	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  v,
	}
}

// validateCandidate evaluates every field constraint and returns the full
// list of violations. Validation never stops at the first failure.
func (s *ProductService) validateCandidate(candidate *models.ProductCandidate) []string {
	err := s.validate.Struct(candidate)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.StructField() {
		case "Name":
			violations = append(violations, msgNameRequired)
		case "Description":
			violations = append(violations, msgDescriptionRequired)
		case "Price":
			if fe.Tag() == "required" {
				violations = append(violations, msgPriceRequired)
			} else {
				violations = append(violations, msgPriceNegative)
			}
		case "ImageURL":
			if fe.Tag() == "notblank" {
				violations = append(violations, msgImageURLRequired)
			} else {
				violations = append(violations, msgImageURLInvalid)
			}
		}
	}
	return violations
}

// CreateProduct validates the candidate, enforces name uniqueness among
// currently stored products, and persists it. The returned product carries
// the store-assigned ID.
//
// The uniqueness check and the insert are two separate store calls; two
// concurrent creates with the same name can both pass the check. There is
// no unique index backing it up.
func (s *ProductService) CreateProduct(candidate *models.ProductCandidate) (*models.Product, error) {
	if violations := s.validateCandidate(candidate); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	existing, err := s.repo.GetByName(candidate.Name)
	if err != nil && !errors.Is(err, repositories.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check product name %q: %w", candidate.Name, err)
	}
	if existing != nil {
		return nil, &ValidationError{
			Violations: []string{fmt.Sprintf("Product name '%s' already exists.", candidate.Name)},
		}
	}

	product := &models.Product{
		Name:        candidate.Name,
		Description: candidate.Description,
		Price:       *candidate.Price,
		ImageURL:    candidate.ImageURL,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// GetAllProducts retrieves all products in insertion order. An empty
// catalog is reported as a NotFoundError; that is the documented contract,
// not an empty list.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	if len(products) == 0 {
		return nil, &NotFoundError{Message: "no products found in the catalog"}
	}
	return products, nil
}

// GetProductByName retrieves a single product by its exact name.
func (s *ProductService) GetProductByName(name string) (*models.Product, error) {
	product, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("product with name '%s' not found", name)}
		}
		return nil, fmt.Errorf("failed to get product by name %q: %w", name, err)
	}
	return product, nil
}

// UpdateProductName renames an existing product. The new name must be
// non-blank and must not be held by a different product; renaming a
// product to its current name succeeds.
func (s *ProductService) UpdateProductName(id uint, newName string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("product with ID %d not found", id)}
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	if strings.TrimSpace(newName) == "" {
		return nil, &ValidationError{Violations: []string{msgNameRequired}}
	}

	existing, err := s.repo.GetByName(newName)
	if err != nil && !errors.Is(err, repositories.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check product name %q: %w", newName, err)
	}
	if existing != nil && existing.ID != id {
		return nil, &ValidationError{
			Violations: []string{fmt.Sprintf("Product name '%s' already exists.", newName)},
		}
	}

	if err := s.repo.Rename(id, newName); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("product with ID %d not found", id)}
		}
		return nil, fmt.Errorf("failed to rename product %d: %w", id, err)
	}

	product.Name = newName
	s.publishEvent("product.renamed", product)
	return product, nil
}

// DeleteProduct removes a product by its ID. A deleted product's name may
// be reused by a later create.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return &NotFoundError{Message: fmt.Sprintf("product with ID %d not found", id)}
		}
		return fmt.Errorf("failed to get product %d: %w", id, err)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return &NotFoundError{Message: fmt.Sprintf("product with ID %d not found", id)}
		}
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	s.publishEvent("product.deleted", product)
	return nil
}

// GetProductsAbovePrice retrieves all products priced strictly above the
// given threshold. An empty result is an empty list, not an error.
func (s *ProductService) GetProductsAbovePrice(price float64) ([]models.Product, error) {
	return s.repo.GetByPriceGreaterThan(price)
}

// SearchProducts retrieves all products whose name contains the keyword,
// ignoring case.
func (s *ProductService) SearchProducts(keyword string) ([]models.Product, error) {
	return s.repo.SearchByName(keyword)
}

// GetProductsInPriceRange retrieves all products priced within
// [minPrice, maxPrice], ordered by ascending price.
func (s *ProductService) GetProductsInPriceRange(minPrice, maxPrice float64) ([]models.Product, error) {
	if minPrice > maxPrice {
		return nil, &ValidationError{Violations: []string{"Minimum price must not exceed maximum price."}}
	}
	return s.repo.GetByPriceRange(minPrice, maxPrice)
}

// publishEvent publishes a catalog event for the given product. Events are
// best-effort: failures are logged and never surfaced to the caller.
func (s *ProductService) publishEvent(eventType string, product *models.Product) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"type":       eventType,
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for product %d: %v", eventType, product.ID, err)
		return
	}
	if err := s.publisher.Publish("", "catalog_events", body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
