package handlers

import (
	"errors"
	"log"
	"strconv"

	"unikart/internal/models"
	"unikart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The fixed paths must be registered before the ":name" wildcard.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/price-range", h.HandleProductsInPriceRange)
	productRoutes.Get("/above-price", h.HandleProductsAbovePrice)
	productRoutes.Get("/:name", h.HandleGetProductByName)
	productRoutes.Put("/:id", h.HandleUpdateProductName)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct validates and creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var candidate models.ProductCandidate
	if err := c.BodyParser(&candidate); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.CreateProduct(&candidate)
	if err != nil {
		return h.respondError(c, err, "Could not create product")
	}
	return c.JSON(product)
}

// HandleGetProducts retrieves all products. An empty catalog is reported
// as not found.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return h.respondError(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByName retrieves a single product by its exact name.
func (h *ProductHandler) HandleGetProductByName(c *fiber.Ctx) error {
	name := c.Params("name")
	product, err := h.service.GetProductByName(name)
	if err != nil {
		return h.respondError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleUpdateProductName renames a product. The new name is passed as the
// "name" query parameter.
func (h *ProductHandler) HandleUpdateProductName(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a positive integer",
		})
	}

	product, err := h.service.UpdateProductName(uint(id), c.Query("name"))
	if err != nil {
		return h.respondError(c, err, "Could not update product name")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a positive integer",
		})
	}

	if err := h.service.DeleteProduct(uint(id)); err != nil {
		return h.respondError(c, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully.",
	})
}

// HandleSearchProducts retrieves products whose name contains the
// "keyword" query parameter, ignoring case.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("keyword"))
	if err != nil {
		return h.respondError(c, err, "Could not search products")
	}
	return c.JSON(products)
}

// HandleProductsInPriceRange retrieves products priced between the "min"
// and "max" query parameters, ordered by ascending price.
func (h *ProductHandler) HandleProductsInPriceRange(c *fiber.Ctx) error {
	minPrice, errMin := strconv.ParseFloat(c.Query("min"), 64)
	maxPrice, errMax := strconv.ParseFloat(c.Query("max"), 64)
	if errMin != nil || errMax != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameters 'min' and 'max' must be numbers",
		})
	}

	products, err := h.service.GetProductsInPriceRange(minPrice, maxPrice)
	if err != nil {
		return h.respondError(c, err, "Could not retrieve products in price range")
	}
	return c.JSON(products)
}

// HandleProductsAbovePrice retrieves products priced strictly above the
// "price" query parameter.
func (h *ProductHandler) HandleProductsAbovePrice(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(c.Query("price"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'price' must be a number",
		})
	}

	products, err := h.service.GetProductsAbovePrice(price)
	if err != nil {
		return h.respondError(c, err, "Could not retrieve products above price")
	}
	return c.JSON(products)
}

// respondError maps service errors onto transport responses: validation
// failures become 400 with the full violation list, missing products 404,
// anything else 500.
func (h *ProductHandler) respondError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Violations,
		})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Message,
		})
	}

	log.Printf("%s: %v", fallback, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallback,
		"error":   err.Error(),
	})
}
