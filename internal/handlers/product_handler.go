package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleAddProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts(c.UserContext())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// HandleGetProduct returns a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// HandleAddProduct creates a new product.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	product, err := h.parseAndValidate(c)
	if product == nil {
		return err
	}

	created, err := h.productService.CreateProduct(c.UserContext(), product)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct updates an existing product, or creates it when the
// ID is unknown.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	product, err := h.parseAndValidate(c)
	if product == nil {
		return err
	}

	updated, err := h.productService.UpdateProduct(c.UserContext(), c.Params("id"), product)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(updated)
}

// HandleDeleteProduct deletes a product by ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseAndValidate decodes the request body and runs field validation.
// On failure the response is written here (400, with the full
// field-to-message violation map for validation errors) and the returned
// product is nil.
func (h *ProductHandler) parseAndValidate(c *fiber.Ctx) (*models.Product, error) {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if violations := models.ValidateProduct(&product); len(violations) > 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(violations)
	}
	return &product, nil
}

// handleServiceError maps domain errors to HTTP status codes: 404 for a
// missing product, 422 for a duplicate name, 500 otherwise.
func (h *ProductHandler) handleServiceError(c *fiber.Ctx, err error) error {
	var notFound *models.ProductNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	}

	var alreadyExists *models.ProductAlreadyExistsError
	if errors.As(err, &alreadyExists) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": alreadyExists.Error(),
		})
	}

	log.Printf("Unexpected error handling product request: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
