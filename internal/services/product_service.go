package services

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// ProductService handles business logic related to products: the
// name-uniqueness check on create, the units default policy and the
// merge-then-save update. It holds no state beyond the repository handle.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products. An empty slice is a valid result.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID. Returns
// ProductNotFoundError when no product with that ID exists.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &models.ProductNotFoundError{ID: id}
	}
	return product, nil
}

// CreateProduct persists a new product. Returns ProductAlreadyExistsError
// when a product with the same name exists. The candidate's ID, timestamps
// and version are ignored: a brand-new record is always produced, with
// units defaulting to 1 when absent or zero.
//
// The existence check and the write are not atomic; two concurrent creates
// with the same name can both pass the check. The store holds no unique
// index on name.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	exists, err := s.repo.ExistsByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.ProductAlreadyExistsError{Name: product.Name}
	}

	candidate := models.NewProduct(product.Name, product.Description, product.Manufacturer,
		product.Price, product.Units)
	return s.repo.Save(ctx, candidate)
}

// DeleteProduct removes a product by its ID. Returns ProductNotFoundError
// when no product with that ID exists.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &models.ProductNotFoundError{ID: id}
	}
	return s.repo.DeleteByID(ctx, id)
}

// UpdateProduct merges the submitted product into the stored one and saves
// the result. When no product with the given ID exists, the submitted
// product is created instead, with full create-path semantics (name
// uniqueness check and units defaulting).
//
// On the merge path the stored ID, name, timestamps and version are kept;
// description, manufacturer, price and units are taken from the submitted
// product verbatim. The name is immutable after creation. Units are
// intentionally not re-normalized here, matching the create path only.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.CreateProduct(ctx, product)
	}

	merged := *existing
	merged.Description = product.Description
	merged.Manufacturer = product.Manufacturer
	merged.Price = product.Price
	merged.Units = product.Units
	return s.repo.Save(ctx, &merged)
}
