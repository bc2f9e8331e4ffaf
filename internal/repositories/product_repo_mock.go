package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the MongoDB adapter's audit-field behavior so tests observe the
// same ID/timestamp/version semantics as the real store. A name index backs
// the uniqueness check.
type MockProductRepository struct {
	products map[string]models.Product
	names    map[string]string // name -> id
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
		names:    make(map[string]string),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID, or (nil, nil) when absent.
func (r *MockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// ExistsByID reports whether a product with the given ID is stored.
func (r *MockProductRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}

// ExistsByName reports whether a product with the given name is stored.
func (r *MockProductRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.names[name]
	return ok, nil
}

// Save inserts or replaces the product, maintaining the store-owned audit
// fields the same way the MongoDB adapter does.
func (r *MockProductRepository) Save(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *product
	now := time.Now().UTC()

	if saved.ID == "" {
		saved.ID = primitive.NewObjectID().Hex()
		saved.CreatedDate = &now
		saved.LastModifiedDate = &now
		saved.Version = 0
	} else {
		existing, ok := r.products[saved.ID]
		if !ok {
			return nil, fmt.Errorf("product with ID %s not found for update", saved.ID)
		}
		delete(r.names, existing.Name)
		saved.Version++
		saved.LastModifiedDate = &now
	}

	r.products[saved.ID] = saved
	r.names[saved.Name] = saved.ID
	return &saved, nil
}

// DeleteByID removes a product by its ID.
func (r *MockProductRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	delete(r.names, product.Name)
	delete(r.products, id)
	return nil
}
