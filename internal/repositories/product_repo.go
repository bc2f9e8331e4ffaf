package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID reports an absent product as (nil, nil); translating absence into
// a domain error is the service's job, not the repository's.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// Save inserts the product when its ID is empty, assigning the ID,
	// timestamps and an initial version of 0. When the ID is set, the stored
	// document is replaced, the version advanced and the last-modified
	// timestamp refreshed. The persisted product is returned.
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
