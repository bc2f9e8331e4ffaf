package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog/internal/models"
)

const productCollection = "products"

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection(productCollection),
	}
}

// GetAll retrieves all products from the collection.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the collection.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// ExistsByID reports whether a product with the given ID is persisted.
func (r *MongoProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check product existence by ID %s: %w", id, err)
	}
	return count > 0, nil
}

// ExistsByName reports whether a product with the given name is persisted.
func (r *MongoProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("failed to check product existence by name %s: %w", name, err)
	}
	return count > 0, nil
}

// Save inserts or replaces the product, maintaining the store-owned audit
// fields (ID, timestamps, version).
func (r *MongoProductRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	saved := *product
	now := time.Now().UTC()

	if saved.ID == "" {
		saved.ID = primitive.NewObjectID().Hex()
		saved.CreatedDate = &now
		saved.LastModifiedDate = &now
		saved.Version = 0
		if _, err := r.collection.InsertOne(ctx, &saved); err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		return &saved, nil
	}

	saved.Version++
	saved.LastModifiedDate = &now
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": saved.ID}, &saved)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("product with ID %s not found for update", saved.ID)
	}
	return &saved, nil
}

// DeleteByID deletes a product by its ID from the collection.
func (r *MongoProductRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}
