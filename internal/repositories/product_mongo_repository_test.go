//go:build integration

package repositories_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

var mongoDatabase *mongo.Database

// TestMain starts a throwaway MongoDB container for the whole package run.
func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := mongodb.RunContainer(ctx, testcontainers.WithImage("mongo:6.0"))
	if err != nil {
		log.Fatalf("Failed to start MongoDB container: %v", err)
	}
	defer func() {
		if err := container.Terminate(context.Background()); err != nil {
			log.Printf("Failed to terminate MongoDB container: %v", err)
		}
	}()

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("Failed to get MongoDB connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	mongoDatabase = client.Database("catalog_test")
	return m.Run()
}

// newMongoRepo hands out a repository over a clean collection.
func newMongoRepo(t *testing.T) *repositories.MongoProductRepository {
	t.Helper()
	require.NoError(t, mongoDatabase.Collection("products").Drop(context.Background()))
	return repositories.NewMongoProductRepository(mongoDatabase)
}

func storeProduct(t *testing.T, repo *repositories.MongoProductRepository, name string) *models.Product {
	t.Helper()
	saved, err := repo.Save(context.Background(),
		models.NewProduct(name, "Description", "Manufacturer", priceOf(1.0), unitsOf(1)))
	require.NoError(t, err)
	return saved
}

func TestMongoRepo_Save_AssignsPersistenceFields(t *testing.T) {
	repo := newMongoRepo(t)

	saved := storeProduct(t, repo, "Name")

	assert.Len(t, saved.ID, 24)
	assert.NotNil(t, saved.CreatedDate)
	assert.NotNil(t, saved.LastModifiedDate)
	assert.Zero(t, saved.Version)
}

func TestMongoRepo_Save_ReplacesAndAdvancesVersion(t *testing.T) {
	repo := newMongoRepo(t)
	saved := storeProduct(t, repo, "Name")

	saved.Description = "Updated"
	replaced, err := repo.Save(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, 1, replaced.Version)

	found, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Updated", found.Description)
	assert.Equal(t, 1, found.Version)
}

func TestMongoRepo_GetByID_WhenExists(t *testing.T) {
	repo := newMongoRepo(t)
	saved := storeProduct(t, repo, "Name")

	found, err := repo.GetByID(context.Background(), saved.ID)

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.Name, found.Name)
	assert.Equal(t, saved.Description, found.Description)
	assert.Equal(t, saved.Manufacturer, found.Manufacturer)
	assert.Equal(t, *saved.Price, *found.Price)
	assert.Equal(t, *saved.Units, *found.Units)
}

func TestMongoRepo_GetByID_WhenNotExists(t *testing.T) {
	repo := newMongoRepo(t)

	found, err := repo.GetByID(context.Background(), "64b13314f6f13567f4c9c705")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMongoRepo_GetAll(t *testing.T) {
	repo := newMongoRepo(t)
	storeProduct(t, repo, "Name")
	storeProduct(t, repo, "Name2")

	products, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestMongoRepo_ExistsByID(t *testing.T) {
	repo := newMongoRepo(t)
	saved := storeProduct(t, repo, "Name")

	exists, err := repo.ExistsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(context.Background(), "64b13314f6f13567f4c9c705")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMongoRepo_ExistsByName(t *testing.T) {
	repo := newMongoRepo(t)
	storeProduct(t, repo, "Name")

	exists, err := repo.ExistsByName(context.Background(), "Name")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(context.Background(), "name")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMongoRepo_DeleteByID(t *testing.T) {
	repo := newMongoRepo(t)
	saved := storeProduct(t, repo, "Name")

	require.NoError(t, repo.DeleteByID(context.Background(), saved.ID))

	found, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.DeleteByID(context.Background(), saved.ID))
}
