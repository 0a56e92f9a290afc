package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meatshop/internal/domain"
	"meatshop/internal/errors"
	"meatshop/internal/testutil"
)

// Unit Tests

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func newProduct(id, name, category string, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        name,
		Price:       250,
		Category:    category,
		InStock:     true,
		Weight:      domain.DefaultProductWeight,
		Description: "",
		CreatedAt:   createdAt,
	}
}

func TestProductRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC)

	p := newProduct("p-1", "Chicken Curry Cut", "chicken", createdAt)
	img := "data:image/png;base64,AAAA"
	p.Image = &img
	require.NoError(t, repo.Insert(ctx, p))

	found, err := repo.FindByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Curry Cut", found.Name)
	assert.Equal(t, 250.0, found.Price)
	assert.Equal(t, "chicken", found.Category)
	assert.True(t, found.InStock)
	assert.Equal(t, "500g", found.Weight)
	require.NotNil(t, found.Image)
	assert.Equal(t, img, *found.Image)
	assert.True(t, createdAt.Equal(found.CreatedAt))
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	p, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, p)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductRepository_FindAll_CategoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Insert(ctx, newProduct("p-1", "Breast", "chicken", now)))
	require.NoError(t, repo.Insert(ctx, newProduct("p-2", "Keema", "mutton", now)))
	require.NoError(t, repo.Insert(ctx, newProduct("p-3", "Wings", "chicken", now)))

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	chicken, err := repo.FindAll(ctx, "chicken")
	require.NoError(t, err)
	assert.Len(t, chicken, 2)
	for _, p := range chicken {
		assert.Equal(t, "chicken", p.Category)
	}

	none, err := repo.FindAll(ctx, "fish")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProductRepository_Update_OnlyPatchedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newProduct("p-1", "Breast", "chicken", time.Now().UTC())))

	price := 199.5
	inStock := false
	require.NoError(t, repo.Update(ctx, "p-1", domain.ProductPatch{Price: &price, InStock: &inStock}))

	found, err := repo.FindByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Breast", found.Name)
	assert.Equal(t, 199.5, found.Price)
	assert.False(t, found.InStock)
}

func TestProductRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, newProduct("p-1", "Breast", "chicken", time.Now().UTC())))

	require.NoError(t, repo.Delete(ctx, "p-1"))

	err := repo.Delete(ctx, "p-1")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
