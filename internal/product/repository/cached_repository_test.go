package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meatshop/internal/domain"
	apperrors "meatshop/internal/errors"
	"meatshop/internal/testutil"
)

type mockRepository struct {
	FindAllFunc  func(ctx context.Context, category string) ([]domain.Product, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Product, error)
	InsertFunc   func(ctx context.Context, p domain.Product) error
	UpdateFunc   func(ctx context.Context, id string, patch domain.ProductPatch) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *mockRepository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	return m.FindAllFunc(ctx, category)
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) Insert(ctx context.Context, p domain.Product) error {
	return m.InsertFunc(ctx, p)
}

func (m *mockRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

// memoryProducts is a map-backed Repository that counts list reads.
type memoryProducts struct {
	stored       map[string]domain.Product
	findAllCalls int
}

func (m *memoryProducts) repository() *mockRepository {
	return &mockRepository{
		FindAllFunc: func(ctx context.Context, category string) ([]domain.Product, error) {
			m.findAllCalls++
			out := []domain.Product{}
			for _, p := range m.stored {
				if category == "" || p.Category == category {
					out = append(out, p)
				}
			}
			return out, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			p, ok := m.stored[id]
			if !ok {
				return nil, apperrors.NewNotFoundError("Product not found")
			}
			return &p, nil
		},
		InsertFunc: func(ctx context.Context, p domain.Product) error {
			m.stored[p.ID] = p
			return nil
		},
		UpdateFunc: func(ctx context.Context, id string, patch domain.ProductPatch) error {
			p := m.stored[id]
			testutil.ApplyProductPatch(&p, patch)
			m.stored[id] = p
			return nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			delete(m.stored, id)
			return nil
		},
	}
}

// warm fills every cache key the tests look at.
func warm(t *testing.T, repo *CachedRepository, categories ...string) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	for _, c := range categories {
		_, err := repo.FindAll(ctx, c)
		require.NoError(t, err)
	}
	_, err = repo.FindByID(ctx, "p-1")
	require.NoError(t, err)
}

// Unit Tests

func TestCachedRepository_RedisDownFallsBackToDatabase(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	calls := 0
	next := &mockRepository{
		FindAllFunc: func(ctx context.Context, category string) ([]domain.Product, error) {
			calls++
			return []domain.Product{{ID: "p-1", Category: "chicken"}}, nil
		},
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			calls++
			return &domain.Product{ID: id}, nil
		},
	}
	repo := NewCachedRepository(next, client, time.Minute, zap.NewNop())

	products, err := repo.FindAll(context.Background(), "chicken")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	p, err := repo.FindByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, 2, calls)
}

func TestCachedRepository_WriteErrorsPropagate(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	boom := errors.New("insert failed")
	next := &mockRepository{
		InsertFunc: func(ctx context.Context, p domain.Product) error { return boom },
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("Product not found")
		},
	}
	repo := NewCachedRepository(next, client, time.Minute, zap.NewNop())

	assert.ErrorIs(t, repo.Insert(context.Background(), domain.Product{ID: "p-1"}), boom)

	_, ok := apperrors.IsNotFoundError(repo.Delete(context.Background(), "p-1"))
	assert.True(t, ok)
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	mr, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken", Price: 250},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := repo.FindAll(ctx, "chicken")
	require.NoError(t, err)
	products, err := repo.FindAll(ctx, "chicken")
	require.NoError(t, err)

	assert.Equal(t, 1, mem.findAllCalls)
	require.Len(t, products, 1)
	assert.Equal(t, "Breast", products[0].Name)
	assert.True(t, mr.Exists("products:category:chicken"))
	assert.Equal(t, time.Minute, mr.TTL("products:category:chicken"))
}

func TestCachedRepository_InsertInvalidatesLists(t *testing.T) {
	mr, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken"},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	warm(t, repo, "chicken", "mutton")

	require.NoError(t, repo.Insert(context.Background(), domain.Product{ID: "p-2", Category: "chicken"}))

	assert.False(t, mr.Exists("products:all"))
	assert.False(t, mr.Exists("products:category:chicken"))
	assert.True(t, mr.Exists("products:category:mutton"))
	assert.True(t, mr.Exists("product:p-1"))
}

func TestCachedRepository_UpdateInvalidatesOldAndNewCategory(t *testing.T) {
	mr, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken"},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	warm(t, repo, "chicken", "mutton", "others")

	category := "mutton"
	require.NoError(t, repo.Update(context.Background(), "p-1", domain.ProductPatch{Category: &category}))

	assert.False(t, mr.Exists("product:p-1"))
	assert.False(t, mr.Exists("products:all"))
	assert.False(t, mr.Exists("products:category:chicken"))
	assert.False(t, mr.Exists("products:category:mutton"))
	assert.True(t, mr.Exists("products:category:others"))

	products, err := repo.FindAll(context.Background(), "mutton")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].ID)
}

func TestCachedRepository_UpdateRefreshesProduct(t *testing.T) {
	_, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken"},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	warm(t, repo, "chicken")

	name := "Boneless Breast"
	require.NoError(t, repo.Update(context.Background(), "p-1", domain.ProductPatch{Name: &name}))

	p, err := repo.FindByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Boneless Breast", p.Name)

	products, err := repo.FindAll(context.Background(), "chicken")
	require.NoError(t, err)
	assert.Equal(t, "Boneless Breast", products[0].Name)
}

func TestCachedRepository_DeleteInvalidatesKeys(t *testing.T) {
	mr, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken"},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	warm(t, repo, "chicken", "mutton")

	require.NoError(t, repo.Delete(context.Background(), "p-1"))

	assert.False(t, mr.Exists("product:p-1"))
	assert.False(t, mr.Exists("products:all"))
	assert.False(t, mr.Exists("products:category:chicken"))
	assert.True(t, mr.Exists("products:category:mutton"))

	_, err := repo.FindByID(context.Background(), "p-1")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCachedRepository_UnreadableEntryFallsBack(t *testing.T) {
	mr, client := setupTestRedis(t)
	mem := &memoryProducts{stored: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Breast", Category: "chicken"},
	}}
	repo := NewCachedRepository(mem.repository(), client, time.Minute, zap.NewNop())
	require.NoError(t, mr.Set("products:all", "{not json"))

	products, err := repo.FindAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, mem.findAllCalls)
}
