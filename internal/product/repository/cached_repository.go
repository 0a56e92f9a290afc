package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"meatshop/internal/domain"
	apperrors "meatshop/internal/errors"
)

const (
	allProductsKey     = "products:all"
	productKeyFmt      = "product:%s"
	categoryProductFmt = "products:category:%s"
)

type Repository interface {
	FindAll(ctx context.Context, category string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

// CachedRepository is a read-through Redis cache in front of a Repository.
// Cache failures are logged and fall through to the wrapped repository.
type CachedRepository struct {
	next   Repository
	redis  redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(next Repository, client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func listKey(category string) string {
	if category == "" {
		return allProductsKey
	}
	return fmt.Sprintf(categoryProductFmt, category)
}

func (c *CachedRepository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	key := listKey(category)

	var products []domain.Product
	if c.get(ctx, key, &products) {
		return products, nil
	}

	products, err := c.next.FindAll(ctx, category)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, products)
	return products, nil
}

func (c *CachedRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	key := fmt.Sprintf(productKeyFmt, id)

	var product domain.Product
	if c.get(ctx, key, &product) {
		return &product, nil
	}

	p, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, p)
	return p, nil
}

func (c *CachedRepository) Insert(ctx context.Context, p domain.Product) error {
	if err := c.next.Insert(ctx, p); err != nil {
		return err
	}

	c.invalidate(ctx, allProductsKey, listKey(p.Category))
	return nil
}

func (c *CachedRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	keys := []string{fmt.Sprintf(productKeyFmt, id), allProductsKey}

	old, err := c.next.FindByID(ctx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return err
		}
	} else {
		keys = append(keys, listKey(old.Category))
	}
	if patch.Category != nil {
		keys = append(keys, listKey(*patch.Category))
	}

	if err := c.next.Update(ctx, id, patch); err != nil {
		return err
	}

	c.invalidate(ctx, keys...)
	return nil
}

func (c *CachedRepository) Delete(ctx context.Context, id string) error {
	keys := []string{fmt.Sprintf(productKeyFmt, id), allProductsKey}

	old, err := c.next.FindByID(ctx, id)
	if err != nil {
		return err
	}
	keys = append(keys, listKey(old.Category))

	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx, keys...)
	return nil
}

func (c *CachedRepository) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("redis get failed, using database", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (c *CachedRepository) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CachedRepository) invalidate(ctx context.Context, keys ...string) {
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("redis invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
