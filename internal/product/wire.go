package product

import (
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"meatshop/internal/product/repository"
	"meatshop/internal/product/service"
)

// NewModule wires the catalog. A nil cache client disables caching.
func NewModule(db *sql.DB, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Controller {
	var repo repository.Repository = repository.NewMySQLRepository(db)
	if cache != nil {
		repo = repository.NewCachedRepository(repo, cache, cacheTTL, logger)
	}

	svc := service.NewService(repo)
	return NewController(svc, logger)
}
