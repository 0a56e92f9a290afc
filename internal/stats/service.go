package stats

import (
	"context"

	"github.com/shopspring/decimal"

	"meatshop/internal/domain"
)

type Repository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	TotalPricesByStatus(ctx context.Context, status domain.OrderStatus) ([]decimal.Decimal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Compute recounts everything on each call. Revenue is the sum of totalPrice
// over COMPLETED orders and is zero when there are none.
func (s *Service) Compute(ctx context.Context) (*domain.Stats, error) {
	var (
		stats domain.Stats
		err   error
	)

	if stats.TotalProducts, err = s.repo.CountProducts(ctx); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.repo.CountOrders(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.repo.CountOrdersByStatus(ctx, domain.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.CompletedOrders, err = s.repo.CountOrdersByStatus(ctx, domain.OrderStatusCompleted); err != nil {
		return nil, err
	}

	totals, err := s.repo.TotalPricesByStatus(ctx, domain.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = decimal.Sum(decimal.Zero, totals...).InexactFloat64()

	return &stats, nil
}
