package stats

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"meatshop/internal/commons"
	"meatshop/internal/domain"
)

type StatsService interface {
	Compute(ctx context.Context) (*domain.Stats, error)
}

type StatsDTO struct {
	TotalProducts   int64   `json:"totalProducts"`
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

type Controller struct {
	service StatsService
	logger  *zap.Logger
}

func NewController(service StatsService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Compute(r.Context())
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, StatsDTO{
		TotalProducts:   stats.TotalProducts,
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue,
	}, c.logger)
}
