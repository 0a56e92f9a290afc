package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"meatshop/internal/config"
	"meatshop/internal/order/controller"
	orderrepo "meatshop/internal/order/repository"
	"meatshop/internal/order/service"
	"meatshop/internal/order/usecase"
)

const saveTimeout = 5 * time.Second

func NewModule(
	db *sql.DB,
	pincodes usecase.PincodeChecker,
	audit usecase.AuditLog,
	cfg config.OrderConfig,
	logger *zap.Logger,
) *controller.OrderController {
	store := service.NewOrderStore(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderItemRepository(db),
		logger,
		saveTimeout,
	)

	lifecycle := usecase.NewOrderLifecycle(store, pincodes, audit, logger, cfg.RecomputeTotal)

	return controller.NewOrderController(lifecycle, logger)
}
