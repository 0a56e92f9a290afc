package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"meatshop/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type OrderItemRepository interface {
	InsertAll(ctx context.Context, tx *sql.Tx, orderID string, items []domain.OrderItem) error
	FindAll(ctx context.Context) (map[string][]domain.OrderItem, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

// OrderStore persists orders together with their line items.
type OrderStore struct {
	db        TransactionManager
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewOrderStore(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderStore {
	return &OrderStore{
		db:        db,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// Save writes the order row and its items atomically.
func (s *OrderStore) Save(ctx context.Context, order domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	if err := s.orderRepo.Insert(txCtx, tx, order); err != nil {
		s.logger.Error("failed to insert order", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	if err := s.itemRepo.InsertAll(txCtx, tx, order.ID, order.Items); err != nil {
		s.logger.Error("failed to insert order items", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderId", order.ID), zap.Error(err))
		return err
	}

	s.logger.Debug("order persisted", zap.String("orderId", order.ID), zap.Int("itemCount", len(order.Items)))
	return nil
}

// FindAll returns every order with its items, newest first.
func (s *OrderStore) FindAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Items of orders committed after the order query have no match and are skipped.
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if list, ok := items[orders[i].ID]; ok {
			orders[i].Items = list
		}
	}

	return orders, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
