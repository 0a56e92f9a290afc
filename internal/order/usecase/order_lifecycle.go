package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meatshop/internal/commons"
	"meatshop/internal/domain"
	"meatshop/internal/dto"
	apperrors "meatshop/internal/errors"
)

type OrderStore interface {
	Save(ctx context.Context, order domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type PincodeChecker interface {
	IsServiceable(pincode string) bool
}

type AuditLog interface {
	Append(order domain.Order) error
}

// OrderLifecycle accepts orders for serviceable pincodes and moves them
// through the status lifecycle.
type OrderLifecycle struct {
	store          OrderStore
	pincodes       PincodeChecker
	audit          AuditLog
	logger         *zap.Logger
	recomputeTotal bool
	now            func() time.Time
	newID          func() string
}

func NewOrderLifecycle(
	store OrderStore,
	pincodes PincodeChecker,
	audit AuditLog,
	logger *zap.Logger,
	recomputeTotal bool,
) *OrderLifecycle {
	return &OrderLifecycle{
		store:          store,
		pincodes:       pincodes,
		audit:          audit,
		logger:         logger,
		recomputeTotal: recomputeTotal,
		now:            func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:          func() string { return uuid.New().String() },
	}
}

func (uc *OrderLifecycle) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if err := commons.Validate(req); err != nil {
		return nil, err
	}

	if !uc.pincodes.IsServiceable(req.Pincode) {
		uc.logger.Info("order rejected for unserviceable pincode", zap.String("pincode", req.Pincode))
		return nil, apperrors.NewValidationError("Pincode not serviceable", apperrors.ValidationDetail{
			Field:   "pincode",
			Message: "Not Serviceable in this area",
		})
	}

	order := uc.buildOrder(req)

	if err := uc.store.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("pincode", order.Pincode),
		zap.Int("itemCount", len(order.Items)),
		zap.Float64("totalPrice", order.TotalPrice),
	)

	if err := uc.audit.Append(order); err != nil {
		uc.logger.Error("failed to write order audit log", zap.String("orderId", order.ID), zap.Error(err))
	}

	return &order, nil
}

// buildOrder rounds money to the stored scale so the created order matches
// what a later read returns.
func (uc *OrderLifecycle) buildOrder(req dto.CreateOrderRequest) domain.Order {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		weight := item.Weight
		if weight == "" {
			weight = domain.DefaultProductWeight
		}
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       domain.RoundMoney(item.Price),
			Weight:      weight,
		})
	}

	paymentMode := req.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.DefaultPaymentMode
	}

	order := domain.Order{
		ID:           uc.newID(),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Items:        items,
		TotalPrice:   domain.RoundMoney(*req.TotalPrice),
		PaymentMode:  paymentMode,
		Status:       domain.OrderStatusPending,
		CreatedAt:    uc.now(),
	}

	if uc.recomputeTotal {
		order.TotalPrice = order.ItemsTotal().Round(domain.MoneyScale).InexactFloat64()
	}

	return order
}

func (uc *OrderLifecycle) List(ctx context.Context) ([]domain.Order, error) {
	return uc.store.FindAll(ctx)
}

// UpdateStatus sets any recognised status regardless of the current one.
func (uc *OrderLifecycle) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError(invalidStatusMessage(), apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("%q is not a recognised status", string(status)),
		})
	}

	order, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)),
	)

	order.Status = status
	return order, nil
}

func invalidStatusMessage() string {
	names := make([]string, len(domain.OrderStatuses))
	for i, s := range domain.OrderStatuses {
		names[i] = string(s)
	}
	return "Invalid status. Must be one of: " + strings.Join(names, ", ")
}
