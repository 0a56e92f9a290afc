package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"meatshop/internal/commons"
	"meatshop/internal/domain"
	"meatshop/internal/dto"
)

type OrderUseCase interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) HandleList(w http.ResponseWriter, r *http.Request) {
	orders, err := c.useCase.List(r.Context())
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	resp := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.NewOrderDTO(o))
	}
	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	order, err := c.useCase.Create(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(*order), c.logger)
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequest
	if err := commons.DecodeJSON(w, r, &req); err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	order, err := c.useCase.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), domain.OrderStatus(req.Status))
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewOrderDTO(*order), c.logger)
}

func (c *OrderController) Routes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Put("/{orderId}/status", c.HandleUpdateStatus)
}
