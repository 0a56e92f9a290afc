package dto

import (
	"time"

	"meatshop/internal/domain"
)

// Bounds match the OrderItems column widths.
type OrderItemRequest struct {
	ProductID   string  `json:"productId" validate:"required,max=64"`
	ProductName string  `json:"productName" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"gte=1,lte=10000"`
	Price       float64 `json:"price" validate:"gte=0,lte=99999999.99"`
	Weight      string  `json:"weight" validate:"max=50"`
}

// CreateOrderRequest is the checkout payload. An empty items array is
// accepted; a missing one is not. Bounds match the Orders column widths, and
// the item limits keep a recomputed total inside totalPrice's range.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required,max=150"`
	Phone        string             `json:"phone" validate:"required,max=30"`
	Address      string             `json:"address" validate:"required,max=16000"`
	Pincode      string             `json:"pincode" validate:"required,max=20"`
	Items        []OrderItemRequest `json:"items" validate:"required,max=100,dive"`
	TotalPrice   *float64           `json:"totalPrice" validate:"required,gte=0,lte=99999999999999.99"`
	PaymentMode  string             `json:"paymentMode" validate:"max=50"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Weight      string  `json:"weight"`
}

type OrderDTO struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customerName"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Pincode      string         `json:"pincode"`
	Items        []OrderItemDTO `json:"items"`
	TotalPrice   float64        `json:"totalPrice"`
	PaymentMode  string         `json:"paymentMode"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func NewOrderDTO(o domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Weight:      item.Weight,
		})
	}

	return OrderDTO{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Pincode:      o.Pincode,
		Items:        items,
		TotalPrice:   o.TotalPrice,
		PaymentMode:  o.PaymentMode,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}
