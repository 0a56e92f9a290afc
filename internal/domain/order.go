package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusPacked         OrderStatus = "PACKED"
	OrderStatusOutForDelivery OrderStatus = "OUT FOR DELIVERY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
)

const DefaultPaymentMode = "Cash on Delivery"

// OrderStatuses lists every recognised status in lifecycle order. Any status
// may be set from any other; the order here is informational only.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPacked,
	OrderStatusOutForDelivery,
	OrderStatusCompleted,
}

func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string
	Pincode      string
	Items        []OrderItem
	TotalPrice   float64
	PaymentMode  string
	Status       OrderStatus
	CreatedAt    time.Time
}

// OrderItem is a snapshot of a product at ordering time. ProductID is not
// checked against the catalog.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
	Weight      string
}

// ItemsTotal sums price x quantity over the line items.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}
