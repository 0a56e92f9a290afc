package auditlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"meatshop/internal/domain"
)

const separator = "====================================="

// OrderLog appends one human-readable block per created order to a flat file.
type OrderLog struct {
	path string
	mu   sync.Mutex
}

func NewOrderLog(path string) *OrderLog {
	return &OrderLog{path: path}
}

func (l *OrderLog) Append(order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating audit log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}

	if _, err := f.WriteString(FormatOrder(order)); err != nil {
		f.Close()
		return fmt.Errorf("writing audit log: %w", err)
	}

	return f.Close()
}

func FormatOrder(order domain.Order) string {
	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}

	var b strings.Builder
	b.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Address: %s\n", order.Address)
	fmt.Fprintf(&b, "Pincode: %s\n", order.Pincode)
	fmt.Fprintf(&b, "Items: %s\n", strings.Join(items, ", "))
	fmt.Fprintf(&b, "Total: ₹%s\n", decimal.NewFromFloat(order.TotalPrice).StringFixed(2))
	fmt.Fprintf(&b, "Payment: %s\n", order.PaymentMode)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	b.WriteString(separator + "\n")

	return b.String()
}
