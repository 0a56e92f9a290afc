package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meatshop/internal/domain"
)

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:           id,
		CustomerName: "Ravi",
		Phone:        "9876543210",
		Address:      "12 Market Road",
		Pincode:      "500002",
		Items: []domain.OrderItem{
			{ProductID: "x", ProductName: "Mutton", Quantity: 2, Price: 300, Weight: "500g"},
			{ProductID: "y", ProductName: "Chicken Curry Cut", Quantity: 1, Price: 250, Weight: "1kg"},
		},
		TotalPrice:  850,
		PaymentMode: domain.DefaultPaymentMode,
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestFormatOrder(t *testing.T) {
	block := FormatOrder(testOrder("o-1"))

	assert.Contains(t, block, "Order ID: o-1\n")
	assert.Contains(t, block, "Date: 2026-03-01T10:30:00Z\n")
	assert.Contains(t, block, "Customer: Ravi\n")
	assert.Contains(t, block, "Items: Mutton x2, Chicken Curry Cut x1\n")
	assert.Contains(t, block, "Total: ₹850.00\n")
	assert.Contains(t, block, "Payment: Cash on Delivery\n")
	assert.Contains(t, block, "Status: PENDING\n")
	assert.Equal(t, 2, strings.Count(block, separator))
}

func TestAppend_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "orders.txt")
	log := NewOrderLog(path)

	require.NoError(t, log.Append(testOrder("o-1")))
	require.NoError(t, log.Append(testOrder("o-2")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Less(t, strings.Index(content, "Order ID: o-1"), strings.Index(content, "Order ID: o-2"))
}

func TestAppend_ConcurrentBlocksDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	log := NewOrderLog(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, log.Append(testOrder("o")))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(FormatOrder(testOrder("o")), 20), string(data))
}

func TestAppend_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	log := NewOrderLog(filepath.Join(blocker, "orders.txt"))

	assert.Error(t, log.Append(testOrder("o-1")))
}
