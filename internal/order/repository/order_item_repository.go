package repository

import (
	"context"
	"database/sql"
	"fmt"

	"meatshop/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// InsertAll stores the items of one order, keeping their position.
func (r *MySQLOrderItemRepository) InsertAll(ctx context.Context, tx *sql.Tx, orderID string, items []domain.OrderItem) error {
	query := `
		INSERT INTO OrderItems (orderId, position, productId, productName, quantity, price, weight)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	for i, item := range items {
		_, err := tx.ExecContext(ctx, query,
			orderID, i, item.ProductID, item.ProductName, item.Quantity, item.Price, item.Weight,
		)
		if err != nil {
			return fmt.Errorf("inserting order item %d: %w", i, err)
		}
	}

	return nil
}

// FindAll loads every stored item keyed by order id, each slice in
// insertion order. It binds no parameters, so it works for any number of
// orders.
func (r *MySQLOrderItemRepository) FindAll(ctx context.Context) (map[string][]domain.OrderItem, error) {
	query := `
		SELECT orderId, productId, productName, quantity, price, weight
		FROM OrderItems
		ORDER BY orderId, position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	result := map[string][]domain.OrderItem{}
	for rows.Next() {
		var (
			orderID string
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.Weight); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		result[orderID] = append(result[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return result, nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT productId, productName, quantity, price, weight
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.Weight); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return items, nil
}
