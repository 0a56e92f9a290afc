package stats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"meatshop/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM Product`)
}

func (r *MySQLRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM Orders`)
}

func (r *MySQLRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM Orders WHERE status = ?`, string(status))
}

// TotalPricesByStatus returns the totalPrice of every order in the given
// status. Values are read as decimal strings so no rounding happens before
// they are summed.
func (r *MySQLRepository) TotalPricesByStatus(ctx context.Context, status domain.OrderStatus) ([]decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT totalPrice FROM Orders WHERE status = ?`, string(status))
	if err != nil {
		return nil, fmt.Errorf("querying order totals: %w", err)
	}
	defer rows.Close()

	totals := []decimal.Decimal{}
	for rows.Next() {
		var d decimal.Decimal
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning order total: %w", err)
		}
		totals = append(totals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order totals: %w", err)
	}

	return totals, nil
}

func (r *MySQLRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}
