package category

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"meatshop/internal/domain"
	"meatshop/internal/errors"
)

const mysqlDuplicateEntry = 1062

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, displayOrder, createdAt FROM Category ORDER BY displayOrder, name`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.findOne(ctx, `WHERE id = ?`, id)
}

func (r *MySQLRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, `WHERE name = ?`, name)
}

func (r *MySQLRepository) findOne(ctx context.Context, where string, arg interface{}) (*domain.Category, error) {
	query := `SELECT id, name, displayOrder, createdAt FROM Category ` + where

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying category: %w", err)
	}

	return &c, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO Category (id, name, displayOrder, createdAt) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.DisplayOrder, c.CreatedAt,
	)
	if isDuplicate(err) {
		return errors.NewValidationError("Category already exists")
	}
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) error {
	var (
		sets []string
		args []interface{}
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.DisplayOrder != nil {
		sets = append(sets, "displayOrder = ?")
		args = append(args, *patch.DisplayOrder)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`UPDATE Category SET %s WHERE id = ?`, strings.Join(sets, ", ")), args...)
	if isDuplicate(err) {
		return errors.NewValidationError("Category name already exists")
	}
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Category WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Category not found")
	}

	return nil
}

func (r *MySQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Category`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}
	return n, nil
}

func (r *MySQLRepository) CountProducts(ctx context.Context, name string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Product WHERE category = ?`, name).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products in category: %w", err)
	}
	return n, nil
}

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
