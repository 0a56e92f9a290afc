package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"meatshop/internal/domain"
	"meatshop/internal/errors"
)

const productColumns = `id, name, price, category, image, inStock, weight, description, createdAt`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p     domain.Product
		image sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Category, &image,
		&p.InStock, &p.Weight, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if image.Valid {
		p.Image = &image.String
	}
	return &p, nil
}

// FindAll returns every product, or only those in category when it is set.
func (r *MySQLRepository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY createdAt DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM Product WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return p, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO Product (id, name, price, category, image, inStock, weight, description, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Price, p.Category, p.Image,
		p.InStock, p.Weight, p.Description, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

// Update writes only the fields present in patch. A missing row is not an
// error here; callers re-read the product to detect it.
func (r *MySQLRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	var (
		sets []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.InStock != nil {
		add("inStock", *patch.InStock)
	}
	if patch.Weight != nil {
		add("weight", *patch.Weight)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE Product SET %s WHERE id = ?`, strings.Join(sets, ", "))
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Product WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Product not found")
	}

	return nil
}
