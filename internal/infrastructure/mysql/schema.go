package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

var migrations = []struct {
	name  string
	query string
}{
	{"Product", `
	CREATE TABLE IF NOT EXISTS Product (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		category VARCHAR(100) NOT NULL,
		image LONGTEXT NULL,
		inStock TINYINT(1) NOT NULL DEFAULT 1,
		weight VARCHAR(50) NOT NULL DEFAULT '500g',
		description TEXT NOT NULL,
		createdAt DATETIME(6) NOT NULL,
		INDEX idx_category (category)
	)`},
	{"Category", `
	CREATE TABLE IF NOT EXISTS Category (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		displayOrder INT NOT NULL DEFAULT 0,
		createdAt DATETIME(6) NOT NULL
	)`},
	{"Orders", `
	CREATE TABLE IF NOT EXISTS Orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		customerName VARCHAR(150) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		address TEXT NOT NULL,
		pincode VARCHAR(20) NOT NULL,
		totalPrice DECIMAL(19,2) NOT NULL DEFAULT 0.00,
		paymentMode VARCHAR(50) NOT NULL DEFAULT 'Cash on Delivery',
		status VARCHAR(30) NOT NULL DEFAULT 'PENDING',
		createdAt DATETIME(6) NOT NULL,
		INDEX idx_status (status),
		INDEX idx_created (createdAt)
	)`},
	{"OrderItems", `
	CREATE TABLE IF NOT EXISTS OrderItems (
		orderId CHAR(36) NOT NULL,
		position INT NOT NULL,
		productId VARCHAR(64) NOT NULL,
		productName VARCHAR(255) NOT NULL,
		quantity INT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		weight VARCHAR(50) NOT NULL DEFAULT '500g',
		PRIMARY KEY (orderId, position),
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE
	)`},
}

// Migrate creates the tables used by the service when they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.query); err != nil {
			return fmt.Errorf("creating table %s: %w", m.name, err)
		}
	}
	return nil
}

// Tables lists the managed tables, children before parents.
func Tables() []string {
	return []string{"OrderItems", "Orders", "Category", "Product"}
}
