package db

import (
	"context"

	"gorm.io/gorm"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		"firstName" TEXT NOT NULL,
		"lastName" TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		"customerId" INTEGER,
		street TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		"isPrimary" BOOLEAN,
		FOREIGN KEY ("customerId") REFERENCES customers(id)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		"firstName" TEXT NOT NULL,
		"lastName" TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		"customerId" BIGINT REFERENCES customers(id),
		street TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		"isPrimary" BOOLEAN
	)`,
}

// EnsureSchema creates the customers and addresses tables when missing.
// Existing tables are left untouched.
func EnsureSchema(ctx context.Context, gdb *gorm.DB) error {
	stmts := sqliteSchema
	if gdb.Dialector.Name() == "postgres" {
		stmts = postgresSchema
	}
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range stmts {
			if err := tx.Exec(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
