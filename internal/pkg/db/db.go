package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"custsvc/internal/config"
)

// Open connects to the configured engine and pings it.
func Open(cfg config.Config) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		sqlDB     *sql.DB
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case config.DriverPostgres:
		connCfg, err := pgx.ParseConfig(cfg.PGDSN)
		if err != nil {
			return nil, err
		}
		sqlDB = stdlib.OpenDB(*connCfg)
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	if sqlDB, err = gdb.DB(); err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// one shared handle; also keeps a :memory: database alive
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gdb, nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
