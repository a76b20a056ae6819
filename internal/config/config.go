package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port      string
	Driver    string
	DBPath    string
	PGDSN     string
	CORSAllow []string
	LogLevel  string
}

func Load() Config {
	port := getenv("APP_PORT", "5000")
	driver := strings.ToLower(getenv("DB_DRIVER", DriverSQLite))
	path := getenv("DB_PATH", "customerApplication.db")

	dsn := os.Getenv("PG_DSN")
	if strings.TrimSpace(dsn) == "" {
		user := getenv("DB_USER", "custsvc")
		pass := getenv("DB_PASS", "secret")
		host := getenv("DB_HOST", "localhost")
		portDB := getenv("DB_PORT", "5432")
		name := getenv("DB_NAME", "custsvc")
		ssl := getenv("DB_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, portDB, name, ssl)
	}
	var cors []string
	if s := os.Getenv("CORS_ALLOW_ORIGINS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cors = append(cors, v)
			}
		}
	}
	return Config{
		Port:      port,
		Driver:    driver,
		DBPath:    path,
		PGDSN:     dsn,
		CORSAllow: cors,
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
}

// Validate rejects configurations main cannot start with.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: DB_PATH is empty")
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.Driver)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
