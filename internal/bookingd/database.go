package bookingd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/staybook/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/staybook/internal/store/memstore"
	"github.com/MarkoPoloResearchLab/staybook/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	databaseDriverPostgres = "postgres"
	databaseDriverSQLite   = "sqlite"
	defaultSQLiteFile      = "staybook.db"
)

// openKeyValue returns the key-value backend selected by cfg and a cleanup func releasing it.
func openKeyValue(ctx context.Context, cfg Config) (booking.KeyValue, func() error, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		return memstore.New(), func() error { return nil }, nil
	case StorageDriverPgx:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgx pool: %w", err)
		}
		store := pgstore.New(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, func() error { pool.Close(); return nil }, nil
	default:
		gormDB, cleanup, err := openDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("database open: %w", err)
		}
		if err := gormstore.AutoMigrate(gormDB); err != nil {
			_ = cleanup()
			return nil, nil, err
		}
		return gormstore.New(gormDB), cleanup, nil
	}
}

func openDatabase(ctx context.Context, dsn string) (*gorm.DB, func() error, error) {
	driver, sqlitePath, err := resolveDriver(dsn)
	if err != nil {
		return nil, nil, err
	}

	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	var db *gorm.DB
	switch driver {
	case databaseDriverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case databaseDriverSQLite:
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if driver == databaseDriverSQLite {
		// A single writer keeps SQLite from reporting SQLITE_BUSY under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	}
	cleanup := func() error { return sqlDB.Close() }
	return db.WithContext(ctx), cleanup, nil
}

func resolveDriver(dsn string) (string, string, error) {
	if isPostgresURL(dsn) {
		return databaseDriverPostgres, "", nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := parsed.Path
		if path == "" {
			path = parsed.Host
		}
		if path == "" || path == "/" {
			path = defaultSQLiteFile
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return databaseDriverSQLite, sqlitePath, err
	}
	// Anything else is a direct sqlite path.
	sqlitePath, err := normalizeSQLitePath(dsn)
	return databaseDriverSQLite, sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(".", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

func isPostgresURL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
