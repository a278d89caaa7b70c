// Package bookingd assembles the booking service, its storage and its gRPC and HTTP servers.
package bookingd

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/staybook/internal/httpapi"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
)

const (
	// StorageDriverGorm stores the ledger through GORM on SQLite or Postgres.
	StorageDriverGorm = "gorm"
	// StorageDriverPgx stores the ledger through a pgx pool on Postgres.
	StorageDriverPgx = "pgx"
	// StorageDriverMemory keeps the ledger in process memory.
	StorageDriverMemory = "memory"

	defaultDatabaseURL    = "sqlite:///tmp/staybook.db"
	defaultGRPCListenAddr = ":7000"
)

// Config aggregates runtime settings for bookingd.
type Config struct {
	DatabaseURL    string
	StorageDriver  string
	StorageKey     string
	GRPCListenAddr string
	// HTTPListenAddr enables the HTTP façade when set.
	HTTPListenAddr string
	CatalogPath    string
	Fees           *booking.FeeSchedule
	RefundPolicy   *booking.RefundPolicy
	HTTP           httpapi.Config
}

// Validate fills defaults and rejects inconsistent settings.
func (cfg *Config) Validate() error {
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageDriverGorm
	}
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.GRPCListenAddr = strings.TrimSpace(cfg.GRPCListenAddr)
	if cfg.GRPCListenAddr == "" {
		cfg.GRPCListenAddr = defaultGRPCListenAddr
	}
	cfg.HTTPListenAddr = strings.TrimSpace(cfg.HTTPListenAddr)
	cfg.CatalogPath = strings.TrimSpace(cfg.CatalogPath)
	cfg.StorageKey = strings.TrimSpace(cfg.StorageKey)

	switch cfg.StorageDriver {
	case StorageDriverGorm:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultDatabaseURL
		}
	case StorageDriverPgx:
		if !isPostgresURL(cfg.DatabaseURL) {
			return fmt.Errorf("storage driver %q requires a postgres database url", StorageDriverPgx)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	if strings.ContainsAny(cfg.StorageKey, " \t\r\n") {
		return fmt.Errorf("%w: %q", booking.ErrInvalidStorageKey, cfg.StorageKey)
	}
	if cfg.Fees != nil {
		if err := cfg.Fees.Validate(); err != nil {
			return err
		}
	}
	if cfg.RefundPolicy != nil {
		if err := cfg.RefundPolicy.Validate(); err != nil {
			return err
		}
	}
	if cfg.HTTPListenAddr != "" {
		if err := cfg.HTTP.Validate(); err != nil {
			return fmt.Errorf("http: %w", err)
		}
	}
	return nil
}

func (cfg Config) serviceOptions() []booking.ServiceOption {
	options := []booking.ServiceOption{}
	if cfg.Fees != nil {
		options = append(options, booking.WithFeeSchedule(*cfg.Fees))
	}
	if cfg.RefundPolicy != nil {
		options = append(options, booking.WithRefundPolicy(*cfg.RefundPolicy))
	}
	return options
}
