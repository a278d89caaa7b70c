package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarkoPoloResearchLab/staybook/internal/bookingd"
	"github.com/MarkoPoloResearchLab/staybook/internal/httpapi"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagDatabaseURL        = "database-url"
	flagStorageDriver      = "storage-driver"
	flagStorageKey         = "storage-key"
	flagGRPCListenAddr     = "grpc-listen-addr"
	flagHTTPListenAddr     = "http-listen-addr"
	flagCatalogPath        = "catalog"
	flagCleaningFeeCents   = "cleaning-fee-cents"
	flagServiceFeeCents    = "service-fee-cents"
	flagFullRefundNotice   = "full-refund-notice"
	flagPartialRefund      = "partial-refund-percentage"
	flagAllowedOrigins     = "allowed-origins"
	flagJWTSigningKey      = "jwt-signing-key"
	flagJWTIssuer          = "jwt-issuer"
	flagJWTCookieName      = "jwt-cookie-name"
	flagHTTPRequestTimeout = "http-request-timeout"
	envPrefix              = "BOOKINGD"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bookingd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := bookingd.Config{}
	cmd := &cobra.Command{
		Use:           "bookingd",
		Short:         "Hotel booking ledger gRPC and HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			return bookingd.Run(ctx, cfg, logger)
		},
	}

	defaultFees := booking.DefaultFeeSchedule()
	defaultPolicy := booking.DefaultRefundPolicy()
	cmd.Flags().String(flagDatabaseURL, "sqlite:///tmp/staybook.db", "sqlite:// or postgres:// connection string")
	cmd.Flags().String(flagStorageDriver, bookingd.StorageDriverGorm, "storage driver: gorm, pgx or memory")
	cmd.Flags().String(flagStorageKey, booking.DefaultStorageKey, "key holding the booking collection")
	cmd.Flags().String(flagGRPCListenAddr, ":7000", "gRPC listen address")
	cmd.Flags().String(flagHTTPListenAddr, "", "HTTP listen address (disabled when empty)")
	cmd.Flags().String(flagCatalogPath, "", "YAML or JSON room catalog (built-in rooms when empty)")
	cmd.Flags().Int64(flagCleaningFeeCents, defaultFees.Cleaning.Int64(), "cleaning fee in cents")
	cmd.Flags().Int64(flagServiceFeeCents, defaultFees.Service.Int64(), "service fee in cents")
	cmd.Flags().Duration(flagFullRefundNotice, defaultPolicy.FullRefundNotice, "notice that earns a full refund")
	cmd.Flags().Int(flagPartialRefund, defaultPolicy.PartialPercentage, "refund percentage for late cancellations")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins")
	cmd.Flags().String(flagJWTSigningKey, "", "TAuth JWT signing key (required with --http-listen-addr)")
	cmd.Flags().String(flagJWTIssuer, "", "expected JWT issuer")
	cmd.Flags().String(flagJWTCookieName, "", "JWT cookie name")
	cmd.Flags().Duration(flagHTTPRequestTimeout, 0, "per-request timeout for HTTP handlers (e.g. 3s)")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *bookingd.Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flagName := range []string{
		flagDatabaseURL, flagStorageDriver, flagStorageKey, flagGRPCListenAddr, flagHTTPListenAddr,
		flagCatalogPath, flagCleaningFeeCents, flagServiceFeeCents, flagFullRefundNotice, flagPartialRefund,
		flagAllowedOrigins, flagJWTSigningKey, flagJWTIssuer, flagJWTCookieName, flagHTTPRequestTimeout,
	} {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	cfg.DatabaseURL = v.GetString(flagDatabaseURL)
	cfg.StorageDriver = v.GetString(flagStorageDriver)
	cfg.StorageKey = v.GetString(flagStorageKey)
	cfg.GRPCListenAddr = v.GetString(flagGRPCListenAddr)
	cfg.HTTPListenAddr = v.GetString(flagHTTPListenAddr)
	cfg.CatalogPath = v.GetString(flagCatalogPath)
	cfg.Fees = &booking.FeeSchedule{
		Cleaning: booking.AmountCents(v.GetInt64(flagCleaningFeeCents)),
		Service:  booking.AmountCents(v.GetInt64(flagServiceFeeCents)),
	}
	cfg.RefundPolicy = &booking.RefundPolicy{
		FullRefundNotice:  v.GetDuration(flagFullRefundNotice),
		PartialPercentage: v.GetInt(flagPartialRefund),
	}
	cfg.HTTP = httpapi.Config{
		AllowedOrigins:    httpapi.ParseAllowedOrigins(v.GetString(flagAllowedOrigins)),
		SessionSigningKey: v.GetString(flagJWTSigningKey),
		SessionIssuer:     strings.TrimSpace(v.GetString(flagJWTIssuer)),
		SessionCookieName: strings.TrimSpace(v.GetString(flagJWTCookieName)),
		RequestTimeout:    v.GetDuration(flagHTTPRequestTimeout),
	}

	return cfg.Validate()
}
