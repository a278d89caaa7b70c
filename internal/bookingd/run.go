package bookingd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MarkoPoloResearchLab/staybook/api/staybook/v1"
	"github.com/MarkoPoloResearchLab/staybook/internal/bookinglog"
	"github.com/MarkoPoloResearchLab/staybook/internal/catalog"
	"github.com/MarkoPoloResearchLab/staybook/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/staybook/internal/httpapi"
	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

// components groups everything a running daemon serves.
type components struct {
	bookingService *booking.Service
	rooms          *catalog.Catalog
	cleanup        func() error
}

// assemble loads the catalog, opens storage and builds the booking service.
func assemble(ctx context.Context, cfg Config, logger *zap.Logger) (*components, error) {
	rooms := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		rooms = loaded
	}

	kv, cleanup, err := openKeyValue(ctx, cfg)
	if err != nil {
		return nil, err
	}
	kvStore, err := booking.NewKeyValueStore(kv, cfg.StorageKey)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	options := append([]booking.ServiceOption{
		booking.WithOperationLogger(bookinglog.New(logger)),
	}, cfg.serviceOptions()...)
	clock := func() time.Time { return time.Now().UTC() }
	bookingService, err := booking.NewService(kvStore, rooms, clock, options...)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("booking service init: %w", err)
	}
	logger.Info("booking service ready",
		zap.String("storage_driver", cfg.StorageDriver),
		zap.String("storage_key", kvStore.Key()),
		zap.Int("rooms", rooms.Len()),
	)
	return &components{bookingService: bookingService, rooms: rooms, cleanup: cleanup}, nil
}

// Run serves gRPC, and HTTP when configured, until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	parts, err := assemble(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cleanupErr := parts.cleanup(); cleanupErr != nil {
			logger.Warn("storage close error", zap.Error(cleanupErr))
		}
	}()

	grpcListener, err := net.Listen("tcp", cfg.GRPCListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryLoggingInterceptor(logger)))
	staybookv1.RegisterBookingServiceServer(grpcServer, grpcserver.NewBookingServiceServer(parts.bookingService, parts.rooms))

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server starting", zap.String("listen_addr", grpcListener.Addr().String()))
		errCh <- grpcServer.Serve(grpcListener)
	}()

	var httpServer *http.Server
	if cfg.HTTPListenAddr != "" {
		validator, err := httpapi.NewSessionValidator(cfg.HTTP)
		if err != nil {
			grpcServer.Stop()
			return err
		}
		handler := httpapi.NewHandler(logger, parts.bookingService, parts.rooms, cfg.HTTP.RequestTimeout)
		httpServer = &http.Server{
			Addr:              cfg.HTTPListenAddr,
			Handler:           httpapi.NewRouter(cfg.HTTP, handler, validator),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("HTTP server starting", zap.String("listen_addr", cfg.HTTPListenAddr))
			errCh <- httpServer.ListenAndServe()
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
		shutdown(grpcServer, httpServer, logger)
		return nil
	case serveErr := <-errCh:
		shutdown(grpcServer, httpServer, logger)
		if serveErr == nil || errors.Is(serveErr, grpc.ErrServerStopped) || errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return serveErr
	}
}

func shutdown(grpcServer *grpc.Server, httpServer *http.Server, logger *zap.Logger) {
	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown error", zap.Error(err))
		}
	}
	grpcServer.GracefulStop()
}
