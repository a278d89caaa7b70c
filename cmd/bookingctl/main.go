package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/staybook/api/staybook/v1"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	flagAddress  = "addr"
	flagInsecure = "insecure"
	flagTimeout  = "timeout"
	flagUserID   = "user"
	envPrefix    = "BOOKINGCTL"
)

type clientConfig struct {
	Address  string
	Insecure bool
	Timeout  time.Duration
	UserID   string
	// extraDialOptions lets tests route the connection through an in-memory listener.
	extraDialOptions []grpc.DialOption
}

func main() {
	rootCmd := newRootCommand(&clientConfig{})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bookingctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(cfg *clientConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookingctl",
		Short:         "Command-line client for the bookingd gRPC API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
	}
	cmd.PersistentFlags().String(flagAddress, "localhost:7000", "bookingd gRPC address")
	cmd.PersistentFlags().Bool(flagInsecure, true, "connect without TLS")
	cmd.PersistentFlags().Duration(flagTimeout, 5*time.Second, "RPC timeout")
	cmd.PersistentFlags().String(flagUserID, "", "acting user id")

	cmd.AddCommand(
		newRoomsCommand(cfg),
		newBookingsCommand(cfg),
		newUnavailableCommand(cfg),
		newQuoteCommand(cfg),
		newBookCommand(cfg),
		newRefundCommand(cfg),
		newCancelCommand(cfg),
	)
	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *clientConfig) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, flagName := range []string{flagAddress, flagInsecure, flagTimeout, flagUserID} {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}
	cfg.Address = strings.TrimSpace(v.GetString(flagAddress))
	cfg.Insecure = v.GetBool(flagInsecure)
	cfg.Timeout = v.GetDuration(flagTimeout)
	cfg.UserID = strings.TrimSpace(v.GetString(flagUserID))
	if cfg.Address == "" {
		return fmt.Errorf("%s is required", flagAddress)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", flagTimeout)
	}
	return nil
}

// call dials bookingd, runs fn with a bounded context and prints its result as JSON.
func call(cmd *cobra.Command, cfg *clientConfig, fn func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error)) error {
	dialOptions := []grpc.DialOption{}
	if cfg.Insecure {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	dialOptions = append(dialOptions, cfg.extraDialOptions...)
	conn, err := grpc.NewClient(cfg.Address, dialOptions...)
	if err != nil {
		return fmt.Errorf("connect bookingd: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()
	result, err := fn(ctx, staybookv1.NewBookingServiceClient(conn))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func requireUser(cfg *clientConfig) error {
	if cfg.UserID == "" {
		return fmt.Errorf("--%s is required", flagUserID)
	}
	return nil
}
