package main

import (
	"context"

	"github.com/MarkoPoloResearchLab/staybook/api/staybook/v1"
	"github.com/spf13/cobra"
)

func newRoomsCommand(cfg *clientConfig) *cobra.Command {
	var (
		minPrice int64
		maxPrice int64
		types    []string
	)
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List catalog rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.ListRooms(ctx, &staybookv1.ListRoomsRequest{
					MinPriceCents: minPrice,
					MaxPriceCents: maxPrice,
					Types:         types,
				})
			})
		},
	}
	cmd.Flags().Int64Var(&minPrice, "min-price-cents", 0, "lowest nightly price")
	cmd.Flags().Int64Var(&maxPrice, "max-price-cents", 0, "highest nightly price")
	cmd.Flags().StringSliceVar(&types, "type", nil, "room types to include (standard, deluxe, suite)")
	return cmd
}

func newBookingsCommand(cfg *clientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List bookings, newest first (only --user's when set)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.ListBookings(ctx, &staybookv1.ListBookingsRequest{UserId: cfg.UserID})
			})
		},
	}
}

func newUnavailableCommand(cfg *clientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "unavailable ROOM_ID",
		Short: "Show the stays that block a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.GetUnavailableRanges(ctx, &staybookv1.GetUnavailableRangesRequest{RoomId: args[0]})
			})
		},
	}
}

func newQuoteCommand(cfg *clientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "quote ROOM_ID CHECK_IN CHECK_OUT",
		Short: "Price a stay without booking it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.QuoteStay(ctx, &staybookv1.QuoteStayRequest{RoomId: args[0], CheckIn: args[1], CheckOut: args[2]})
			})
		},
	}
}

func newBookCommand(cfg *clientConfig) *cobra.Command {
	var guests int32
	cmd := &cobra.Command{
		Use:   "book ROOM_ID CHECK_IN CHECK_OUT",
		Short: "Book a room for --user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(cfg); err != nil {
				return err
			}
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.CreateBooking(ctx, &staybookv1.CreateBookingRequest{
					UserId:   cfg.UserID,
					RoomId:   args[0],
					CheckIn:  args[1],
					CheckOut: args[2],
					Guests:   guests,
				})
			})
		},
	}
	cmd.Flags().Int32Var(&guests, "guests", 0, "number of guests")
	return cmd
}

func newRefundCommand(cfg *clientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "refund BOOKING_ID",
		Short: "Preview the refund for cancelling a booking now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.PreviewRefund(ctx, &staybookv1.PreviewRefundRequest{BookingId: args[0], UserId: cfg.UserID})
			})
		},
	}
}

func newCancelCommand(cfg *clientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel BOOKING_ID",
		Short: "Cancel a booking and apply the refund policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, cfg, func(ctx context.Context, client staybookv1.BookingServiceClient) (any, error) {
				return client.CancelBooking(ctx, &staybookv1.CancelBookingRequest{BookingId: args[0], UserId: cfg.UserID})
			})
		},
	}
}
