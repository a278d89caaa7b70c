package booking

import (
	"context"
	"fmt"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*Service) error

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing or policy-evaluating operation.
type OperationLog struct {
	Operation  string
	UserID     UserID
	BookingID  BookingID
	RoomID     RoomID
	Stay       DateRange
	Amount     AmountCents
	Percentage int
	Status     string
	Error      error
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) error {
		service.logger = logger
		return nil
	}
}

// WithIDGenerator replaces the UUID generator used for booking and refund ids.
func WithIDGenerator(generate func() string) ServiceOption {
	return func(service *Service) error {
		if generate == nil {
			return fmt.Errorf("%w: id generator is nil", ErrInvalidServiceConfig)
		}
		service.newID = generate
		return nil
	}
}

// WithFeeSchedule overrides the fixed per-booking fees.
func WithFeeSchedule(schedule FeeSchedule) ServiceOption {
	return func(service *Service) error {
		if err := schedule.Validate(); err != nil {
			return err
		}
		service.fees = schedule
		return nil
	}
}

// WithRefundPolicy overrides the cancellation tiers.
func WithRefundPolicy(policy RefundPolicy) ServiceOption {
	return func(service *Service) error {
		if err := policy.Validate(); err != nil {
			return err
		}
		service.policy = policy
		return nil
	}
}
