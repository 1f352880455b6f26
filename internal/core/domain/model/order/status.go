package order

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrOrderAlreadyDelivered is returned when MarkDelivered runs on a delivered order.
// It carries no error kind on purpose: callers check for an existing delivery first,
// so reaching it means the stored data broke the lifecycle invariant.
var ErrOrderAlreadyDelivered = errors.New("order is already delivered")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Delivered
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every order.
	Created

	// Delivered is final; no further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Delivered: "Delivered",
	}
}

// Validate checks Status values coming from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "Created", "Delivered" or "Unknown". This is the form exposed by
// the order list.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver returns the status that follows a delivery.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Created:
		return Delivered, nil
	case Delivered:
		return Unknown, ErrOrderAlreadyDelivered
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
}
