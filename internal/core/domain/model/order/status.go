package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	WaitingPayment ──> WaitShipment ──> AlreadyShipment ──> Completed
//	      │
//	      └──> Closed
//
// Completed is reached through receipt confirmation, which this service does
// not drive; the value exists so persisted orders can be read back.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	WaitingPayment
	WaitShipment
	AlreadyShipment
	Completed
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		WaitingPayment:  "WAITING_PAYMENT",
		WaitShipment:    "WAIT_SHIPMENT",
		AlreadyShipment: "ALREADY_SHIPMENT",
		Completed:       "COMPLETED",
		Closed:          "CLOSED",
	}
}

// Validate checks that s is one of the defined statuses other than Unknown.
func (s Status) Validate() error {
	switch s {
	case WaitingPayment, WaitShipment, AlreadyShipment, Completed, Closed:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps the wire name of a status back to its value.
func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == value && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
}

// ValidateCancel reports whether an order in status s may be cancelled.
// Only orders that are still waiting for payment can be cancelled.
func (s Status) ValidateCancel() error {
	if s != WaitingPayment {
		return errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// Cancel transitions WaitingPayment to Closed.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return Unknown, err
	}
	return Closed, nil
}

// ConfirmPayment transitions WaitingPayment to WaitShipment.
func (s Status) ConfirmPayment() (Status, error) {
	if s != WaitingPayment {
		return Unknown, errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm payment", s.String()),
		)
	}
	return WaitShipment, nil
}

// Ship transitions WaitShipment to AlreadyShipment. It is applied once the
// last outstanding item of an order has been shipped.
func (s Status) Ship() (Status, error) {
	if s != WaitShipment {
		return Unknown, errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return AlreadyShipment, nil
}
