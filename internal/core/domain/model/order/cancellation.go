package order

import (
	"time"
	"unicode/utf8"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxOtherReasonLength bounds the free-text cancellation reason.
const MaxOtherReasonLength = 255

// Cancellation records why an order was closed before payment.
type Cancellation struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	OrderNumber string
	Reason      CancelReason
	OtherReason string
	CreatedAt   time.Time
}

func NewCancellation(id uuid.UUID, o *Order, reason CancelReason, otherReason string, now time.Time) (*Cancellation, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if err := requireID("cancellation id", id); err != nil {
		return nil, err
	}
	if err := reason.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateOtherReason(otherReason); err != nil {
		return nil, err
	}

	return &Cancellation{
		ID:          id,
		OrderID:     o.ID,
		OrderNumber: o.Number,
		Reason:      reason,
		OtherReason: otherReason,
		CreatedAt:   now,
	}, nil
}

func ValidateOtherReason(otherReason string) error {
	if n := utf8.RuneCountInString(otherReason); n > MaxOtherReasonLength {
		return errs.NewValueIsOutOfRangeError("other reason length", n, 0, MaxOtherReasonLength)
	}
	return nil
}
