package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// Logistics is one shipment handed to a carrier. Every delivery action creates
// one record; the shipped items point at it.
type Logistics struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	Name           string
	Mobile         string
	Address        string
	Carrier        string
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLogistics builds a shipment addressed to the order's recipient.
func NewLogistics(id uuid.UUID, recipient *Recipient, carrier, trackingNumber string, now time.Time) (*Logistics, error) {
	if recipient == nil {
		return nil, errs.NewValueIsRequiredError("recipient")
	}

	if err := errors.Join(
		requireID("logistics id", id),
		requireText("carrier", carrier),
		requireText("tracking number", trackingNumber),
	); err != nil {
		return nil, err
	}

	return &Logistics{
		ID:             id,
		OrderID:        recipient.OrderID,
		Name:           recipient.Name,
		Mobile:         recipient.Mobile,
		Address:        recipient.Address,
		Carrier:        carrier,
		TrackingNumber: trackingNumber,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
