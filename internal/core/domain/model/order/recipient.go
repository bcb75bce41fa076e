package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// Address is a buyer address as returned by the address book.
type Address struct {
	Name   string
	Mobile string
	Detail string
}

// Recipient is the delivery target copied from the buyer's address book when
// the order is placed. Later address book edits do not affect it.
type Recipient struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Name      string
	Mobile    string
	Address   string
	Type      RecipientType
	CreatedAt time.Time
}

func NewRecipient(id uuid.UUID, orderID uuid.UUID, address Address, now time.Time) (*Recipient, error) {
	if err := errors.Join(
		requireID("recipient id", id),
		requireID("order id", orderID),
		requireText("recipient name", address.Name),
		requireText("recipient mobile", address.Mobile),
		requireText("recipient address", address.Detail),
	); err != nil {
		return nil, err
	}

	return &Recipient{
		ID:        id,
		OrderID:   orderID,
		Name:      address.Name,
		Mobile:    address.Mobile,
		Address:   address.Detail,
		Type:      RecipientExpress,
		CreatedAt: now,
	}, nil
}

func requireID(name string, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
