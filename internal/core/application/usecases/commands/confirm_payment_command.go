package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records that the buyer paid.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	paidAt  time.Time

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(orderID uuid.UUID, paidAt time.Time) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaidAt(paidAt),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c ConfirmPaymentCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *ConfirmPaymentCommand) setOrderID(orderID uuid.UUID) error {
	if err := requireID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paid at")
	}

	c.paidAt = paidAt.UTC()
	return nil
}
