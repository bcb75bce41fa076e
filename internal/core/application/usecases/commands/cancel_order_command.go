package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand closes an unpaid order and records why.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     uuid.UUID
	reason      order.CancelReason
	otherReason string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID uuid.UUID, reason order.CancelReason, otherReason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason, otherReason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Reason() order.CancelReason {
	return c.reason
}

// OtherReason is the buyer's free-text explanation, possibly empty.
func (c CancelOrderCommand) OtherReason() string {
	return c.otherReason
}

func (c *CancelOrderCommand) setOrderID(orderID uuid.UUID) error {
	if err := requireID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason order.CancelReason, otherReason string) error {
	if err := errors.Join(reason.Validate(), order.ValidateOtherReason(otherReason)); err != nil {
		return err
	}

	c.reason = reason
	c.otherReason = otherReason
	return nil
}
