package commands

import (
	"errors"

	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand hides an order from every read. Orders are never removed.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID uuid.UUID) (DeleteOrderCommand, error) {
	if err := requireID("order id", orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}
