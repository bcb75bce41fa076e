package commands

import (
	"errors"

	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrDeleteOrderItemsCommandIsNotConstructed = errors.New(
	"DeleteOrderItemsCommand must be created via NewDeleteOrderItemsCommand constructor",
)

// DeleteOrderItemsCommand soft-deletes items of one order.
type DeleteOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	itemIDs []uuid.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderItemsCommand(orderID uuid.UUID, itemIDs []uuid.UUID) (DeleteOrderItemsCommand, error) {
	cmd := DeleteOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("order id", orderID),
		requireIDs("item ids", itemIDs),
	); err != nil {
		return DeleteOrderItemsCommand{}, err
	}
	cmd.orderID = orderID
	cmd.itemIDs = append([]uuid.UUID(nil), itemIDs...)

	return cmd, nil
}

func (c DeleteOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderItemsCommandIsNotConstructed)
}

func (c DeleteOrderItemsCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c DeleteOrderItemsCommand) ItemIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), c.itemIDs...)
}
