package commands

import (
	"errors"

	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateItemPayAmountCommandIsNotConstructed = errors.New(
	"UpdateItemPayAmountCommand must be created via NewUpdateItemPayAmountCommand constructor",
)

// UpdateItemPayAmountCommand overrides the pay amount of one item, e.g. a
// manual discount. The sign of the amount is checked by the handler once the
// order is known to exist.
type UpdateItemPayAmountCommand struct { //nolint:recvcheck //using for validation
	orderID   uuid.UUID
	itemID    uuid.UUID
	payAmount int64

	guard guard.ConstructorGuard
}

func NewUpdateItemPayAmountCommand(orderID, itemID uuid.UUID, payAmount int64) (UpdateItemPayAmountCommand, error) {
	cmd := UpdateItemPayAmountCommand{
		payAmount: payAmount,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("order id", orderID),
		requireID("item id", itemID),
	); err != nil {
		return UpdateItemPayAmountCommand{}, err
	}
	cmd.orderID = orderID
	cmd.itemID = itemID

	return cmd, nil
}

func (c UpdateItemPayAmountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemPayAmountCommandIsNotConstructed)
}

func (c UpdateItemPayAmountCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c UpdateItemPayAmountCommand) ItemID() uuid.UUID {
	return c.itemID
}

func (c UpdateItemPayAmountCommand) PayAmount() int64 {
	return c.payAmount
}
