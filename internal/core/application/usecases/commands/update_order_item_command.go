package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand corrects fields of one item. It never touches the
// order total; use UpdateItemPayAmountCommand for amounts.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	itemID  uuid.UUID
	patch   order.ItemPatch

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemCommand(orderID, itemID uuid.UUID, patch order.ItemPatch) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

func (c UpdateOrderItemCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c UpdateOrderItemCommand) ItemID() uuid.UUID {
	return c.itemID
}

func (c UpdateOrderItemCommand) Patch() order.ItemPatch {
	return c.patch
}

func (c *UpdateOrderItemCommand) setOrderID(orderID uuid.UUID) error {
	if err := requireID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemCommand) setItemID(itemID uuid.UUID) error {
	if err := requireID("item id", itemID); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

// setPatch accepts only the editable item fields. Status, amount, logistics
// and deletion have their own operations.
func (c *UpdateOrderItemCommand) setPatch(patch order.ItemPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	_, hasStatus := patch.Status()
	_, hasPayAmount := patch.PayAmount()
	_, hasLogistics := patch.LogisticsID()
	_, hasDeleted := patch.Deleted()
	if hasStatus || hasPayAmount || hasLogistics || hasDeleted {
		return errs.NewValueIsInvalidErrorWithCause("item patch",
			errors.New("only quantity, price and delivery type can be edited"))
	}

	c.patch = patch
	return nil
}
