package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateOrderRemarkCommandIsNotConstructed = errors.New(
	"UpdateOrderRemarkCommand must be created via NewUpdateOrderRemarkCommand constructor",
)

// UpdateOrderRemarkCommand replaces the buyer remark. An empty remark clears it.
type UpdateOrderRemarkCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	remark  string

	guard guard.ConstructorGuard
}

func NewUpdateOrderRemarkCommand(orderID uuid.UUID, remark string) (UpdateOrderRemarkCommand, error) {
	cmd := UpdateOrderRemarkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("order id", orderID),
		order.ValidateRemark(remark),
	); err != nil {
		return UpdateOrderRemarkCommand{}, err
	}
	cmd.orderID = orderID
	cmd.remark = remark

	return cmd, nil
}

func (c UpdateOrderRemarkCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderRemarkCommandIsNotConstructed)
}

func (c UpdateOrderRemarkCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c UpdateOrderRemarkCommand) Remark() string {
	return c.remark
}
