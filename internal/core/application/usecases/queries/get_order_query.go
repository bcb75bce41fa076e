package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads the full view of one order.
type GetOrderQuery struct {
	orderID uuid.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID uuid.UUID) (GetOrderQuery, error) {
	if orderID == uuid.Nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() uuid.UUID {
	return q.orderID
}

// OrderDetails is an order with everything recorded about it. Cancellation is
// nil unless the order was cancelled.
type OrderDetails struct {
	Order        *order.Order
	Items        []*order.Item
	Recipient    *order.Recipient
	Logistics    []*order.Logistics
	Cancellation *order.Cancellation
}
