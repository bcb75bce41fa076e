package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrDeliverOrderItemsCommandIsNotConstructed = errors.New(
	"DeliverOrderItemsCommand must be created via NewDeliverOrderItemsCommand constructor",
)

// DeliverOrderItemsCommand ships a batch of items of one order under a single
// tracking number.
type DeliverOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID        uuid.UUID
	itemIDs        []uuid.UUID
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewDeliverOrderItemsCommand(
	orderID uuid.UUID,
	itemIDs []uuid.UUID,
	carrier string,
	trackingNumber string,
) (DeliverOrderItemsCommand, error) {
	cmd := DeliverOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setShipment(carrier, trackingNumber),
	); err != nil {
		return DeliverOrderItemsCommand{}, err
	}

	return cmd, nil
}

func (c DeliverOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderItemsCommandIsNotConstructed)
}

func (c DeliverOrderItemsCommand) OrderID() uuid.UUID {
	return c.orderID
}

func (c DeliverOrderItemsCommand) ItemIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), c.itemIDs...)
}

func (c DeliverOrderItemsCommand) Carrier() string {
	return c.carrier
}

func (c DeliverOrderItemsCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *DeliverOrderItemsCommand) setOrderID(orderID uuid.UUID) error {
	if err := requireID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderItemsCommand) setItemIDs(itemIDs []uuid.UUID) error {
	if err := requireIDs("item ids", itemIDs); err != nil {
		return err
	}

	c.itemIDs = append([]uuid.UUID(nil), itemIDs...)
	return nil
}

func (c *DeliverOrderItemsCommand) setShipment(carrier, trackingNumber string) error {
	carrier = strings.TrimSpace(carrier)
	trackingNumber = strings.TrimSpace(trackingNumber)

	var err error
	if carrier == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("carrier"))
	}
	if trackingNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("tracking number"))
	}
	if err != nil {
		return err
	}

	c.carrier = carrier
	c.trackingNumber = trackingNumber
	return nil
}
