package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested sku and its quantity.
type OrderLine struct {
	SkuID    string
	Quantity int
}

// CreateOrderCommand places a new order for a buyer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, []OrderLine{
//	    {SkuID: "S1", Quantity: 2},
//	    {SkuID: "S2", Quantity: 1},
//	}, addressID, "leave at the door", "203.0.113.7")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID    uuid.UUID
	lines     []OrderLine
	addressID uuid.UUID
	remark    string
	clientIP  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. Lines must be non-empty, name
// each sku at most once and ask for a positive quantity.
func NewCreateOrderCommand(
	userID uuid.UUID,
	lines []OrderLine,
	addressID uuid.UUID,
	remark string,
	clientIP string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientIP: clientIP,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLines(lines),
		cmd.setAddressID(addressID),
		cmd.setRemark(remark),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() uuid.UUID {
	return c.userID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// SkuIDs returns the requested skus in request order.
func (c CreateOrderCommand) SkuIDs() []string {
	ids := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		ids = append(ids, line.SkuID)
	}
	return ids
}

func (c CreateOrderCommand) AddressID() uuid.UUID {
	return c.addressID
}

func (c CreateOrderCommand) Remark() string {
	return c.remark
}

// ClientIP is passed on to the payment service.
func (c CreateOrderCommand) ClientIP() string {
	return c.clientIP
}

func (c *CreateOrderCommand) setUserID(userID uuid.UUID) error {
	if err := requireID("user id", userID); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if line.SkuID == "" {
			return errs.NewValueIsRequiredError("sku id")
		}
		if _, dup := seen[line.SkuID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("order lines",
				fmt.Errorf("sku %s is listed more than once", line.SkuID))
		}
		seen[line.SkuID] = struct{}{}

		if err := order.ValidateQuantity(line.Quantity); err != nil {
			return err
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID uuid.UUID) error {
	if err := requireID("address id", addressID); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setRemark(remark string) error {
	if err := order.ValidateRemark(remark); err != nil {
		return err
	}

	c.remark = remark
	return nil
}
