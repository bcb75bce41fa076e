package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// ItemStatus is the status of a single order item. It mirrors the order
// statuses an item can be in on its own; an item is shipped independently
// of its siblings.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemWaitingPayment
	ItemWaitShipment
	ItemAlreadyShipment
	ItemCompleted
	ItemClosed
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:         "UNKNOWN",
		ItemWaitingPayment:  "WAITING_PAYMENT",
		ItemWaitShipment:    "WAIT_SHIPMENT",
		ItemAlreadyShipment: "ALREADY_SHIPMENT",
		ItemCompleted:       "COMPLETED",
		ItemClosed:          "CLOSED",
	}
}

func (s ItemStatus) Validate() error {
	switch s {
	case ItemWaitingPayment, ItemWaitShipment, ItemAlreadyShipment, ItemCompleted, ItemClosed:
		return nil
	case ItemUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid status", s))
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsShippable reports whether the item is waiting to be handed to a carrier.
func (s ItemStatus) IsShippable() bool {
	return s == ItemWaitShipment
}

// Ship transitions ItemWaitShipment to ItemAlreadyShipment.
func (s ItemStatus) Ship() (ItemStatus, error) {
	if !s.IsShippable() {
		return ItemUnknown, errs.NewInvalidStateErrorWithCause(
			"item status",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return ItemAlreadyShipment, nil
}
