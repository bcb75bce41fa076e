package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// DeliveryType is how an item reaches the buyer. Items start with DeliveryNone
// until an operator picks a method.
type DeliveryType int

const (
	DeliveryUnknown DeliveryType = iota
	DeliveryNone
	DeliveryExpress
	DeliverySelfPickup
)

func (d DeliveryType) String() string {
	switch d {
	case DeliveryNone:
		return "NONE"
	case DeliveryExpress:
		return "EXPRESS"
	case DeliverySelfPickup:
		return "SELF_PICKUP"
	case DeliveryUnknown:
	}
	return "UNKNOWN"
}

func (d DeliveryType) Validate() error {
	if d.String() == "UNKNOWN" {
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%d is not a valid delivery type", d))
	}
	return nil
}

// ParseDeliveryType maps a wire name to a DeliveryType.
func ParseDeliveryType(value string) (DeliveryType, error) {
	for _, d := range []DeliveryType{DeliveryNone, DeliveryExpress, DeliverySelfPickup} {
		if d.String() == value {
			return d, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery type", fmt.Errorf("%q is not a valid delivery type", value))
}

// RecipientType tells how the recipient record was sourced.
type RecipientType int

const (
	RecipientUnknown RecipientType = iota
	RecipientExpress
)

func (r RecipientType) String() string {
	switch r {
	case RecipientExpress:
		return "EXPRESS"
	case RecipientUnknown:
	}
	return "UNKNOWN"
}

func (r RecipientType) Validate() error {
	if r != RecipientExpress {
		return errs.NewValueIsInvalidErrorWithCause("recipient type", fmt.Errorf("%d is not a valid recipient type", r))
	}
	return nil
}

// ReturnExchange tracks whether a return or exchange was requested for an
// order or one of its items.
type ReturnExchange int

const (
	ReturnExchangeUnknown ReturnExchange = iota
	ReturnExchangeNone
	ReturnExchangeRequested
)

func (r ReturnExchange) String() string {
	switch r {
	case ReturnExchangeNone:
		return "NONE"
	case ReturnExchangeRequested:
		return "REQUESTED"
	case ReturnExchangeUnknown:
	}
	return "UNKNOWN"
}

func (r ReturnExchange) Validate() error {
	if r != ReturnExchangeNone && r != ReturnExchangeRequested {
		return errs.NewValueIsInvalidErrorWithCause("return exchange", fmt.Errorf("%d is not a valid value", r))
	}
	return nil
}

// CancelReason is the reason code stored with a cancellation.
type CancelReason int

const (
	CancelReasonUnknown CancelReason = iota
	CancelReasonBuyerRequested
	CancelReasonPaymentTimeout
	CancelReasonOutOfStock
	CancelReasonOther
)

func getCancelReasonStrings() map[CancelReason]string {
	return map[CancelReason]string{
		CancelReasonBuyerRequested: "BUYER_REQUESTED",
		CancelReasonPaymentTimeout: "PAYMENT_TIMEOUT",
		CancelReasonOutOfStock:     "OUT_OF_STOCK",
		CancelReasonOther:          "OTHER",
	}
}

func (c CancelReason) String() string {
	if str, ok := getCancelReasonStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

func (c CancelReason) Validate() error {
	if _, ok := getCancelReasonStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cancel reason", fmt.Errorf("%d is not a valid reason", c))
	}
	return nil
}

// ParseCancelReason maps a wire name to a CancelReason.
func ParseCancelReason(value string) (CancelReason, error) {
	for reason, str := range getCancelReasonStrings() {
		if str == value {
			return reason, nil
		}
	}
	return CancelReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cancel reason", fmt.Errorf("%q is not a valid reason", value))
}
