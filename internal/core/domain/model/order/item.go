package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// SkuSnapshot is the catalog data copied onto an item when the order is
// placed. It never changes afterwards.
type SkuSnapshot struct {
	SkuID    string
	Name     string
	ImageURL string
	Price    int64
}

// Item is one line of an order. PayAmount starts as Quantity*Price and can be
// corrected later without touching Price.
type Item struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	OrderNumber       string
	SkuID             string
	SkuName           string
	SkuImage          string
	Quantity          int
	Price             int64
	PayAmount         int64
	Status            ItemStatus
	DeliveryType      DeliveryType
	LogisticsID       *uuid.UUID
	HasReturnExchange ReturnExchange
	CreatedAt         time.Time
	UpdatedAt         time.Time
	PaymentTime       *time.Time
	DeliveryTime      *time.Time
	ReceiverTime      *time.Time
	ClosingTime       *time.Time
	Deleted           bool
}

// NewItem creates an item waiting for payment with no delivery method chosen.
func NewItem(id uuid.UUID, o *Order, sku SkuSnapshot, quantity int, now time.Time) (*Item, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}

	item := &Item{
		OrderID:           o.ID,
		OrderNumber:       o.Number,
		SkuName:           sku.Name,
		SkuImage:          sku.ImageURL,
		Status:            ItemWaitingPayment,
		DeliveryType:      DeliveryNone,
		HasReturnExchange: ReturnExchangeNone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSkuID(sku.SkuID),
		item.setQuantity(quantity),
		item.setPrice(sku.Price),
	); err != nil {
		return nil, err
	}

	item.PayAmount = int64(item.Quantity) * item.Price
	return item, nil
}

// IsOutstanding reports whether the item still has to be shipped.
func (i *Item) IsOutstanding() bool {
	return !i.Deleted && i.Status.IsShippable()
}

func (i *Item) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("item id")
	}
	i.ID = id
	return nil
}

func (i *Item) setSkuID(skuID string) error {
	if skuID == "" {
		return errs.NewValueIsRequiredError("sku id")
	}
	i.SkuID = skuID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	i.Quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	i.Price = price
	return nil
}

// ValidateQuantity checks that a line quantity is positive.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be greater than 0"))
	}
	return nil
}
