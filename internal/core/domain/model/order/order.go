package order

import (
	"errors"
	"time"
	"unicode/utf8"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxRemarkLength bounds the buyer remark in characters.
const MaxRemarkLength = 500

// Order is the aggregate root of a purchase. Its PayAmount always equals the
// sum of the pay amounts of its non-deleted items and its Status follows the
// statuses of those items. Orders are soft-deleted only.
type Order struct {
	ID                uuid.UUID
	Number            string
	UserID            uuid.UUID
	PayAmount         int64
	Status            Status
	HasReturnExchange ReturnExchange
	Remark            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	PaymentTime       *time.Time
	DeliveryTime      *time.Time
	ClosingTime       *time.Time
	Deleted           bool
	Version           int
}

// NewOrder creates an order waiting for payment.
func NewOrder(id uuid.UUID, number string, userID uuid.UUID, payAmount int64, remark string, now time.Time) (*Order, error) {
	o := &Order{
		Status:            WaitingPayment,
		HasReturnExchange: ReturnExchangeNone,
		CreatedAt:         now,
		UpdatedAt:         now,
		Version:           1,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setPayAmount(payAmount),
		o.setRemark(remark),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks the invariants that hold for every persisted order.
func (o *Order) Validate() error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	if o.ID == uuid.Nil {
		return errs.NewValueIsRequiredError("order id")
	}
	if o.Number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if o.PayAmount < 0 {
		return ErrNegativeAmount
	}
	if err := o.Status.Validate(); err != nil {
		return err
	}
	return o.HasReturnExchange.Validate()
}

func (o *Order) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("order id")
	}
	o.ID = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.Number = number
	return nil
}

func (o *Order) setUserID(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errs.NewValueIsRequiredError("user id")
	}
	o.UserID = userID
	return nil
}

func (o *Order) setPayAmount(amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	o.PayAmount = amount
	return nil
}

func (o *Order) setRemark(remark string) error {
	if err := ValidateRemark(remark); err != nil {
		return err
	}
	o.Remark = remark
	return nil
}

// ValidateRemark checks the remark length limit.
func ValidateRemark(remark string) error {
	if n := utf8.RuneCountInString(remark); n > MaxRemarkLength {
		return errs.NewValueIsOutOfRangeError("remark length", n, 0, MaxRemarkLength)
	}
	return nil
}
