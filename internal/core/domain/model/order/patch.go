package order

import (
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderPatch is a partial update of an order. It is a value: every With call
// returns a new patch and leaves the receiver untouched. Fields that were
// never set are not written.
type OrderPatch struct {
	status          *Status
	payAmount       *int64
	remark          *string
	deleted         *bool
	paymentTime     *time.Time
	deliveryTime    *time.Time
	closingTime     *time.Time
	expectedVersion *int
}

func (p OrderPatch) WithStatus(s Status) OrderPatch { p.status = &s; return p }
func (p OrderPatch) WithPayAmount(amount int64) OrderPatch { p.payAmount = &amount; return p }
func (p OrderPatch) WithRemark(remark string) OrderPatch { p.remark = &remark; return p }
func (p OrderPatch) WithDeleted(deleted bool) OrderPatch { p.deleted = &deleted; return p }
func (p OrderPatch) WithPaymentTime(t time.Time) OrderPatch { p.paymentTime = &t; return p }
func (p OrderPatch) WithDeliveryTime(t time.Time) OrderPatch { p.deliveryTime = &t; return p }
func (p OrderPatch) WithClosingTime(t time.Time) OrderPatch { p.closingTime = &t; return p }
func (p OrderPatch) WithExpectedVersion(version int) OrderPatch { p.expectedVersion = &version; return p }

func (p OrderPatch) Status() (Status, bool) { return deref(p.status) }
func (p OrderPatch) PayAmount() (int64, bool) { return deref(p.payAmount) }
func (p OrderPatch) Remark() (string, bool) { return deref(p.remark) }
func (p OrderPatch) Deleted() (bool, bool) { return deref(p.deleted) }
func (p OrderPatch) PaymentTime() (time.Time, bool) { return deref(p.paymentTime) }
func (p OrderPatch) DeliveryTime() (time.Time, bool) { return deref(p.deliveryTime) }
func (p OrderPatch) ClosingTime() (time.Time, bool) { return deref(p.closingTime) }
func (p OrderPatch) ExpectedVersion() (int, bool) { return deref(p.expectedVersion) }

// IsEmpty reports whether the patch writes no field.
func (p OrderPatch) IsEmpty() bool {
	return p.status == nil && p.payAmount == nil && p.remark == nil && p.deleted == nil &&
		p.paymentTime == nil && p.deliveryTime == nil && p.closingTime == nil
}

func (p OrderPatch) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("order patch")
	}
	if p.status != nil {
		if err := p.status.Validate(); err != nil {
			return err
		}
	}
	if p.payAmount != nil && *p.payAmount < 0 {
		return ErrNegativeAmount
	}
	if p.remark != nil {
		return ValidateRemark(*p.remark)
	}
	return nil
}

// Apply returns a copy of o with the patch applied.
func (p OrderPatch) Apply(o Order) Order {
	if p.status != nil {
		o.Status = *p.status
	}
	if p.payAmount != nil {
		o.PayAmount = *p.payAmount
	}
	if p.remark != nil {
		o.Remark = *p.remark
	}
	if p.deleted != nil {
		o.Deleted = *p.deleted
	}
	if p.paymentTime != nil {
		o.PaymentTime = p.paymentTime
	}
	if p.deliveryTime != nil {
		o.DeliveryTime = p.deliveryTime
	}
	if p.closingTime != nil {
		o.ClosingTime = p.closingTime
	}
	return o
}

// ItemPatch is a partial update of one or more items.
type ItemPatch struct {
	status       *ItemStatus
	quantity     *int
	price        *int64
	payAmount    *int64
	deliveryType *DeliveryType
	logisticsID  *uuid.UUID
	deleted      *bool
	paymentTime  *time.Time
	deliveryTime *time.Time
	closingTime  *time.Time
}

func (p ItemPatch) WithStatus(s ItemStatus) ItemPatch { p.status = &s; return p }
func (p ItemPatch) WithQuantity(quantity int) ItemPatch { p.quantity = &quantity; return p }
func (p ItemPatch) WithPrice(price int64) ItemPatch { p.price = &price; return p }
func (p ItemPatch) WithPayAmount(amount int64) ItemPatch { p.payAmount = &amount; return p }
func (p ItemPatch) WithDeliveryType(d DeliveryType) ItemPatch { p.deliveryType = &d; return p }
func (p ItemPatch) WithLogisticsID(id uuid.UUID) ItemPatch { p.logisticsID = &id; return p }
func (p ItemPatch) WithDeleted(deleted bool) ItemPatch { p.deleted = &deleted; return p }
func (p ItemPatch) WithPaymentTime(t time.Time) ItemPatch { p.paymentTime = &t; return p }
func (p ItemPatch) WithDeliveryTime(t time.Time) ItemPatch { p.deliveryTime = &t; return p }
func (p ItemPatch) WithClosingTime(t time.Time) ItemPatch { p.closingTime = &t; return p }

func (p ItemPatch) Status() (ItemStatus, bool) { return deref(p.status) }
func (p ItemPatch) Quantity() (int, bool) { return deref(p.quantity) }
func (p ItemPatch) Price() (int64, bool) { return deref(p.price) }
func (p ItemPatch) PayAmount() (int64, bool) { return deref(p.payAmount) }
func (p ItemPatch) DeliveryType() (DeliveryType, bool) { return deref(p.deliveryType) }
func (p ItemPatch) LogisticsID() (uuid.UUID, bool) { return deref(p.logisticsID) }
func (p ItemPatch) Deleted() (bool, bool) { return deref(p.deleted) }
func (p ItemPatch) PaymentTime() (time.Time, bool) { return deref(p.paymentTime) }
func (p ItemPatch) DeliveryTime() (time.Time, bool) { return deref(p.deliveryTime) }
func (p ItemPatch) ClosingTime() (time.Time, bool) { return deref(p.closingTime) }

func (p ItemPatch) IsEmpty() bool {
	return p.status == nil && p.quantity == nil && p.price == nil && p.payAmount == nil &&
		p.deliveryType == nil && p.logisticsID == nil && p.deleted == nil &&
		p.paymentTime == nil && p.deliveryTime == nil && p.closingTime == nil
}

func (p ItemPatch) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("item patch")
	}
	if p.status != nil {
		if err := p.status.Validate(); err != nil {
			return err
		}
	}
	if p.quantity != nil {
		if err := ValidateQuantity(*p.quantity); err != nil {
			return err
		}
	}
	if p.price != nil && *p.price <= 0 {
		return ErrInvalidPrice
	}
	if p.payAmount != nil && *p.payAmount < 0 {
		return ErrNegativeAmount
	}
	if p.deliveryType != nil {
		return p.deliveryType.Validate()
	}
	return nil
}

// Apply returns a copy of item with the patch applied.
func (p ItemPatch) Apply(item Item) Item {
	if p.status != nil {
		item.Status = *p.status
	}
	if p.quantity != nil {
		item.Quantity = *p.quantity
	}
	if p.price != nil {
		item.Price = *p.price
	}
	if p.payAmount != nil {
		item.PayAmount = *p.payAmount
	}
	if p.deliveryType != nil {
		item.DeliveryType = *p.deliveryType
	}
	if p.logisticsID != nil {
		item.LogisticsID = p.logisticsID
	}
	if p.deleted != nil {
		item.Deleted = *p.deleted
	}
	if p.paymentTime != nil {
		item.PaymentTime = p.paymentTime
	}
	if p.deliveryTime != nil {
		item.DeliveryTime = p.deliveryTime
	}
	if p.closingTime != nil {
		item.ClosingTime = p.closingTime
	}
	return item
}

// LogisticsPatch is a partial update of a shipment record.
type LogisticsPatch struct {
	carrier        *string
	trackingNumber *string
	name           *string
	mobile         *string
	address        *string
}

func (p LogisticsPatch) WithCarrier(carrier string) LogisticsPatch { p.carrier = &carrier; return p }
func (p LogisticsPatch) WithTrackingNumber(number string) LogisticsPatch {
	p.trackingNumber = &number
	return p
}
func (p LogisticsPatch) WithName(name string) LogisticsPatch { p.name = &name; return p }
func (p LogisticsPatch) WithMobile(mobile string) LogisticsPatch { p.mobile = &mobile; return p }
func (p LogisticsPatch) WithAddress(address string) LogisticsPatch { p.address = &address; return p }

func (p LogisticsPatch) Carrier() (string, bool) { return deref(p.carrier) }
func (p LogisticsPatch) TrackingNumber() (string, bool) { return deref(p.trackingNumber) }
func (p LogisticsPatch) Name() (string, bool) { return deref(p.name) }
func (p LogisticsPatch) Mobile() (string, bool) { return deref(p.mobile) }
func (p LogisticsPatch) Address() (string, bool) { return deref(p.address) }

func (p LogisticsPatch) IsEmpty() bool {
	return p.carrier == nil && p.trackingNumber == nil && p.name == nil && p.mobile == nil && p.address == nil
}

func (p LogisticsPatch) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("logistics patch")
	}
	fields := []struct {
		name  string
		value *string
	}{
		{"carrier", p.carrier},
		{"tracking number", p.trackingNumber},
		{"receiver name", p.name},
		{"receiver mobile", p.mobile},
		{"receiver address", p.address},
	}
	for _, f := range fields {
		if f.value != nil && *f.value == "" {
			return errs.NewValueIsRequiredError(f.name)
		}
	}
	return nil
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}
