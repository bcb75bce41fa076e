// Package orderrepo persists the order aggregate with GORM: orders, their
// items, recipients, shipments and cancellations, each in its own table. DTOs
// mirror the schema created by the migrations package; the mapping functions
// convert between DTOs and domain records.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number            string    `gorm:"size:32;not null;uniqueIndex"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	PayAmount         int64     `gorm:"not null"`
	Status            int       `gorm:"type:smallint;not null;index"`
	HasReturnExchange int       `gorm:"type:smallint;not null"`
	Remark            string    `gorm:"size:500;not null;default:''"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
	PaymentTime       *time.Time
	DeliveryTime      *time.Time
	ClosingTime       *time.Time
	Deleted           bool `gorm:"not null;default:false"`
	Version           int  `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table.
type OrderItemDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderNumber       string     `gorm:"size:32;not null"`
	SkuID             string     `gorm:"size:64;not null"`
	SkuName           string     `gorm:"size:255;not null"`
	SkuImage          string     `gorm:"size:1024;not null;default:''"`
	Quantity          int        `gorm:"not null"`
	Price             int64      `gorm:"not null"`
	PayAmount         int64      `gorm:"not null"`
	Status            int        `gorm:"type:smallint;not null"`
	DeliveryType      int        `gorm:"type:smallint;not null"`
	LogisticsID       *uuid.UUID `gorm:"type:uuid;index"`
	HasReturnExchange int        `gorm:"type:smallint;not null"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
	PaymentTime       *time.Time
	DeliveryTime      *time.Time
	ReceiverTime      *time.Time
	ClosingTime       *time.Time
	Deleted           bool `gorm:"not null;default:false"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderRecipientDTO is a row of the order_recipients table.
type OrderRecipientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"size:128;not null"`
	Mobile    string    `gorm:"size:32;not null"`
	Address   string    `gorm:"size:512;not null"`
	Type      int       `gorm:"type:smallint;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OrderRecipientDTO) TableName() string {
	return "order_recipients"
}

// OrderLogisticsDTO is a row of the order_logistics table.
type OrderLogisticsDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"size:128;not null"`
	Mobile         string    `gorm:"size:32;not null"`
	Address        string    `gorm:"size:512;not null"`
	Carrier        string    `gorm:"size:64;not null"`
	TrackingNumber string    `gorm:"size:64;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (OrderLogisticsDTO) TableName() string {
	return "order_logistics"
}

// OrderCancellationDTO is a row of the order_cancellations table.
type OrderCancellationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OrderNumber string    `gorm:"size:32;not null"`
	Reason      int       `gorm:"type:smallint;not null"`
	OtherReason string    `gorm:"size:255;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (OrderCancellationDTO) TableName() string {
	return "order_cancellations"
}

// Models lists every DTO, in dependency order, for schema setup in tests.
func Models() []any {
	return []any{
		&OrderDTO{},
		&OrderItemDTO{},
		&OrderRecipientDTO{},
		&OrderLogisticsDTO{},
		&OrderCancellationDTO{},
	}
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                o.ID,
		Number:            o.Number,
		UserID:            o.UserID,
		PayAmount:         o.PayAmount,
		Status:            int(o.Status),
		HasReturnExchange: int(o.HasReturnExchange),
		Remark:            o.Remark,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		PaymentTime:       o.PaymentTime,
		DeliveryTime:      o.DeliveryTime,
		ClosingTime:       o.ClosingTime,
		Deleted:           o.Deleted,
		Version:           o.Version,
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	o := &order.Order{
		ID:                dto.ID,
		Number:            dto.Number,
		UserID:            dto.UserID,
		PayAmount:         dto.PayAmount,
		Status:            order.Status(dto.Status),
		HasReturnExchange: order.ReturnExchange(dto.HasReturnExchange),
		Remark:            dto.Remark,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		PaymentTime:       dto.PaymentTime,
		DeliveryTime:      dto.DeliveryTime,
		ClosingTime:       dto.ClosingTime,
		Deleted:           dto.Deleted,
		Version:           dto.Version,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func itemFromDomain(item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:                item.ID,
		OrderID:           item.OrderID,
		OrderNumber:       item.OrderNumber,
		SkuID:             item.SkuID,
		SkuName:           item.SkuName,
		SkuImage:          item.SkuImage,
		Quantity:          item.Quantity,
		Price:             item.Price,
		PayAmount:         item.PayAmount,
		Status:            int(item.Status),
		DeliveryType:      int(item.DeliveryType),
		LogisticsID:       item.LogisticsID,
		HasReturnExchange: int(item.HasReturnExchange),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
		PaymentTime:       item.PaymentTime,
		DeliveryTime:      item.DeliveryTime,
		ReceiverTime:      item.ReceiverTime,
		ClosingTime:       item.ClosingTime,
		Deleted:           item.Deleted,
	}
}

func itemToDomain(dto OrderItemDTO) *order.Item {
	return &order.Item{
		ID:                dto.ID,
		OrderID:           dto.OrderID,
		OrderNumber:       dto.OrderNumber,
		SkuID:             dto.SkuID,
		SkuName:           dto.SkuName,
		SkuImage:          dto.SkuImage,
		Quantity:          dto.Quantity,
		Price:             dto.Price,
		PayAmount:         dto.PayAmount,
		Status:            order.ItemStatus(dto.Status),
		DeliveryType:      order.DeliveryType(dto.DeliveryType),
		LogisticsID:       dto.LogisticsID,
		HasReturnExchange: order.ReturnExchange(dto.HasReturnExchange),
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		PaymentTime:       dto.PaymentTime,
		DeliveryTime:      dto.DeliveryTime,
		ReceiverTime:      dto.ReceiverTime,
		ClosingTime:       dto.ClosingTime,
		Deleted:           dto.Deleted,
	}
}

func recipientFromDomain(r *order.Recipient) OrderRecipientDTO {
	return OrderRecipientDTO{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Name:      r.Name,
		Mobile:    r.Mobile,
		Address:   r.Address,
		Type:      int(r.Type),
		CreatedAt: r.CreatedAt,
	}
}

func recipientToDomain(dto OrderRecipientDTO) *order.Recipient {
	return &order.Recipient{
		ID:        dto.ID,
		OrderID:   dto.OrderID,
		Name:      dto.Name,
		Mobile:    dto.Mobile,
		Address:   dto.Address,
		Type:      order.RecipientType(dto.Type),
		CreatedAt: dto.CreatedAt,
	}
}

func logisticsFromDomain(l *order.Logistics) OrderLogisticsDTO {
	return OrderLogisticsDTO{
		ID:             l.ID,
		OrderID:        l.OrderID,
		Name:           l.Name,
		Mobile:         l.Mobile,
		Address:        l.Address,
		Carrier:        l.Carrier,
		TrackingNumber: l.TrackingNumber,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func logisticsToDomain(dto OrderLogisticsDTO) *order.Logistics {
	return &order.Logistics{
		ID:             dto.ID,
		OrderID:        dto.OrderID,
		Name:           dto.Name,
		Mobile:         dto.Mobile,
		Address:        dto.Address,
		Carrier:        dto.Carrier,
		TrackingNumber: dto.TrackingNumber,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
}

func cancellationFromDomain(c *order.Cancellation) OrderCancellationDTO {
	return OrderCancellationDTO{
		ID:          c.ID,
		OrderID:     c.OrderID,
		OrderNumber: c.OrderNumber,
		Reason:      int(c.Reason),
		OtherReason: c.OtherReason,
		CreatedAt:   c.CreatedAt,
	}
}

func cancellationToDomain(dto OrderCancellationDTO) *order.Cancellation {
	return &order.Cancellation{
		ID:          dto.ID,
		OrderID:     dto.OrderID,
		OrderNumber: dto.OrderNumber,
		Reason:      order.CancelReason(dto.Reason),
		OtherReason: dto.OtherReason,
		CreatedAt:   dto.CreatedAt,
	}
}
