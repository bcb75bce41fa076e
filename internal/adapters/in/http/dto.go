package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OrderLineRequest struct {
	SkuID    string `json:"sku_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

type CreateOrderRequest struct {
	UserID    uuid.UUID          `json:"user_id" validate:"required"`
	AddressID uuid.UUID          `json:"address_id" validate:"required"`
	Remark    string             `json:"remark" validate:"max=500"`
	Items     []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	PayAmount   int64     `json:"pay_amount"`
}

type UpdateRemarkRequest struct {
	Remark string `json:"remark" validate:"max=500"`
}

type CancelOrderRequest struct {
	Reason      string `json:"reason" validate:"required"`
	OtherReason string `json:"other_reason" validate:"max=500"`
}

type ConfirmPaymentRequest struct {
	PaidAt time.Time `json:"paid_at" validate:"required"`
}

type DeliverItemsRequest struct {
	ItemIDs        []uuid.UUID `json:"item_ids" validate:"required,min=1"`
	Carrier        string      `json:"carrier" validate:"required"`
	TrackingNumber string      `json:"tracking_number" validate:"required"`
}

type DeliverItemsResponse struct {
	LogisticsID uuid.UUID `json:"logistics_id"`
	OrderStatus string    `json:"order_status"`
}

type DeleteItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=1"`
	Price        *int64  `json:"price" validate:"omitempty,gte=1"`
	DeliveryType *string `json:"delivery_type"`
}

// UpdatePayAmountRequest allows negative amounts through so the use case can
// report them after it has checked the order exists.
type UpdatePayAmountRequest struct {
	PayAmount *int64 `json:"pay_amount" validate:"required"`
}

type PayAmountResponse struct {
	PayAmount int64 `json:"pay_amount"`
}

type UpdateLogisticsRequest struct {
	Carrier        *string `json:"carrier" validate:"omitempty,min=1"`
	TrackingNumber *string `json:"tracking_number" validate:"omitempty,min=1"`
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Mobile         *string `json:"mobile" validate:"omitempty,min=1"`
	Address        *string `json:"address" validate:"omitempty,min=1"`
}

func (r UpdateLogisticsRequest) patch() order.LogisticsPatch {
	p := order.LogisticsPatch{}
	if r.Carrier != nil {
		p = p.WithCarrier(*r.Carrier)
	}
	if r.TrackingNumber != nil {
		p = p.WithTrackingNumber(*r.TrackingNumber)
	}
	if r.Name != nil {
		p = p.WithName(*r.Name)
	}
	if r.Mobile != nil {
		p = p.WithMobile(*r.Mobile)
	}
	if r.Address != nil {
		p = p.WithAddress(*r.Address)
	}
	return p
}

type OrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderNumber       string     `json:"order_number"`
	UserID            uuid.UUID  `json:"user_id"`
	PayAmount         int64      `json:"pay_amount"`
	Status            string     `json:"status"`
	HasReturnExchange string     `json:"has_return_exchange"`
	Remark            string     `json:"remark"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	PaymentTime       *time.Time `json:"payment_time"`
	DeliveryTime      *time.Time `json:"delivery_time"`
	ClosingTime       *time.Time `json:"closing_time"`
}

type ItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	SkuID        string     `json:"sku_id"`
	SkuName      string     `json:"sku_name"`
	SkuImage     string     `json:"sku_image"`
	Quantity     int        `json:"quantity"`
	Price        int64      `json:"price"`
	PayAmount    int64      `json:"pay_amount"`
	Status       string     `json:"status"`
	DeliveryType string     `json:"delivery_type"`
	LogisticsID  *uuid.UUID `json:"logistics_id"`
	DeliveryTime *time.Time `json:"delivery_time"`
}

type RecipientResponse struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

type LogisticsResponse struct {
	ID             uuid.UUID `json:"id"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
}

type CancellationResponse struct {
	Reason      string    `json:"reason"`
	OtherReason string    `json:"other_reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderSummaryResponse struct {
	Order     OrderResponse      `json:"order"`
	Items     []ItemResponse     `json:"items"`
	Recipient *RecipientResponse `json:"recipient"`
}

type OrdersPageResponse struct {
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Size   int                    `json:"size"`
	Orders []OrderSummaryResponse `json:"orders"`
}

type OrderDetailsResponse struct {
	Order        OrderResponse         `json:"order"`
	Items        []ItemResponse        `json:"items"`
	Recipient    *RecipientResponse    `json:"recipient"`
	Logistics    []LogisticsResponse   `json:"logistics"`
	Cancellation *CancellationResponse `json:"cancellation"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.Number,
		UserID:            o.UserID,
		PayAmount:         o.PayAmount,
		Status:            o.Status.String(),
		HasReturnExchange: o.HasReturnExchange.String(),
		Remark:            o.Remark,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		PaymentTime:       o.PaymentTime,
		DeliveryTime:      o.DeliveryTime,
		ClosingTime:       o.ClosingTime,
	}
}

func toItemResponses(items []*order.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemResponse{
			ID:           item.ID,
			SkuID:        item.SkuID,
			SkuName:      item.SkuName,
			SkuImage:     item.SkuImage,
			Quantity:     item.Quantity,
			Price:        item.Price,
			PayAmount:    item.PayAmount,
			Status:       item.Status.String(),
			DeliveryType: item.DeliveryType.String(),
			LogisticsID:  item.LogisticsID,
			DeliveryTime: item.DeliveryTime,
		})
	}
	return resp
}

func toRecipientResponse(r *order.Recipient) *RecipientResponse {
	if r == nil {
		return nil
	}
	return &RecipientResponse{Name: r.Name, Mobile: r.Mobile, Address: r.Address, Type: r.Type.String()}
}

func toOrdersPageResponse(page queries.OrdersPage) OrdersPageResponse {
	resp := OrdersPageResponse{
		Total:  page.Total,
		Page:   page.Page,
		Size:   page.Size,
		Orders: make([]OrderSummaryResponse, 0, len(page.Orders)),
	}
	for _, summary := range page.Orders {
		resp.Orders = append(resp.Orders, OrderSummaryResponse{
			Order:     toOrderResponse(summary.Order),
			Items:     toItemResponses(summary.Items),
			Recipient: toRecipientResponse(summary.Recipient),
		})
	}
	return resp
}

func toOrderDetailsResponse(details queries.OrderDetails) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		Order:     toOrderResponse(details.Order),
		Items:     toItemResponses(details.Items),
		Recipient: toRecipientResponse(details.Recipient),
		Logistics: make([]LogisticsResponse, 0, len(details.Logistics)),
	}
	for _, l := range details.Logistics {
		resp.Logistics = append(resp.Logistics, LogisticsResponse{
			ID:             l.ID,
			Carrier:        l.Carrier,
			TrackingNumber: l.TrackingNumber,
			Name:           l.Name,
			Mobile:         l.Mobile,
			Address:        l.Address,
			CreatedAt:      l.CreatedAt,
		})
	}
	if c := details.Cancellation; c != nil {
		resp.Cancellation = &CancellationResponse{
			Reason:      c.Reason.String(),
			OtherReason: c.OtherReason,
			CreatedAt:   c.CreatedAt,
		}
	}
	return resp
}
