package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// GetOrdersPageQueryHandler builds a page with a fixed number of round trips:
// count, page of orders, then items and recipients of the whole page fetched
// concurrently and joined in memory.
type GetOrdersPageQueryHandler struct {
	orders     ports.OrderRepository
	items      ports.OrderItemRepository
	recipients ports.OrderRecipientRepository
}

func NewGetOrdersPageQueryHandler(
	orders ports.OrderRepository,
	items ports.OrderItemRepository,
	recipients ports.OrderRecipientRepository,
) GetOrdersPageQueryHandler {
	return GetOrdersPageQueryHandler{
		orders:     orders,
		items:      items,
		recipients: recipients,
	}
}

func (h GetOrdersPageQueryHandler) Handle(ctx context.Context, query GetOrdersPageQuery) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	page := OrdersPage{
		Page:   query.Page(),
		Size:   query.Size(),
		Orders: make([]OrderSummary, 0),
	}

	total, err := h.orders.Count(ctx, query.Filter())
	if err != nil {
		return OrdersPage{}, err
	}
	page.Total = total
	if total == 0 {
		return page, nil
	}

	orders, err := h.orders.Find(ctx, query.Filter())
	if err != nil {
		return OrdersPage{}, err
	}
	if len(orders) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var (
		items      []*order.Item
		recipients []*order.Recipient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = h.items.ListByOrders(gctx, ids, false)
		return err
	})
	g.Go(func() error {
		var err error
		recipients, err = h.recipients.ListByOrders(gctx, ids)
		return err
	})
	if err = g.Wait(); err != nil {
		return OrdersPage{}, err
	}

	itemsByOrder := make(map[uuid.UUID][]*order.Item, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	recipientByOrder := make(map[uuid.UUID]*order.Recipient, len(recipients))
	for _, recipient := range recipients {
		recipientByOrder[recipient.OrderID] = recipient
	}

	for _, o := range orders {
		orderItems := itemsByOrder[o.ID]
		if orderItems == nil {
			orderItems = make([]*order.Item, 0)
		}
		page.Orders = append(page.Orders, OrderSummary{
			Order:     o,
			Items:     orderItems,
			Recipient: recipientByOrder[o.ID],
		})
	}

	return page, nil
}
