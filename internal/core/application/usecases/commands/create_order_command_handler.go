package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// PaymentSettings switch the pending payment step of order creation.
type PaymentSettings struct {
	Enabled bool
	// Expiry is how long the buyer has to pay. It also drives the
	// payment-expiry job.
	Expiry time.Duration
}

// CreateOrderResult identifies the new order.
type CreateOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber string
	PayAmount   int64
}

// CreateOrderCommandHandler prices the requested skus, snapshots them onto new
// items, resolves the recipient and stores the whole aggregate atomically.
//
// Collaborators are called before the transaction opens. The payment step,
// when enabled, runs inside the transaction so its failure rolls back the
// order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.CatalogService
	addresses  ports.AddressService
	payments   ports.PaymentService
	numbers    ports.OrderNumberGenerator
	payment    PaymentSettings
	now        Clock
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	catalog ports.CatalogService,
	addresses ports.AddressService,
	payments ports.PaymentService,
	numbers ports.OrderNumberGenerator,
	payment PaymentSettings,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		addresses:  addresses,
		payments:   payments,
		numbers:    numbers,
		payment:    payment,
		now:        utcNow,
	}
}

// Handle creates the order in WAITING_PAYMENT and returns its identity and total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	snapshots, err := h.priceLines(ctx, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	number, err := h.numbers.Next(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now()
	o, err := order.NewOrder(uuid.New(), number, cmd.UserID(), 0, cmd.Remark(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]*order.Item, 0, len(snapshots))
	for i, line := range cmd.Lines() {
		item, err := order.NewItem(uuid.New(), o, snapshots[i], line.Quantity, now)
		if err != nil {
			return CreateOrderResult{}, fmt.Errorf("sku %s: %w", line.SkuID, err)
		}
		items = append(items, item)
	}
	o.PayAmount = services.CalculatePayAmount(items)

	address, err := h.addresses.GetAddress(ctx, cmd.UserID(), cmd.AddressID())
	if err != nil {
		return CreateOrderResult{}, fmt.Errorf("%w: %w", order.ErrAddressLookupFailed, err)
	}
	recipient, err := order.NewRecipient(uuid.New(), o.ID, address, now)
	if err != nil {
		return CreateOrderResult{}, fmt.Errorf("%w: %w", order.ErrAddressLookupFailed, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.OrderItemRepository().AddAll(ctx, items); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.OrderRecipientRepository().Add(ctx, recipient); err != nil {
		return CreateOrderResult{}, err
	}

	if h.payment.Enabled {
		if _, err = h.payments.CreatePendingTransaction(ctx, ports.PendingTransaction{
			OrderID:     o.ID,
			OrderNumber: o.Number,
			UserID:      o.UserID,
			Amount:      o.PayAmount,
			ClientIP:    cmd.ClientIP(),
			ExpiresAt:   now.Add(h.payment.Expiry),
		}); err != nil {
			return CreateOrderResult{}, fmt.Errorf("%w: %w", order.ErrPaymentFailed, err)
		}
	}

	uow.Raise(order.NewEvent(order.EventOrderCreated, *o, nil, now))

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     o.ID,
		OrderNumber: o.Number,
		PayAmount:   o.PayAmount,
	}, nil
}

// priceLines returns one sku snapshot per command line, in line order.
func (h CreateOrderCommandHandler) priceLines(ctx context.Context, cmd CreateOrderCommand) ([]order.SkuSnapshot, error) {
	priced, err := h.catalog.GetPricedSkus(ctx, cmd.SkuIDs())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", order.ErrCatalogLookupFailed, err)
	}

	bySku := make(map[string]ports.PricedSku, len(priced))
	for _, sku := range priced {
		bySku[sku.SkuID] = sku
	}

	lines := cmd.Lines()
	for _, line := range lines {
		if _, ok := bySku[line.SkuID]; !ok {
			return nil, fmt.Errorf("sku %s: %w", line.SkuID, order.ErrSkuNotFound)
		}
	}
	if len(priced) != len(lines) {
		return nil, fmt.Errorf("requested %d skus, catalog returned %d: %w",
			len(lines), len(priced), order.ErrItemCountMismatch)
	}

	snapshots := make([]order.SkuSnapshot, 0, len(lines))
	for _, line := range lines {
		sku := bySku[line.SkuID]
		if sku.Quantity <= 0 {
			return nil, fmt.Errorf("sku %s: %w", sku.SkuID, order.ErrInsufficientInventory)
		}
		if sku.Price <= 0 {
			return nil, fmt.Errorf("sku %s: %w", sku.SkuID, order.ErrInvalidPrice)
		}
		snapshots = append(snapshots, order.SkuSnapshot{
			SkuID:    sku.SkuID,
			Name:     sku.Name,
			ImageURL: sku.ImageURL,
			Price:    sku.Price,
		})
	}

	return snapshots, nil
}
