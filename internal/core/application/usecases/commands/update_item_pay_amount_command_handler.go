package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// UpdateItemPayAmountCommandHandler writes a new item amount and the order
// total recomputed from every non-deleted item, in one transaction.
type UpdateItemPayAmountCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewUpdateItemPayAmountCommandHandler(uowFactory ItemUoWFactory) UpdateItemPayAmountCommandHandler {
	return UpdateItemPayAmountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the new order total.
func (h UpdateItemPayAmountCommandHandler) Handle(ctx context.Context, cmd UpdateItemPayAmountCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := lockOrder(ctx, uow.OrderRepository(), cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if cmd.PayAmount() < 0 {
		return 0, fmt.Errorf("item %s: %w", cmd.ItemID(), order.ErrNegativeAmount)
	}

	itemRepo := uow.OrderItemRepository()
	items, err := itemRepo.ListByOrder(ctx, o.ID, false)
	if err != nil {
		return 0, err
	}

	patch := order.ItemPatch{}.WithPayAmount(cmd.PayAmount())
	found := false
	recomputed := make([]*order.Item, 0, len(items))
	for _, item := range items {
		if item.ID == cmd.ItemID() {
			patched := patch.Apply(*item)
			item = &patched
			found = true
		}
		recomputed = append(recomputed, item)
	}
	if !found {
		return 0, fmt.Errorf("item %s of order %s: %w", cmd.ItemID(), o.ID, order.ErrOrderItemNotFound)
	}

	if err = itemRepo.Update(ctx, o.ID, cmd.ItemID(), patch); err != nil {
		return 0, asNotFound(err, order.ErrOrderItemNotFound, "item %s", cmd.ItemID())
	}

	total := services.CalculatePayAmount(recomputed)
	if err = uow.OrderRepository().Update(ctx, o.ID, order.OrderPatch{}.
		WithPayAmount(total).
		WithExpectedVersion(o.Version)); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return total, nil
}
