package services

import (
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// RemovalPlan is the outcome of planning an item removal.
type RemovalPlan struct {
	Removed   []uuid.UUID
	Remaining []*order.Item
}

// PayAmount is the order total after the removal.
func (p RemovalPlan) PayAmount() int64 {
	return CalculatePayAmount(p.Remaining)
}

// CompletesShipment reports whether the removal leaves a WAIT_SHIPMENT order
// with shipped items only, which makes the order ALREADY_SHIPMENT.
func (p RemovalPlan) CompletesShipment(status order.Status) bool {
	if status != order.WaitShipment {
		return false
	}
	shipped := false
	for _, item := range p.Remaining {
		switch item.Status {
		case order.ItemWaitShipment:
			return false
		case order.ItemAlreadyShipment:
			shipped = true
		}
	}
	return shipped
}

// ItemRemovalPlanner checks that removing items keeps the order valid.
type ItemRemovalPlanner struct{}

func NewItemRemovalPlanner() ItemRemovalPlanner {
	return ItemRemovalPlanner{}
}

// Plan splits the non-deleted items into removed and remaining ones. At least
// one item has to remain, and every requested id must be a non-deleted item of
// the order.
func (ItemRemovalPlanner) Plan(items []*order.Item, requested []uuid.UUID) (RemovalPlan, error) {
	wanted := toSet(requested)
	if len(wanted) == 0 {
		return RemovalPlan{}, errs.NewValueIsRequiredError("item ids")
	}

	plan := RemovalPlan{
		Removed:   make([]uuid.UUID, 0, len(wanted)),
		Remaining: make([]*order.Item, 0, len(items)),
	}
	for _, item := range items {
		if item.Deleted {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			plan.Removed = append(plan.Removed, item.ID)
			delete(wanted, item.ID)
			continue
		}
		plan.Remaining = append(plan.Remaining, item)
	}

	if len(plan.Remaining) == 0 {
		return RemovalPlan{}, order.ErrOrderMustHaveAtLeastOneItem
	}
	for id := range wanted {
		return RemovalPlan{}, fmt.Errorf("item %s: %w", id, order.ErrOrderItemNotFound)
	}

	return plan, nil
}
