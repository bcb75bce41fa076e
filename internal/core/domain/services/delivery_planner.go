package services

import (
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// DeliveryPlan is the outcome of planning one shipment.
type DeliveryPlan struct {
	// Shipped are the requested items, in the order they were loaded.
	Shipped []*order.Item
	// Outstanding counts items that keep waiting for shipment afterwards.
	Outstanding int
}

// IsLastBatch reports whether the shipment leaves nothing to ship, which
// promotes the order to ALREADY_SHIPMENT.
func (p DeliveryPlan) IsLastBatch() bool {
	return p.Outstanding == 0
}

// ShippedIDs returns the ids of the shipped items.
func (p DeliveryPlan) ShippedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Shipped))
	for _, item := range p.Shipped {
		ids = append(ids, item.ID)
	}
	return ids
}

// DeliveryPlanner decides which items of an order a shipment covers.
//
// Business rules:
//   - every requested item must be a non-deleted item of the order waiting for shipment
//   - nothing is shipped if a single requested item fails that rule
//   - the shipment is the last one when no other item waits for shipment
type DeliveryPlanner struct{}

func NewDeliveryPlanner() DeliveryPlanner {
	return DeliveryPlanner{}
}

// Plan matches requested against items. Duplicate ids in requested count once.
// It returns order.ErrDeliveryDataMismatch when some requested id is not a
// shippable item of the order.
func (DeliveryPlanner) Plan(items []*order.Item, requested []uuid.UUID) (DeliveryPlan, error) {
	wanted := toSet(requested)
	if len(wanted) == 0 {
		return DeliveryPlan{}, errs.NewValueIsRequiredError("item ids")
	}

	plan := DeliveryPlan{Shipped: make([]*order.Item, 0, len(wanted))}
	for _, item := range items {
		if !item.IsOutstanding() {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			plan.Shipped = append(plan.Shipped, item)
			continue
		}
		plan.Outstanding++
	}

	if len(plan.Shipped) != len(wanted) {
		return DeliveryPlan{}, fmt.Errorf("%d of %d requested items can be shipped: %w",
			len(plan.Shipped), len(wanted), order.ErrDeliveryDataMismatch)
	}

	return plan, nil
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
