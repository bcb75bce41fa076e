package services

import "ordering/internal/core/domain/model/order"

// CalculatePayAmount returns the sum of the pay amounts of items. Callers pass
// only the items that count towards the order total, i.e. the non-deleted
// ones. An empty slice sums to 0.
func CalculatePayAmount(items []*order.Item) int64 {
	var total int64
	for _, item := range items {
		total += item.PayAmount
	}
	return total
}
