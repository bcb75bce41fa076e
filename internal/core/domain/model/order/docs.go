// Package order holds the purchase order aggregate: the order record, its
// items, the recipient copied from the buyer's address book, shipments
// (logistics) and cancellations.
//
// Statuses, delivery types and the other status families are closed integer
// enums with Validate and String. Partial updates are expressed as immutable
// OrderPatch, ItemPatch and LogisticsPatch values which the store applies.
//
// Business rules:
//   - an order's pay amount is the sum of the pay amounts of its non-deleted items
//   - an order keeps at least one non-deleted item
//   - only orders waiting for payment can be cancelled
//   - an order becomes ALREADY_SHIPMENT once none of its items waits for shipment
package order
