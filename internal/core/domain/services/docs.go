// Package services holds the pure decisions of the order lifecycle that span
// several records of one order. None of them touch storage; handlers load the
// records, ask a service what to change and write the result.
//
// The package includes:
//   - CalculatePayAmount: the amount calculator used whenever an order total is rebuilt
//   - DeliveryPlanner: picks the items of a shipment and tells whether it is the last one
//   - ItemRemovalPlanner: checks an item removal and computes the remaining items
package services
