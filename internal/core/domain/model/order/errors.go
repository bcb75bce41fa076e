package order

import "ordering/internal/pkg/errs"

// Business rule violations raised by the order lifecycle. Each one unwraps to
// a single errs kind; callers add the offending ids with fmt.Errorf and %w.
var (
	ErrCatalogLookupFailed = errs.NewCodedError(errs.ErrCollaboratorFailure,
		"CATALOG_LOOKUP_FAILED", "catalog lookup failed")
	ErrSkuNotFound = errs.NewCodedError(errs.ErrObjectNotFound,
		"SKU_NOT_FOUND", "sku not found in catalog")
	ErrItemCountMismatch = errs.NewCodedError(errs.ErrValueIsInvalid,
		"ITEM_COUNT_MISMATCH", "catalog returned a different number of skus than requested")
	ErrInsufficientInventory = errs.NewCodedError(errs.ErrValueIsInvalid,
		"INSUFFICIENT_INVENTORY", "sku is out of stock")
	ErrInvalidPrice = errs.NewCodedError(errs.ErrValueIsInvalid,
		"INVALID_PRICE", "sku price must be positive")
	ErrAddressLookupFailed = errs.NewCodedError(errs.ErrCollaboratorFailure,
		"ADDRESS_LOOKUP_FAILED", "address lookup failed")
	ErrPaymentFailed = errs.NewCodedError(errs.ErrCollaboratorFailure,
		"PAYMENT_FAILED", "pending payment could not be created")

	ErrOrderNotFound = errs.NewCodedError(errs.ErrObjectNotFound,
		"ORDER_NOT_FOUND", "order not found")
	ErrOrderItemNotFound = errs.NewCodedError(errs.ErrObjectNotFound,
		"ORDER_ITEM_NOT_FOUND", "order item not found")
	ErrLogisticsNotFound = errs.NewCodedError(errs.ErrObjectNotFound,
		"LOGISTICS_NOT_FOUND", "logistics record not found")

	ErrNegativeAmount = errs.NewCodedError(errs.ErrValueIsInvalid,
		"NEGATIVE_AMOUNT", "pay amount must not be negative")
	ErrDeliveryDataMismatch = errs.NewCodedError(errs.ErrValueIsInvalid,
		"DELIVERY_DATA_MISMATCH", "not every requested item is waiting for shipment")
	ErrOrderMustHaveAtLeastOneItem = errs.NewCodedError(errs.ErrValueIsInvalid,
		"ORDER_MUST_HAVE_AT_LEAST_ONE_ITEM", "order must keep at least one item")

	ErrInvalidStateForCancel = errs.NewCodedError(errs.ErrInvalidState,
		"INVALID_STATE_FOR_CANCEL", "order can only be cancelled while waiting for payment")
	ErrInvalidStateForPayment = errs.NewCodedError(errs.ErrInvalidState,
		"INVALID_STATE_FOR_PAYMENT", "payment can only be confirmed while waiting for payment")
)
