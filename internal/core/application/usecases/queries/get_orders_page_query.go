package queries

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrGetOrdersPageQueryIsNotConstructed = errors.New(
	"GetOrdersPageQuery must be created via NewGetOrdersPageQuery constructor",
)

// OrdersPageCriteria narrows the page. Zero fields do not filter.
type OrdersPageCriteria struct {
	UserID      *uuid.UUID
	Status      *order.Status
	OrderNumber string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	// Page is 1-based. Zero selects the first page.
	Page int
	// Size defaults to DefaultPageSize and may not exceed MaxPageSize.
	Size int
}

// GetOrdersPageQuery returns one page of orders with their items and
// recipients, newest first.
//
// Example:
//
//	status := order.WaitShipment
//	query, err := NewGetOrdersPageQuery(OrdersPageCriteria{Status: &status, Page: 2, Size: 50})
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type GetOrdersPageQuery struct {
	filter ports.OrderFilter
	page   int
	size   int

	guard guard.ConstructorGuard
}

func NewGetOrdersPageQuery(criteria OrdersPageCriteria) (GetOrdersPageQuery, error) {
	page := criteria.Page
	if page == 0 {
		page = 1
	}
	size := criteria.Size
	if size == 0 {
		size = DefaultPageSize
	}

	if err := errors.Join(
		validatePaging(page, size),
		validateCriteria(criteria),
	); err != nil {
		return GetOrdersPageQuery{}, err
	}

	return GetOrdersPageQuery{
		filter: ports.OrderFilter{
			UserID:      criteria.UserID,
			Status:      criteria.Status,
			Number:      criteria.OrderNumber,
			CreatedFrom: criteria.CreatedFrom,
			CreatedTo:   criteria.CreatedTo,
			Offset:      (page - 1) * size,
			Limit:       size,
		},
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersPageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPageQueryIsNotConstructed)
}

// Filter is the store filter for the requested page.
func (q GetOrdersPageQuery) Filter() ports.OrderFilter {
	return q.filter
}

func (q GetOrdersPageQuery) Page() int {
	return q.page
}

func (q GetOrdersPageQuery) Size() int {
	return q.size
}

func validatePaging(page, size int) error {
	var err error
	if page < 1 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("page", errors.New("must be at least 1")))
	}
	if size < 1 || size > MaxPageSize {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize))
	}
	return err
}

func validateCriteria(criteria OrdersPageCriteria) error {
	if criteria.Status != nil {
		if err := criteria.Status.Validate(); err != nil {
			return err
		}
	}
	if criteria.UserID != nil && *criteria.UserID == uuid.Nil {
		return errs.NewValueIsInvalidError("user id")
	}
	if criteria.CreatedFrom != nil && criteria.CreatedTo != nil && criteria.CreatedTo.Before(*criteria.CreatedFrom) {
		return errs.NewValueIsInvalidErrorWithCause("created range",
			fmt.Errorf("%s is before %s", criteria.CreatedTo.Format(time.RFC3339), criteria.CreatedFrom.Format(time.RFC3339)))
	}
	return nil
}

// OrderSummary is an order with its non-deleted items and its recipient.
type OrderSummary struct {
	Order     *order.Order
	Items     []*order.Item
	Recipient *order.Recipient
}

// OrdersPage is one page of the filtered orders. Total counts every match.
type OrdersPage struct {
	Total  int64
	Page   int
	Size   int
	Orders []OrderSummary
}
