package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	return id, err
}

// listOrdersParams binds the query string of GET /orders.
func listOrdersParams(c echo.Context) (queries.OrdersPageCriteria, error) {
	var (
		criteria    queries.OrdersPageCriteria
		status      *string
		orderNumber *string
		page, size  *int
		from, to    *time.Time
	)
	params := c.QueryParams()

	for _, bind := range []struct {
		name string
		dest any
	}{
		{"user_id", &criteria.UserID},
		{"status", &status},
		{"order_number", &orderNumber},
		{"created_from", &from},
		{"created_to", &to},
		{"page", &page},
		{"size", &size},
	} {
		if err := runtime.BindQueryParameter("form", true, false, bind.name, params, bind.dest); err != nil {
			return queries.OrdersPageCriteria{}, err
		}
	}

	if status != nil {
		parsed, err := order.ParseStatus(*status)
		if err != nil {
			return queries.OrdersPageCriteria{}, err
		}
		criteria.Status = &parsed
	}
	if orderNumber != nil {
		criteria.OrderNumber = *orderNumber
	}
	if page != nil {
		criteria.Page = *page
	}
	if size != nil {
		criteria.Size = *size
	}
	criteria.CreatedFrom = from
	criteria.CreatedTo = to

	return criteria, nil
}
