package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return errors.New("invalid request body")
	}
	return c.Validate(req)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		lines = append(lines, commands.OrderLine{SkuID: line.SkuID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserID, lines, req.AddressID, req.Remark, c.RealIP())
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		PayAmount:   result.PayAmount,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	criteria, err := listOrdersParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrdersPageQuery(criteria)
	if err != nil {
		return s.fail(c, err)
	}

	page, err := s.handlers.GetOrdersPage.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrdersPageResponse(page))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderRemark handles PUT /api/v1/orders/{orderId}/remark.
func (s *Server) UpdateOrderRemark(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req UpdateRemarkRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewUpdateOrderRemarkCommand(orderID, req.Remark)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.UpdateOrderRemark.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req CancelOrderRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	reason, err := order.ParseCancelReason(req.Reason)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCancelOrderCommand(orderID, reason, req.OtherReason)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) ConfirmPayment(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req ConfirmPaymentRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, req.PaidAt)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.ConfirmPayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeliverOrderItems handles POST /api/v1/orders/{orderId}/deliveries.
func (s *Server) DeliverOrderItems(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req DeliverItemsRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewDeliverOrderItemsCommand(orderID, req.ItemIDs, req.Carrier, req.TrackingNumber)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.DeliverOrderItems.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, DeliverItemsResponse{
		LogisticsID: result.LogisticsID,
		OrderStatus: result.OrderStatus.String(),
	})
}

// DeleteOrderItems handles POST /api/v1/orders/{orderId}/items/removal.
func (s *Server) DeleteOrderItems(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req DeleteItemsRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewDeleteOrderItemsCommand(orderID, req.ItemIDs)
	if err != nil {
		return s.fail(c, err)
	}
	total, err := s.handlers.DeleteOrderItems.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, PayAmountResponse{PayAmount: total})
}

// UpdateOrderItem handles PATCH /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) UpdateOrderItem(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req UpdateItemRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	patch := order.ItemPatch{}
	if req.Quantity != nil {
		patch = patch.WithQuantity(*req.Quantity)
	}
	if req.Price != nil {
		patch = patch.WithPrice(*req.Price)
	}
	if req.DeliveryType != nil {
		deliveryType, err := order.ParseDeliveryType(*req.DeliveryType)
		if err != nil {
			return s.fail(c, err)
		}
		patch = patch.WithDeliveryType(deliveryType)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, itemID, patch)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.UpdateOrderItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateItemPayAmount handles PUT /api/v1/orders/{orderId}/items/{itemId}/pay-amount.
func (s *Server) UpdateItemPayAmount(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req UpdatePayAmountRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewUpdateItemPayAmountCommand(orderID, itemID, *req.PayAmount)
	if err != nil {
		return s.fail(c, err)
	}
	total, err := s.handlers.UpdateItemPayAmount.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, PayAmountResponse{PayAmount: total})
}

// UpdateLogistics handles PATCH /api/v1/logistics/{logisticsId}.
func (s *Server) UpdateLogistics(c echo.Context) error {
	logisticsID, err := pathUUID(c, "logisticsId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req UpdateLogisticsRequest
	if err := bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	cmd, err := commands.NewUpdateLogisticsCommand(logisticsID, req.patch())
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.handlers.UpdateLogistics.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
