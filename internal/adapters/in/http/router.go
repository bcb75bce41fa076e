package http

import (
	"context"
	"net/http"

	"ordering/internal/adapters/in/http/openapi"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const APIPrefix = "/api/v1"

// NewRouter builds the echo instance serving s: the versioned API guarded by
// the OpenAPI request validator, plus health, metrics and swagger UI.
func NewRouter(ctx context.Context, s *Server, metrics *Metrics) (*echo.Echo, error) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := openapi.RegisterSwagger(doc); err != nil {
		return nil, err
	}
	validateRequest, err := openapi.RequestValidator(doc, func(c echo.Context, status int, err error) error {
		return c.JSON(status, ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	})
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.handleEchoError
	// X-Forwarded-For counts only when the peer is a loopback, link-local or
	// private proxy; otherwise the client ip is the peer address.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))
	e.Use(metrics.Middleware)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix, validateRequest)
	RegisterHandlers(api, s)

	return e, nil
}

// RegisterHandlers mounts every operation of s on g.
func RegisterHandlers(g *echo.Group, s *Server) {
	g.GET("/orders", s.ListOrders)
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:orderId", s.GetOrder)
	g.DELETE("/orders/:orderId", s.DeleteOrder)
	g.PUT("/orders/:orderId/remark", s.UpdateOrderRemark)
	g.POST("/orders/:orderId/cancel", s.CancelOrder)
	g.POST("/orders/:orderId/payment", s.ConfirmPayment)
	g.POST("/orders/:orderId/deliveries", s.DeliverOrderItems)
	g.POST("/orders/:orderId/items/removal", s.DeleteOrderItems)
	g.PATCH("/orders/:orderId/items/:itemId", s.UpdateOrderItem)
	g.PUT("/orders/:orderId/items/:itemId/pay-amount", s.UpdateItemPayAmount)
	g.PATCH("/logistics/:logisticsId", s.UpdateLogistics)
}
