package http

import (
	"errors"
	"net/http"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type errorKind struct {
	sentinel error
	status   int
	code     string
}

var errorKinds = []errorKind{
	{errs.ErrObjectNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{errs.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
	{errs.ErrValueIsInvalid, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
	{errs.ErrValueIsOutOfRange, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
	{errs.ErrValueIsRequired, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
	{errs.ErrCollaboratorFailure, http.StatusBadGateway, "COLLABORATOR_FAILURE"},
}

// classify maps err to a status and a stable code. Business codes win over
// the generic kind codes.
func classify(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.sentinel) {
			if code, ok := errs.Code(err); ok {
				return kind.status, code
			}
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

// fail writes a use case error.
func (s *Server) fail(c echo.Context, err error) error {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		message = "internal error"
	}
	return c.JSON(status, ErrorResponse{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: message})
}

// handleEchoError renders errors returned by echo itself, such as unknown
// routes, in the same shape as use case errors.
func (s *Server) handleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(httpErr.Code), " ", "_"))
		_ = c.JSON(httpErr.Code, ErrorResponse{Code: code, Message: message})
		return
	}

	_ = s.fail(c, err)
}
