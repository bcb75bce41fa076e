// Package openapi embeds the HTTP contract of the service and enforces it on
// incoming requests.
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

func init() {
	openapi3.DefineStringFormatValidator("uuid",
		openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load openapi document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, pkgerrors.Wrap(err, "validate openapi document")
	}
	return doc, nil
}

var registerOnce sync.Once

// RegisterSwagger publishes doc to the swag registry served by echo-swagger.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(err, "encode openapi document")
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          doc.Info.Version,
			Title:            doc.Info.Title,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return nil
}

// ErrorHandler writes a rejected request.
type ErrorHandler func(c echo.Context, status int, err error) error

// RequestValidator checks every request that matches an operation of doc
// against its parameters and body. Requests outside the document pass
// through untouched and are left to the echo router.
func RequestValidator(doc *openapi3.T, onError ErrorHandler) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build openapi router")
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return onError(c, http.StatusBadRequest, err)
			}
			return next(c)
		}
	}, nil
}
