package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks every request that matches an operation of doc
// against its parameters, body schema and security requirements.
// Requests for paths outside the document (health, metrics, swagger) pass through.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: requirePrincipal,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// not an API operation; echo answers 404/405 itself
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return validationError(err)
			}

			return next(c)
		}
	}, nil
}

func requirePrincipal(_ context.Context, input *openapi3filter.AuthenticationInput) error {
	if _, ok := PrincipalFromContext(input.RequestValidationInput.Request.Context()); !ok {
		return ErrUnauthorized
	}
	return nil
}

func validationError(err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		return ErrUnauthorized
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return echo.NewHTTPError(http.StatusBadRequest, describeRequestError(requestErr))
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// describeRequestError keeps the field and the broken rule, dropping the schema dump.
func describeRequestError(err *openapi3filter.RequestError) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err.Err, &schemaErr) {
		reason := schemaErr.Reason
		if field := strings.Join(schemaErr.JSONPointer(), "."); field != "" {
			reason = field + ": " + reason
		}
		if err.Parameter != nil {
			return fmt.Sprintf("parameter %s: %s", err.Parameter.Name, reason)
		}
		return reason
	}

	if err.Parameter != nil {
		return fmt.Sprintf("parameter %s: %s", err.Parameter.Name, err.Err)
	}
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Reason
}
