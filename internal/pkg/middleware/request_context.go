package middleware

import (
	"github.com/labstack/echo/v4"
	reqctx "github.com/piresc/chauffeur/internal/pkg/context"
)

// RequestContext copies the request id echo assigned into the request
// context so gateways can forward it downstream.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := reqctx.FromEcho(c)
			if sessionID := c.Param("id"); sessionID != "" {
				ctx = reqctx.WithSessionID(ctx, sessionID)
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
