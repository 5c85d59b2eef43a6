package middleware

import (
	"github.com/labstack/echo/v4"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), key, value)
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
}

// SetSessionID tags the transaction with the booking session
func SetSessionID(c echo.Context, sessionID string) {
	AddAttribute(c, "booking.session_id", sessionID)
}
