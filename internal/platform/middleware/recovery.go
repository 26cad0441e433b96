package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthhub/healthhub/internal/platform/apperr"
)

// Recovery turns a handler panic into an unexpected-kind error so the
// client gets the same masked response as any other internal failure.
// The panic value and stack land in the log only.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				rid, _ := c.Get("request_id").(string)
				logger.Error().
					Str("request_id", rid).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				err = apperr.Wrap(apperr.Unexpected, "handler panic", fmt.Errorf("panic: %v", r))
			}()
			return next(c)
		}
	}
}
