package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const pingTimeout = 5 * time.Second

// PoolStats is the connection-pool snapshot reported by the database
// health endpoint, shaped for the camelCase wire contract.
type PoolStats struct {
	TotalConns    int32 `json:"totalConns"`
	IdleConns     int32 `json:"idleConns"`
	AcquiredConns int32 `json:"acquiredConns"`
	MaxConns      int32 `json:"maxConns"`
}

// Stats snapshots the pool counters.
func Stats(pool *pgxpool.Pool) PoolStats {
	s := pool.Stat()
	return PoolStats{
		TotalConns:    s.TotalConns(),
		IdleConns:     s.IdleConns(),
		AcquiredConns: s.AcquiredConns(),
		MaxConns:      s.MaxConns(),
	}
}

// HealthHandler reports database reachability. A ping decides the
// verdict; pool counters ride along for operators. Failure detail stays
// in the server log rather than the response body.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()

		body := echo.Map{"database": Stats(pool)}
		if err := pool.Ping(ctx); err != nil {
			body["status"] = "unavailable"
			return c.JSON(http.StatusServiceUnavailable, body)
		}
		body["status"] = "ok"
		return c.JSON(http.StatusOK, body)
	}
}
