package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	Requests    atomic.Int64
	ClientError atomic.Int64
	ServerError atomic.Int64
	Assignments atomic.Int64
	Bookings    atomic.Int64
	StartTime   time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// Observe counts one finished request by its status code
func (m *Metrics) Observe(status int) {
	m.Requests.Add(1)
	switch {
	case status >= http.StatusInternalServerError:
		m.ServerError.Add(1)
	case status >= http.StatusBadRequest:
		m.ClientError.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests    int64     `json:"requests"`
	ClientError int64     `json:"client_errors"`
	ServerError int64     `json:"server_errors"`
	Assignments int64     `json:"assignments"`
	Bookings    int64     `json:"bookings"`
	StartTime   time.Time `json:"start_time"`
	Uptime      string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:    m.Requests.Load(),
		ClientError: m.ClientError.Load(),
		ServerError: m.ServerError.Load(),
		Assignments: m.Assignments.Load(),
		Bookings:    m.Bookings.Load(),
		StartTime:   m.StartTime,
		Uptime:      time.Since(m.StartTime).Round(time.Second).String(),
	}
}

// countSuccess increments counter after the wrapped handler succeeds
func countSuccess(counter *atomic.Int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			counter.Add(1)
			return nil
		}
	}
}

func getMetrics(m *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, m.GetSnapshot())
	}
}
