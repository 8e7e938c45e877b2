// Package server is the development backend: the REST API the client talks
// to, served from the local SQLite store
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/user"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// New returns an echo instance with the middleware stack and every route
func New(store database.DataStore) *echo.Echo {
	metrics := NewMetrics()
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			metrics.Observe(v.Status)
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
				"user", user.FromHeader(c.Request().Header.Get(user.Header)),
			}
			if v.Error != nil {
				slog.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		},
	}))

	Register(e, store, metrics)
	return e
}

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, store database.DataStore, metrics *Metrics) {
	e.GET("/healthz", healthz)
	e.GET("/metrics", getMetrics(metrics))

	api := e.Group("/api")
	api.GET("/athletes", getAthletes(store))
	api.GET("/programs", getPrograms(store))
	api.PUT("/assignments/:athleteId", putAssignment(store), countSuccess(&metrics.Assignments))

	api.GET("/appointments", listAppointments(store))
	api.GET("/appointments/:id", getAppointment(store))
	api.POST("/appointments", createAppointment(store), countSuccess(&metrics.Bookings))
	api.PUT("/appointments/:id", updateAppointment(store))
	api.DELETE("/appointments/:id", deleteAppointment(store))

	api.GET("/reports/appointments", getStats(store))
	api.GET("/reports/appointments/pdf", getReportPDF)

	api.POST("/curp/validate", postValidateCURP)

	api.GET("/:resource", listRecords(store))
	api.GET("/:resource/:id", getRecord(store))
	api.POST("/:resource", createRecord(store))
	api.PUT("/:resource/:id", updateRecord(store))
	api.DELETE("/:resource/:id", deleteRecord(store))
}

func healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// httpError maps store and validation errors to HTTP errors
func httpError(err error) error {
	var fields validation.Errors
	var field *validation.FieldError
	switch {
	case errors.As(err, &fields):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]any{
			"message": err.Error(),
			"fields":  fields.Fields(),
		})
	case errors.As(err, &field):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]any{
			"message": err.Error(),
			"fields":  map[string]string{field.Field: field.Message},
		})
	case errors.Is(err, models.ErrUnknownResource), errors.Is(err, database.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrInUse), errors.Is(err, database.ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}
