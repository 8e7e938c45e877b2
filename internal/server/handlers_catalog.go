package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

func listRecords(store database.CatalogRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := store.ListRecords(c.Request().Context(), c.Param("resource"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, records)
	}
}

func getRecord(store database.CatalogRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		rec, err := store.GetRecord(c.Request().Context(), c.Param("resource"), id)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, rec)
	}
}

func createRecord(store database.CatalogRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		resource := c.Param("resource")
		rec, err := decodeRecord(c, resource)
		if err != nil {
			return err
		}
		created, err := store.CreateRecord(c.Request().Context(), resource, rec)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateRecord(store database.CatalogRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		resource := c.Param("resource")
		id, err := idParam(c)
		if err != nil {
			return err
		}
		rec, err := decodeRecord(c, resource)
		if err != nil {
			return err
		}
		rec.SetRecordKey(id)
		updated, err := store.UpdateRecord(c.Request().Context(), resource, rec)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteRecord(store database.CatalogRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		if err := store.DeleteRecord(c.Request().Context(), c.Param("resource"), id); err != nil {
			return httpError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// decodeRecord reads the body into the resource's model and validates it
func decodeRecord(c echo.Context, resource string) (models.Record, error) {
	if !models.IsCatalogResource(resource) {
		return nil, httpError(models.ErrUnknownResource)
	}
	rec, err := models.NewRecord(resource)
	if err != nil {
		return nil, httpError(err)
	}
	if err := json.NewDecoder(c.Request().Body).Decode(rec); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := rec.Validate(); err != nil {
		return nil, httpError(err)
	}
	return rec, nil
}

func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// ============================================================================
// Appointments
// ============================================================================

func listAppointments(store database.AppointmentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		appts, err := store.ListAppointments(c.Request().Context())
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, appts)
	}
}

func getAppointment(store database.AppointmentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		appt, err := store.GetAppointment(c.Request().Context(), types.AppointmentIDFromInt(id))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, appt)
	}
}

func createAppointment(store database.AppointmentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var appt models.Appointment
		if err := c.Bind(&appt); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		if err := appt.Validate(); err != nil {
			return httpError(err)
		}
		appt.ID = 0
		created, err := store.CreateAppointment(c.Request().Context(), &appt)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateAppointment(store database.AppointmentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		var appt models.Appointment
		if err := json.NewDecoder(c.Request().Body).Decode(&appt); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		appt.ID = types.AppointmentIDFromInt(id)
		if err := appt.Validate(); err != nil {
			return httpError(err)
		}
		updated, err := store.UpdateAppointment(c.Request().Context(), &appt)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteAppointment(store database.AppointmentRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return err
		}
		if err := store.DeleteAppointment(c.Request().Context(), types.AppointmentIDFromInt(id)); err != nil {
			return httpError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
