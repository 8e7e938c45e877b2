package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

func getStats(store database.ReportReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		by := models.StatDimension(c.QueryParam("by"))
		if by == "" {
			by = models.ByStatus
		}
		if !by.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown dimension "+string(by))
		}
		stats, err := store.CountAppointments(c.Request().Context(), by)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, stats)
	}
}

// getReportPDF is served by the external report service in deployments
func getReportPDF(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "PDF reports are generated by the report service")
}

type curpRequest struct {
	CURP string `json:"curp"`
}

// postValidateCURP stands in for the population registry: it runs the local
// format and check digit rules only
func postValidateCURP(c echo.Context) error {
	var req curpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	res := models.CURPResult{CURP: validation.NormalizeCURP(req.CURP), Valid: true}
	if err := validation.CURP(req.CURP); err != nil {
		res.Valid = false
		res.Message = err.Error()
	}
	return c.JSON(http.StatusOK, res)
}
