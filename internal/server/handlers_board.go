package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

func getAthletes(store database.AthleteReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		athletes, err := store.ListAthletes(c.Request().Context())
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, athletes)
	}
}

func getPrograms(store database.ProgramReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		programs, err := store.ListPrograms(c.Request().Context())
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, programs)
	}
}

func putAssignment(store database.ProgramWriter) echo.HandlerFunc {
	return func(c echo.Context) error {
		athleteID, err := strconv.Atoi(c.Param("athleteId"))
		if err != nil || athleteID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid athlete id")
		}
		var body models.Assignment
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		if body.ProgramID < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid program id")
		}

		err = store.AssignAthlete(c.Request().Context(), types.AthleteIDFromInt(athleteID), body.ProgramID, body.Position)
		if err != nil {
			return httpError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
