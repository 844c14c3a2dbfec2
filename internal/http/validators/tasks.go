package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "pomoplanner.com/pomoplanner/internal/data_models"
	apperrors "pomoplanner.com/pomoplanner/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	if !isValidDate(r.Date) {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}
	if r.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if r.Pomodoros < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "pomodoros must not be negative")
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if len(r.Fields()) == 0 {
		return apperrors.ErrNoChanges
	}
	if r.Title != nil && *r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	if r.Date != nil && !isValidDate(*r.Date) {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}
	if r.Pomodoros != nil && *r.Pomodoros < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "pomodoros must not be negative")
	}
	return nil
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
