package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "pomoplanner.com/pomoplanner/internal/data_models"
)

func ValidateChatRequest(r *dto.ChatRequest) error {
	if r.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	if r.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	return nil
}
