package http

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "pomoplanner.com/pomoplanner/internal/data_models"
	apperrors "pomoplanner.com/pomoplanner/internal/errors"
)

// NewErrorHandler maps every error a handler returns to exactly one
// {success:false, message} response. Domain Exceptions carry their own
// status; anything unrecognized becomes a generic 500 and the detail
// goes to the log only.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperrors.StatusCode(err)
		message := "internal server error"

		var ex *apperrors.Exception
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &ex):
			message = ex.Message
		case errors.As(err, &httpErr):
			status = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		default:
			logger.Error("unhandled error", zap.Error(err))
		}

		if writeErr := c.JSON(status, dto.MessageResponse{Success: false, Message: message}); writeErr != nil {
			logger.Error("writing error response", zap.Error(writeErr))
		}
	}
}
