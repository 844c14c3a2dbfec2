package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	middleware "pomoplanner.com/pomoplanner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, logger *zap.Logger) {
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))

	e.GET("/", h.Welcome)

	e.POST("/api/create-account", h.CreateAccount)
	e.POST("/api/login", h.Login)

	e.POST("/api/tasks", h.CreateTask)
	e.GET("/api/tasks", h.ListTasks)
	e.PUT("/api/tasks/:taskId", h.UpdateTask)

	e.POST("/api/chatbot", h.Chat)
}
