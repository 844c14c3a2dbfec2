package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "pomoplanner.com/pomoplanner/internal/data_models"
	"pomoplanner.com/pomoplanner/internal/http/validators"
	"pomoplanner.com/pomoplanner/internal/services"
)

type Handler struct {
	accounts *services.AccountService
	tasks    *services.TaskService
	chat     *services.ChatService
}

func NewHandler(accounts *services.AccountService, tasks *services.TaskService, chat *services.ChatService) *Handler {
	return &Handler{
		accounts: accounts,
		tasks:    tasks,
		chat:     chat,
	}
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Hello, World!")
}

func (h *Handler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateAccountRequest(&req); err != nil {
		return err
	}

	if _, err := h.accounts.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{
		Success: true,
		Message: "Account created successfully",
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	account, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User: dto.LoginUser{
			Email:     account.Email,
			UserID:    account.ID.Hex(),
			CreatedAt: account.CreatedAt,
		},
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), req.Title, req.Date, req.Time, req.Pomodoros, req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	tasks, err := h.tasks.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("taskId")

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.UpdateTask(c.Request().Context(), id, req.Fields())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateChatRequest(&req); err != nil {
		return err
	}

	reply, err := h.chat.Respond(c.Request().Context(), req.UserID, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Success:  true,
		Response: reply,
	})
}
