package data_models

import "time"

// MessageResponse is the common {success, message} envelope, used for
// registration results and every error response.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginUser struct {
	Email     string    `json:"email"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
