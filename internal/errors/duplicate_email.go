package errors

import "net/http"

var ErrDuplicateEmail = &Exception{
	Message:    "an account with this email already exists",
	StatusCode: http.StatusBadRequest,
}
