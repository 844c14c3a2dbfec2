package errors

import "net/http"

var ErrNoChanges = &Exception{
	Message:    "no changes provided",
	StatusCode: http.StatusBadRequest,
}
