package errors

import "net/http"

// ErrInvalidCredentials is returned for both an unknown email and a
// wrong password so the response does not reveal whether an account
// exists.
var ErrInvalidCredentials = &Exception{
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
