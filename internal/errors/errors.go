package errors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned when registering with a username that exists.
	ErrUsernameTaken = errors.New("username is not available")
	// ErrEmailTaken is returned when registering with an email that exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned for a bad username or password. The
	// two cases share one error so responses cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)

// StatusFor maps a domain error to the HTTP status rendered at the error
// boundary. Recoverable errors are handled in-route and never reach it;
// authorization failures redirect in-route rather than rendering a status.
func StatusFor(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
