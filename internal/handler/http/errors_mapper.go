package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bus-finder/internal/app"
	"github.com/MKhiriev/go-bus-finder/internal/service"
)

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgAllFieldsRequired},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	{service.ErrPasswordHashing, http.StatusInternalServerError, app.MsgServerError},
}

// responseFromError maps err to a status code and a user-visible message.
// Errors without a mapping, store failures included, become 500 with the
// endpoint-specific fallback message.
func responseFromError(err error, fallback string) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}

	return http.StatusInternalServerError, fallback
}
