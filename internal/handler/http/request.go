package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-bus-finder/models"
)

const formContentType = "application/x-www-form-urlencoded"

// decodeRequest reads the request body into a T.
//
// URL-encoded forms are converted with fromForm; anything else is decoded as
// JSON. An empty body yields the zero T, so missing fields are reported by
// validation rather than as malformed input.
func decodeRequest[T any](r *http.Request, fromForm func(url.Values) T) (T, error) {
	var req T

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == formContentType {
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return fromForm(r.PostForm), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	if err = json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return req, nil
}

func signupFromForm(form url.Values) models.SignupRequest {
	return models.SignupRequest{
		Name:     form.Get("name"),
		Email:    form.Get("email"),
		Password: form.Get("password"),
	}
}

func loginFromForm(form url.Values) models.LoginRequest {
	return models.LoginRequest{
		Email:    form.Get("email"),
		Password: form.Get("password"),
	}
}

// searchFromForm leaves a criterion nil when its key is absent, so it binds
// as NULL. A present but empty key is an empty string.
func searchFromForm(form url.Values) models.SearchBusRequest {
	return models.SearchBusRequest{
		Source:      formValue(form, "source"),
		Destination: formValue(form, "destination"),
		Time:        formValue(form, "time"),
	}
}

func formValue(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}
