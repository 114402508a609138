package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bus-finder/models"
)

func newBodyRequest(contentType, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestDecodeRequest_JSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        models.LoginRequest
		wantErr     bool
	}{
		{"json", "application/json", `{"email":"a@x.io","password":"pw1"}`, models.LoginRequest{Email: "a@x.io", Password: "pw1"}, false},
		{"no content type", "", `{"email":"a@x.io"}`, models.LoginRequest{Email: "a@x.io"}, false},
		{"empty body", "application/json", "", models.LoginRequest{}, false},
		{"whitespace body", "application/json", " \n ", models.LoginRequest{}, false},
		{"unknown fields ignored", "application/json", `{"email":"a@x.io","extra":1}`, models.LoginRequest{Email: "a@x.io"}, false},
		{"truncated", "application/json", `{"email":`, models.LoginRequest{}, true},
		{"wrong type", "application/json", `{"email":5}`, models.LoginRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRequest(newBodyRequest(tt.contentType, tt.body), loginFromForm)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequestBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRequest_Form(t *testing.T) {
	form := url.Values{"name": {"Alice"}, "email": {"a@x.io"}, "password": {"pw1"}}

	got, err := decodeRequest(newBodyRequest(formContentType+"; charset=UTF-8", form.Encode()), signupFromForm)

	require.NoError(t, err)
	assert.Equal(t, models.SignupRequest{Name: "Alice", Email: "a@x.io", Password: "pw1"}, got)
}

func TestDecodeRequest_SearchNullAndAbsent(t *testing.T) {
	got, err := decodeRequest(newBodyRequest("application/json", `{"source":"Pune","destination":null}`), searchFromForm)
	require.NoError(t, err)
	require.NotNil(t, got.Source)
	assert.Equal(t, "Pune", *got.Source)
	assert.Nil(t, got.Destination)
	assert.Nil(t, got.Time)
}

func TestSearchFromForm(t *testing.T) {
	got := searchFromForm(url.Values{"source": {"Pune"}, "time": {""}})

	require.NotNil(t, got.Source)
	assert.Equal(t, "Pune", *got.Source)
	assert.Nil(t, got.Destination)
	require.NotNil(t, got.Time)
	assert.Equal(t, "", *got.Time)
}
