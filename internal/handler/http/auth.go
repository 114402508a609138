package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-finder/internal/app"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeRequest(r, signupFromForm)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	if err = h.services.AuthService.Signup(ctx, req); err != nil {
		status, message := responseFromError(err, app.MsgSignupFailed)
		log.Err(err).Int("status", status).Msg("signup failed")
		writeMessage(w, r, status, message)
		return
	}

	writeMessage(w, r, http.StatusOK, app.MsgUserRegistered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeRequest(r, loginFromForm)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		status, message := responseFromError(err, app.MsgInternalServerError)
		log.Err(err).Int("status", status).Msg("login failed")
		writeMessage(w, r, status, message)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	writeJSON(w, r, models.LoginResponse{Message: app.MsgLoginSuccessful, UserID: user.ID}, http.StatusOK)
}
