package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-finder/internal/app"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
)

func (h *Handler) getAllBuses(w http.ResponseWriter, r *http.Request) {
	routes, err := h.services.BusService.ListBuses(r.Context())
	if err != nil {
		status, message := responseFromError(err, app.MsgDatabaseError)
		logger.FromRequest(r).Err(err).Int("status", status).Msg("listing buses failed")
		writeMessage(w, r, status, message)
		return
	}

	writeJSON(w, r, routes, http.StatusOK)
}

// searchBus does not require any field. Missing criteria simply match no
// route.
func (h *Handler) searchBus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeRequest(r, searchFromForm)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	results, err := h.services.BusService.SearchBuses(r.Context(), req)
	if err != nil {
		status, message := responseFromError(err, app.MsgDatabaseError)
		log.Err(err).Int("status", status).Msg("bus search failed")
		writeMessage(w, r, status, message)
		return
	}

	writeJSON(w, r, results, http.StatusOK)
}
