package http

import (
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-bus-finder/internal/app"
)

const indexFile = "index.html"

// index serves the front-end entry page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, indexFile))
}

// static is the router's NotFound handler. GET and HEAD requests are served
// from the static directory when one is configured; everything else is 404.
func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	if h.staticDir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, r)
}
