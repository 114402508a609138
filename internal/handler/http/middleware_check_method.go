// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bus-finder/internal/app"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// A known path requested with a method it does not serve is answered with
// 404 instead of chi's default 405, so unsupported methods look exactly like
// unknown paths. If the method is registered after all, the request goes
// through the router's normal pipeline.
//
// Only exact pattern matches against [http.Request.URL.Path] are considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeMessage(w, r, http.StatusNotFound, app.MsgNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
