// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered as the router's
// MethodNotAllowed handler.
//
// Instead of chi's default 405 it answers 404 with the usual envelope, so
// callers using an unsupported method cannot probe which paths exist. A
// request whose method does match a route is handed back to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeFailure(w, r, http.StatusNotFound, app.MsgNotFound)
	}
}

// notFound renders unknown routes in the envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusNotFound, app.MsgNotFound)
}
