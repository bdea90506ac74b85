// Package api serves preset import, export and the preset library over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cwbudde/algo-eq/internal/library"
)

// maxBodyBytes caps request bodies. Preset files are a few KiB at most.
const maxBodyBytes = 1 << 20

// RegisterRoutes returns the router for the preset service.
func RegisterRoutes(lib *library.Library) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{library: lib}

	r.Post("/api/import", h.importPreset)
	r.Post("/api/export", h.exportPreset)

	r.Route("/api/presets", func(r chi.Router) {
		r.Get("/", h.listPresets)
		r.Post("/", h.createPreset)
		r.Get("/recent", h.recentPresets)
		r.Get("/{id}", h.getPreset)
		r.Delete("/{id}", h.deletePreset)
		r.Get("/{id}/apo", h.presetAPO)
		r.Get("/{id}/response", h.presetResponse)
		r.Post("/{id}/use", h.usePreset)
	})

	return r
}

type handler struct {
	library *library.Library
}
