package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/eq/preset"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/internal/library"
)

const (
	defaultRate   = 48000.0
	defaultPoints = 64
	maxPoints     = 1024
	responseLoHz  = 20.0
	responseHiHz  = 20000.0
	floorDB       = -200.0
	measureSize   = 16384
	maxSmooth     = 48
)

type createRequest struct {
	Name    string `json:"name"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// ResponsePoint is one point of a magnitude response.
type ResponsePoint struct {
	Frequency   float64 `json:"frequency"`
	MagnitudeDB float64 `json:"magnitudeDb"`
}

// ResponseReply is the body of GET /api/presets/{id}/response.
type ResponseReply struct {
	SampleRate float64         `json:"sampleRate"`
	Smoothing  int             `json:"smoothing,omitempty"`
	Settings   eq.Settings     `json:"settings"`
	Points     []ResponsePoint `json:"points"`
}

func (h *handler) importPreset(w http.ResponseWriter, r *http.Request) {
	format, err := preset.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := preset.ImportReader(http.MaxBytesReader(w, r.Body, maxBodyBytes), format)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) exportPreset(w http.ResponseWriter, r *http.Request) {
	var res preset.Result
	if err := decodeJSON(w, r, &res); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeAPO(w, res)
}

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.List())
}

func (h *handler) recentPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Recent())
}

func (h *handler) createPreset(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	format, err := preset.ParseFormat(req.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.library.Add(req.Name, format, req.Content)
	switch {
	case errors.Is(err, library.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		http.Error(w, "failed to save preset", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, e)
	}
}

func (h *handler) getPreset(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	err := h.library.Delete(chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, library.ErrNotFound):
		http.Error(w, "preset not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "failed to delete preset", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handler) usePreset(w http.ResponseWriter, r *http.Request) {
	err := h.library.MarkUsed(chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, library.ErrNotFound):
		http.Error(w, "preset not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "failed to update recently used", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, h.library.Recent())
	}
}

// presetAPO returns the stored preset as the equalizer would export it.
func (h *handler) presetAPO(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeAPO(w, eq.Load(e.Result).Preset())
}

func (h *handler) presetResponse(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}

	rate, err := queryFloat(r, "rate", defaultRate)
	if err != nil || rate <= 2*responseLoHz {
		http.Error(w, "invalid rate", http.StatusBadRequest)
		return
	}
	points, err := queryInt(r, "points", defaultPoints)
	if err != nil || points < 2 || points > maxPoints {
		http.Error(w, "invalid points", http.StatusBadRequest)
		return
	}

	smooth, err := queryInt(r, "smooth", 0)
	if err != nil || smooth < 0 || smooth > maxSmooth {
		http.Error(w, "invalid smooth", http.StatusBadRequest)
		return
	}

	s := eq.Load(e.Result)
	freqs := spectrum.LogFrequencies(responseLoHz, min(responseHiHz, rate/2*0.999), points)

	var mags []float64
	if smooth > 0 {
		mags, err = s.MeasuredDB(freqs, rate, measureSize, smooth)
	} else {
		mags, err = s.MagnitudeDB(freqs, rate)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply := ResponseReply{
		SampleRate: rate,
		Smoothing:  smooth,
		Settings:   s,
		Points:     make([]ResponsePoint, len(freqs)),
	}
	for i := range freqs {
		reply.Points[i] = ResponsePoint{Frequency: freqs[i], MagnitudeDB: math.Max(mags[i], floorDB)}
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (library.Entry, bool) {
	e, err := h.library.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "preset not found", http.StatusNotFound)
		return library.Entry{}, false
	}
	return e, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "encode response: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeAPO(w http.ResponseWriter, res preset.Result) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, preset.WriteAPO(res))
}

func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
