package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Handler handles HTTP requests that create records.
type Handler struct {
	store  *FileStore
	ids    IDGenerator
	clock  Clock
	echo   bool
	logger zerolog.Logger
}

// NewHandler creates a Handler with dependencies.
func NewHandler(store *FileStore, ids IDGenerator, clock Clock, echo bool, logger zerolog.Logger) *Handler {
	return &Handler{store: store, ids: ids, clock: clock, echo: echo, logger: logger}
}

// Routes registers the record endpoints on a new router.
func (h *Handler) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/ychs", h.createHandler(func() Draft { return &CreateYCHRequest{} })).Methods(http.MethodPost)
	router.HandleFunc("/commissions", h.createHandler(func() Draft { return &CreateCommissionRequest{} })).Methods(http.MethodPost)
	router.HandleFunc("/requests", h.createHandler(func() Draft { return &CreateRequestRequest{} })).Methods(http.MethodPost)
	return router
}

// handleHealth processes GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// createHandler processes POST on a record collection. newDraft must return a
// pointer so the body can be decoded into it.
func (h *Handler) createHandler(newDraft func() Draft) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := newDraft()
		if err := decodeDraft(r.Body, draft); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := Stamp(r.Context(), draft, h.ids, h.clock)
		if err != nil {
			h.logger.Error().Err(err).Msg("error stamping record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if _, err := h.store.Persist(rec); err != nil {
			if errors.Is(err, ErrFileExists) {
				http.Error(w, fmt.Sprintf("%s %q already exists", rec.Kind(), FileName(rec)), http.StatusConflict)
			} else {
				h.logger.Error().Err(err).Str("kind", string(rec.Kind())).Msg("error persisting record")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}
		if h.echo {
			if err := h.store.Render(rec); err != nil {
				h.logger.Warn().Err(err).Msg("error rendering record")
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Record-File", FileName(rec))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rec)
	}
}

// decodeDraft strictly decodes a single JSON object into draft.
func decodeDraft(body io.Reader, draft Draft) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(draft); err != nil {
		return fmt.Errorf("%w: invalid request payload: %v", ErrInvalidInput, err)
	}
	return ensureSingleJSON(dec)
}

// ensureSingleJSON rejects anything after the first JSON value.
func ensureSingleJSON(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after the JSON object", ErrInvalidInput)
	}
	return nil
}
