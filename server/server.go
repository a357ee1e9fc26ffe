// Package server exposes the dashboard over HTTP.
//
// The JSON API backs a browser dashboard: it lists the months, computes the
// summary of a month and remembers the month the user selected.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/prefs"
	"github.com/etnz/dashboard/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Handler serves the dashboard API for a fixed data set.
type Handler struct {
	Data   *dashboard.MonthlyTransactionSet
	Pref   *prefs.MonthPreference
	Logger *zap.Logger
}

// New returns the router serving data, remembering the selection in pref.
func New(data *dashboard.MonthlyTransactionSet, pref *prefs.MonthPreference, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := Handler{Data: data, Pref: pref, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.Markdown)
	r.Route("/api", func(api chi.Router) {
		api.Get("/months", h.Months)
		api.Get("/summary", h.Summary)
		api.Put("/selected-month", h.SelectMonth)
	})
	return r
}

type monthsResponse struct {
	Months   []string `json:"months"`
	Selected string   `json:"selected"`
}

type selectRequest struct {
	Month string `json:"month"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Months lists the months of the data set and the selected one.
func (h Handler) Months(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), h.Logger).With(zap.String("method", "Months"))

	selected, err := h.selected(r.Context())
	if err != nil {
		logger.Error(err.Error())
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, monthsResponse{Months: h.Data.Months(), Selected: selected})
}

// Summary computes the summary of the month query parameter, or of the
// selected month.
func (h Handler) Summary(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), h.Logger).With(zap.String("method", "Summary"))

	month := r.URL.Query().Get("month")
	if month == "" {
		var err error
		if month, err = h.selected(r.Context()); err != nil {
			logger.Error(err.Error())
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	h.writeSummary(w, logger, month)
}

// SelectMonth stores the month of the request body and returns its summary.
func (h Handler) SelectMonth(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), h.Logger).With(zap.String("method", "SelectMonth"))

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Info("bad request", zap.Error(err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if !h.Data.Has(req.Month) {
		err := fmt.Errorf("%w: %q", dashboard.ErrUnknownMonth, req.Month)
		logger.Info("bad request", zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Pref.Save(r.Context(), req.Month); err != nil {
		logger.Error(err.Error())
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("month selected", zap.String("month", req.Month))
	h.writeSummary(w, logger, req.Month)
}

// Markdown renders the summary of the selected month as a markdown document.
func (h Handler) Markdown(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), h.Logger).With(zap.String("method", "Markdown"))

	month, err := h.selected(r.Context())
	if err != nil {
		logger.Error(err.Error())
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	res, err := dashboard.ComputeSummary(h.Data, month)
	if err != nil {
		logger.Info("cannot compute summary", zap.String("month", month), zap.Error(err))
		writeError(w, statusOf(err), err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(renderer.SummaryMarkdown(res, renderer.RenderOptions{}))); err != nil {
		logger.Error(fmt.Errorf("write response: %w", err).Error())
	}
}

func (h Handler) writeSummary(w http.ResponseWriter, logger *zap.Logger, month string) {
	res, err := dashboard.ComputeSummary(h.Data, month)
	if err != nil {
		logger.Info("cannot compute summary", zap.String("month", month), zap.Error(err))
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, logger, http.StatusOK, res)
}

// selected returns the stored month, or the first month of the data set when
// the stored one is not part of it.
func (h Handler) selected(ctx context.Context) (string, error) {
	return h.Pref.LoadFrom(ctx, h.Data.Months())
}

// statusOf maps computation errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrUnknownMonth):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrInvalidTransaction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error(fmt.Errorf("encode response: %w", err).Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Error(fmt.Errorf("write response: %w", err).Error())
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	data, _ := json.Marshal(errorResponse{Error: err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
