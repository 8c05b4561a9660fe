// Package http exposes the dashboard aggregations over a JSON API.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "smartstock/internal/errors"
	"smartstock/internal/services"
)

// DashboardHandler handles the dashboard API requests.
type DashboardHandler struct {
	service      *services.Dashboard
	logger       *slog.Logger
	errorHandler *apierrors.Handler
}

// NewDashboardHandler creates a dashboard handler. A nil logger falls
// back to slog.Default().
func NewDashboardHandler(service *services.Dashboard, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service:      service,
		logger:       logger,
		errorHandler: apierrors.NewHandler(logger),
	}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/products/top", h.GetTopProducts)
		r.Get("/monthly", h.GetMonthly)
		r.Get("/stockout-risk", h.GetStockoutRisk)
		r.Get("/records", h.GetRecords)
	})
}

// GetSummary returns the KPI header figures.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apierrors.ErrDatasetLoad)
		return
	}
	render.JSON(w, r, summary)
}

// GetTopProducts returns the highest-revenue products. Query parameter
// n bounds the list, default 10.
func (h *DashboardHandler) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.errorHandler.Handle(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest, "INVALID_PARAMETER",
				"n must be a positive integer", raw))
			return
		}
		n = parsed
	}

	products, err := h.service.TopProducts(r.Context(), n)
	if err != nil {
		h.errorHandler.Handle(w, r, apierrors.ErrDatasetLoad)
		return
	}
	render.JSON(w, r, products)
}

// GetMonthly returns revenue and units per calendar month.
func (h *DashboardHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	monthly, err := h.service.MonthlyTrend(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apierrors.ErrDatasetLoad)
		return
	}
	render.JSON(w, r, monthly)
}

// GetStockoutRisk returns records whose turnover rate exceeds the
// threshold query parameter (percentage; server default when absent).
func (h *DashboardHandler) GetStockoutRisk(w http.ResponseWriter, r *http.Request) {
	var threshold float64
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			h.errorHandler.Handle(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest, "INVALID_PARAMETER",
				"threshold must be a positive number", raw))
			return
		}
		threshold = parsed
	}

	entries, err := h.service.StockoutRisk(r.Context(), threshold)
	if err != nil {
		h.errorHandler.Handle(w, r, apierrors.ErrDatasetLoad)
		return
	}
	render.JSON(w, r, entries)
}

// GetRecords returns the enriched records, optionally filtered by
// product, month and min_units query parameters.
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	filter := services.RecordFilter{
		Product: r.URL.Query().Get("product"),
		Month:   r.URL.Query().Get("month"),
	}
	if raw := r.URL.Query().Get("min_units"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorHandler.Handle(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest, "INVALID_PARAMETER",
				"min_units must be an integer", raw))
			return
		}
		filter.MinUnits = parsed
	}

	records, err := h.service.Records(r.Context(), filter)
	if err != nil {
		h.errorHandler.Handle(w, r, apierrors.ErrDatasetLoad)
		return
	}
	render.JSON(w, r, records)
}
