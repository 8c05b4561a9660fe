// Package services holds the dashboard's read-side logic: every method
// loads the dataset through the cache and reduces it to the shape a
// widget renders.
package services

import (
	"context"
	"log/slog"
	"strings"

	"smartstock/internal/analysis"
	"smartstock/internal/dataset"
	"smartstock/internal/enrich"
	"smartstock/internal/stats"
	"smartstock/pkg/contracts/domain"
)

// Dashboard serves the aggregations the dashboard UI renders.
type Dashboard struct {
	cache            *dataset.Cache
	dataFile         string
	defaultThreshold float64
	logger           *slog.Logger
}

// NewDashboard creates the dashboard service. A nil logger falls back
// to slog.Default().
func NewDashboard(cache *dataset.Cache, dataFile string, defaultThreshold float64, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		cache:            cache,
		dataFile:         dataFile,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

// Summary is the KPI header of the dashboard.
type Summary struct {
	Records      int              `json:"records"`
	Products     int              `json:"products"`
	TotalRevenue float64          `json:"total_revenue"`
	TotalUnits   int64            `json:"total_units"`
	AvgPrice     float64          `json:"avg_price"`
	AvgTurnover  float64          `json:"avg_turnover"`
	Findings     []domain.Finding `json:"findings"`
}

// Summary computes the headline figures over the whole dataset.
func (s *Dashboard) Summary(ctx context.Context) (Summary, error) {
	records, err := s.load(ctx)
	if err != nil {
		return Summary{}, err
	}

	products := make(map[string]bool)
	var totalUnits int64
	for _, r := range records {
		products[r.ProductName] = true
		totalUnits += r.UnitsSold
	}

	cols := stats.Columns(records)

	return Summary{
		Records:      len(records),
		Products:     len(products),
		TotalRevenue: stats.Describe(cols["Total_Sales_Value"]).Sum,
		TotalUnits:   totalUnits,
		AvgPrice:     stats.Describe(cols["Price"]).Mean,
		AvgTurnover:  stats.Describe(cols["Stock_Turnover_Rate"]).Mean,
		Findings:     enrich.Validate(records),
	}, nil
}

// TopProducts returns the n highest-revenue products.
func (s *Dashboard) TopProducts(ctx context.Context, n int) ([]analysis.ProductTotal, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.TopProductsByRevenue(records, n), nil
}

// MonthlyTrend returns revenue and units per calendar month.
func (s *Dashboard) MonthlyTrend(ctx context.Context) ([]analysis.MonthlyTotal, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	totals, _ := analysis.MonthlyTotals(records)
	return totals, nil
}

// StockoutRisk returns records above the turnover threshold. A
// non-positive threshold selects the configured default.
func (s *Dashboard) StockoutRisk(ctx context.Context, threshold float64) ([]analysis.RiskEntry, error) {
	if threshold <= 0 {
		threshold = s.defaultThreshold
	}
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.StockoutRisk(records, threshold), nil
}

// RecordFilter narrows the record listing. Zero values match anything.
type RecordFilter struct {
	Product  string
	Month    string
	MinUnits int64
}

// Records returns the enriched records matching the filter, in dataset
// order.
func (s *Dashboard) Records(ctx context.Context, filter RecordFilter) ([]domain.EnrichedRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if filter.Product != "" && !strings.EqualFold(r.ProductName, filter.Product) {
			continue
		}
		if filter.Month != "" && r.Month != filter.Month {
			continue
		}
		if r.UnitsSold < filter.MinUnits {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Dashboard) load(ctx context.Context) ([]domain.EnrichedRecord, error) {
	records, err := s.cache.Load(ctx, s.dataFile)
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed",
			slog.String("path", s.dataFile),
			slog.String("error", err.Error()))
		return nil, err
	}
	return records, nil
}
