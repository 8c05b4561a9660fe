// Package enrich implements the feature derivation and validation pass
// over raw sales records. Derivation is per-record and pure; validation
// scans the enriched set and produces advisory findings that never
// block or drop a record.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"smartstock/pkg/contracts/domain"
)

// Pass runs the derivation and validation over an in-memory dataset.
type Pass struct {
	logger *slog.Logger
}

// NewPass creates a derivation pass. A nil logger falls back to
// slog.Default().
func NewPass(logger *slog.Logger) *Pass {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pass{logger: logger}
}

// Run enriches every input record and validates the result. The output
// preserves input order and always contains exactly one enriched record
// per input record, regardless of findings.
func (p *Pass) Run(ctx context.Context, records []domain.SalesRecord) ([]domain.EnrichedRecord, []domain.Finding) {
	p.logger.InfoContext(ctx, "running derivation pass",
		slog.Int("record_count", len(records)))

	enriched := make([]domain.EnrichedRecord, len(records))
	for i, r := range records {
		enriched[i] = Derive(r)
	}

	findings := Validate(enriched)
	for _, f := range findings {
		p.logger.WarnContext(ctx, "data quality finding",
			slog.String("tag", string(f.Tag)),
			slog.Int("count", f.Count))
	}

	p.logger.InfoContext(ctx, "derivation pass complete",
		slog.Int("record_count", len(enriched)),
		slog.Int("finding_count", len(findings)))

	return enriched, findings
}

// Derive computes all derived attributes for a single record. It never
// fails: attributes that cannot be computed (zero opening stock, zero
// units sold, unknown month label) come back as explicit null values.
func Derive(r domain.SalesRecord) domain.EnrichedRecord {
	e := domain.EnrichedRecord{SalesRecord: r}

	e.TotalSalesValue = r.Price.Mul(decimal.NewFromInt(r.UnitsSold))
	e.MonthNum = domain.MonthIndex(r.Month)
	e.RemainingStock = r.OpeningStock - r.UnitsSold

	if r.OpeningStock != 0 {
		rate := float64(r.UnitsSold) / float64(r.OpeningStock) * 100
		e.StockTurnoverRate = domain.NullFloat{
			Value: math.Round(rate*100) / 100,
			Valid: true,
		}
	}

	if r.UnitsSold != 0 {
		e.RevenuePerUnit = domain.NullDecimal{
			Value: e.TotalSalesValue.Div(decimal.NewFromInt(r.UnitsSold)),
			Valid: true,
		}
	}

	return e
}

// Validate scans enriched records and reports advisory findings. A
// finding is emitted only when its count is non-zero; the result order
// is fixed so reports are stable.
func Validate(records []domain.EnrichedRecord) []domain.Finding {
	var negUnits, negPrice, negStock, highTurnover, unknownMonth, noTurnover int

	for _, r := range records {
		if r.UnitsSold < 0 {
			negUnits++
		}
		if r.Price.IsNegative() {
			negPrice++
		}
		if r.OpeningStock < 0 {
			negStock++
		}
		// Not-computable turnover is not a numeric value and must
		// never count toward the >100% finding.
		switch {
		case !r.StockTurnoverRate.Valid:
			noTurnover++
		case r.StockTurnoverRate.Value > 100:
			highTurnover++
		}
		if !r.MonthNum.Valid {
			unknownMonth++
		}
	}

	var findings []domain.Finding
	add := func(tag domain.FindingTag, count int, format string) {
		if count == 0 {
			return
		}
		findings = append(findings, domain.Finding{
			Tag:     tag,
			Count:   count,
			Message: fmt.Sprintf(format, count),
		})
	}

	add(domain.FindingNegativeUnits, negUnits, "%d records with negative units sold")
	add(domain.FindingNegativePrice, negPrice, "%d records with negative price")
	add(domain.FindingNegativeStock, negStock, "%d records with negative opening stock")
	add(domain.FindingTurnoverExceeds100, highTurnover, "%d records sold more than was stocked (turnover > 100%%)")
	add(domain.FindingUnknownMonth, unknownMonth, "%d records with a month label outside the Jan..Dec set")
	add(domain.FindingTurnoverNotComputable, noTurnover, "%d records with zero opening stock (turnover not computable)")

	return findings
}
