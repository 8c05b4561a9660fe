package charts

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"smartstock/pkg/contracts/domain"
)

// Outputs lists the files produced by RenderAll, relative to the
// output directory.
var Outputs = []string{
	"png/01_sales_by_product.png",
	"png/02_monthly_trends.png",
	"png/03_price_vs_units.png",
	"html/sales_by_product.html",
	"html/monthly_trends.html",
	"html/turnover_heatmap.html",
}

// RenderAll renders the full chart set into outDir. Charts are
// independent of one another, so they render concurrently; the first
// failure cancels the rest.
func RenderAll(ctx context.Context, logger *slog.Logger, records []domain.EnrichedRecord, outDir string) error {
	if logger == nil {
		logger = slog.Default()
	}

	g, ctx := errgroup.WithContext(ctx)

	renderers := map[string]func([]domain.EnrichedRecord, string) error{
		"png/01_sales_by_product.png": RevenueByProductPNG,
		"png/02_monthly_trends.png":   MonthlyTrendPNG,
		"png/03_price_vs_units.png":   PriceVsUnitsPNG,
		"html/sales_by_product.html":  RevenueByProductHTML,
		"html/monthly_trends.html":    MonthlyTrendHTML,
		"html/turnover_heatmap.html":  TurnoverHeatmapHTML,
	}

	for name, render := range renderers {
		path := filepath.Join(outDir, filepath.FromSlash(name))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Info("rendering chart", slog.String("path", path))
			return render(records, path)
		})
	}

	return g.Wait()
}
