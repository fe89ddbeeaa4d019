package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/PhantomInsights/baby-names-analysis/internal/stats"
)

// Renderer draws summary tables as line charts on the configured theme.
type Renderer struct {
	theme  Theme
	logger *slog.Logger
}

// New creates a Renderer with an explicit theme.
func New(theme Theme, logger *slog.Logger) *Renderer {
	return &Renderer{theme: theme, logger: logger}
}

// CountsByYear plots the combined, male, and female yearly totals as three
// lines and saves the chart to path.
func (r *Renderer) CountsByYear(totals stats.Totals, path string) error {
	p := r.newPlot("Records per Year", "Year", "Records Count")

	splits := []struct {
		label  string
		totals stats.YearTotals
		color  color.Color
	}{
		{"Both", totals.Combined, r.theme.Combined},
		{"Male", totals.Male, r.theme.Male},
		{"Female", totals.Female, r.theme.Female},
	}
	for _, split := range splits {
		if err := r.addLine(p, split.label, yearTotalsXYs(split.totals), split.color); err != nil {
			return err
		}
	}

	return r.save(p, path)
}

// Growth plots one line per name series, colors cycling through the theme
// palette, and saves the chart to path.
func (r *Renderer) Growth(series []stats.NameSeries, title, path string) error {
	p := r.newPlot(title, "Year", "Percentage by Year")

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Shares))
		for j, share := range s.Shares {
			xys[j].X = float64(share.Year)
			xys[j].Y = share.Percent
		}
		c := r.theme.Palette[i%len(r.theme.Palette)]
		if err := r.addLine(p, s.Name, xys, c); err != nil {
			return err
		}
	}

	return r.save(p, path)
}

func (r *Renderer) newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	p.BackgroundColor = r.theme.Background
	p.Title.TextStyle.Color = r.theme.Text
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Color = r.theme.Text
		axis.LineStyle.Color = r.theme.Text
		axis.Tick.Label.Color = r.theme.Text
		axis.Tick.LineStyle.Color = r.theme.Text
	}
	p.Legend.TextStyle.Color = r.theme.Text
	p.Legend.Top = true

	return p
}

func (r *Renderer) addLine(p *plot.Plot, label string, xys plotter.XYs, c color.Color) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("build %s line: %w", label, err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	if err := p.Save(r.theme.Width, r.theme.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	r.logger.Info("chart written", "path", path)
	return nil
}

func yearTotalsXYs(totals stats.YearTotals) plotter.XYs {
	years := make([]int, 0, len(totals.ByYear))
	for year := range totals.ByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	xys := make(plotter.XYs, len(years))
	for i, year := range years {
		xys[i].X = float64(year)
		xys[i].Y = float64(totals.ByYear[year])
	}
	return xys
}
