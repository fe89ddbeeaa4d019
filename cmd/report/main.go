// Command report computes the published insights from the flat table and
// renders the three charts: records per year, most popular names growth, and
// trending names.
//
// Usage:
//
//	go run ./cmd/report -csv data.csv -charts ./charts
//
// Flags default to the environment-driven configuration, so a bare
// "go run ./cmd/report" works after a fetch run in the same directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PhantomInsights/baby-names-analysis/internal/adapter/render"
	"github.com/PhantomInsights/baby-names-analysis/internal/config"
	"github.com/PhantomInsights/baby-names-analysis/internal/dataset"
	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
	"github.com/PhantomInsights/baby-names-analysis/internal/observability"
	"github.com/PhantomInsights/baby-names-analysis/internal/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg)

	csvPath := flag.String("csv", cfg.OutputCSV, "path to the flat table")
	chartDir := flag.String("charts", cfg.ChartDir, "directory for rendered charts")
	topN := flag.Int("top", cfg.TopNames, "how many names to rank")
	neutralTop := flag.Int("neutral-top", 2*cfg.TopNames, "how many gender-neutral names to rank")
	neutralMin := flag.Int("neutral-min", cfg.NeutralMinCount, "minimum per-gender count for a gender-neutral name")
	trendingFrom := flag.Int("trending-from", cfg.TrendingFromYear, "first year of the trending window")
	noCharts := flag.Bool("no-charts", false, "skip chart rendering")
	flag.Parse()

	records, err := dataset.ReadFile(*csvPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("flat table is empty, run cmd/fetch first")
	}

	printEssentials(stats.Essentials(records))

	totals := stats.TotalsByYear(records)
	printTotals(totals)

	printTopNames("Male", stats.TopN(records, domain.Male, *topN))
	printTopNames("Female", stats.TopN(records, domain.Female, *topN))
	printNeutral(stats.GenderNeutralTopN(records, *neutralTop, *neutralMin), *neutralMin)

	if *noCharts {
		return nil
	}

	renderer := render.New(render.DefaultTheme(), logger)
	growth := stats.GrowthSeries(records, *topN, 0)
	trending := stats.GrowthSeries(records, *topN, *trendingFrom)

	if err := renderer.CountsByYear(totals, filepath.Join(*chartDir, "total_by_year.png")); err != nil {
		return err
	}
	title := fmt.Sprintf("Top %d Names Growth", *topN)
	if err := renderer.Growth(growth, title, filepath.Join(*chartDir, "most_popular_growth.png")); err != nil {
		return err
	}
	title = fmt.Sprintf("Top %d Trending Names", *topN)
	return renderer.Growth(trending, title, filepath.Join(*chartDir, "trending_names.png"))
}

func printEssentials(counts stats.EssentialCounts) {
	fmt.Println("=== Unique Names ===")
	fmt.Printf("Combined:       %d\n", counts.Names)
	fmt.Printf("Male:           %d\n", counts.Male)
	fmt.Printf("Female:         %d\n", counts.Female)
	fmt.Printf("Gender neutral: %d\n", counts.Neutral)
	fmt.Println()
}

func printTotals(totals stats.Totals) {
	fmt.Println("=== Records per Year ===")
	printExtremes("Both", totals.Combined)
	printExtremes("Male", totals.Male)
	printExtremes("Female", totals.Female)
	fmt.Println()
}

func printExtremes(label string, totals stats.YearTotals) {
	fmt.Printf("%s Min: %d - %d\n", label, totals.Min, totals.MinYear)
	fmt.Printf("%s Max: %d - %d\n", label, totals.Max, totals.MaxYear)
}

func printTopNames(label string, top []stats.NameCount) {
	fmt.Printf("=== Top %d %s Names ===\n", len(top), label)
	for i, entry := range top {
		fmt.Printf("%2d. %-15s %d\n", i+1, entry.Name, entry.Count)
	}
	fmt.Println()
}

func printNeutral(top []stats.GenderNeutralName, minPerGender int) {
	fmt.Printf("=== Top %d Gender Neutral Names (>= %d per gender) ===\n", len(top), minPerGender)
	for i, entry := range top {
		fmt.Printf("%2d. %-15s M:%-9d F:%-9d combined:%d\n",
			i+1, entry.Name, entry.Male, entry.Female, entry.Combined)
	}
	fmt.Println()
}
