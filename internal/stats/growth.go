package stats

import (
	"sort"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// YearShare is one point of a growth series: the percentage a name represents
// of that year's total count across all names.
type YearShare struct {
	Year    int
	Percent float64
}

// NameSeries is one name's growth series, ordered by year ascending. Years
// where the name does not appear contribute 0%.
type NameSeries struct {
	Name   string
	Shares []YearShare
}

// GrowthSeries computes, for the topN names by cumulative share, the yearly
// percentage each name represents of that year's total. fromYear restricts
// the series to years >= fromYear; pass 0 to include every year. Names rank
// by the sum of their yearly percentages descending, ties by name ascending.
// A year whose total is zero contributes 0% rather than a division fault.
func GrowthSeries(records []domain.Record, topN, fromYear int) []NameSeries {
	if topN <= 0 {
		return nil
	}

	// Pivot: name x year summed counts, and per-year totals across all names.
	// Gender splits merge here, matching the combined popularity view.
	nameSums := make(map[string]map[int]int)
	yearTotals := make(map[int]int)
	for _, rec := range records {
		if fromYear > 0 && rec.Year < fromYear {
			continue
		}
		byYear, ok := nameSums[rec.Name]
		if !ok {
			byYear = make(map[int]int)
			nameSums[rec.Name] = byYear
		}
		byYear[rec.Year] += rec.Count
		yearTotals[rec.Year] += rec.Count
	}
	if len(yearTotals) == 0 {
		return nil
	}

	years := sortedYears(yearTotals)

	// Cumulative share per name across all years in range.
	cumulative := make(map[string]float64, len(nameSums))
	for name, byYear := range nameSums {
		for year, count := range byYear {
			cumulative[name] += share(count, yearTotals[year])
		}
	}

	names := make([]string, 0, len(cumulative))
	for name := range cumulative {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if cumulative[names[i]] != cumulative[names[j]] {
			return cumulative[names[i]] > cumulative[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > topN {
		names = names[:topN]
	}

	series := make([]NameSeries, 0, len(names))
	for _, name := range names {
		shares := make([]YearShare, 0, len(years))
		for _, year := range years {
			shares = append(shares, YearShare{
				Year:    year,
				Percent: share(nameSums[name][year], yearTotals[year]),
			})
		}
		series = append(series, NameSeries{Name: name, Shares: shares})
	}
	return series
}

func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
