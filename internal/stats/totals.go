// Package stats computes summary tables over the flat record sequence. Every
// function is a pure recomputation: inputs are never mutated and no state is
// kept between calls.
package stats

import (
	"sort"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// YearTotals maps each year to its summed count and identifies the extreme
// years. When several years share the extreme value, the earliest year wins
// so results stay deterministic.
type YearTotals struct {
	ByYear  map[int]int
	Min     int
	Max     int
	MinYear int
	MaxYear int
}

// Totals holds the per-year totals for the combined table and each gender
// split.
type Totals struct {
	Combined YearTotals
	Male     YearTotals
	Female   YearTotals
}

// TotalsByYear sums counts per year, combined and split by gender.
func TotalsByYear(records []domain.Record) Totals {
	combined := make(map[int]int)
	male := make(map[int]int)
	female := make(map[int]int)

	for _, rec := range records {
		combined[rec.Year] += rec.Count
		switch rec.Gender {
		case domain.Male:
			male[rec.Year] += rec.Count
		case domain.Female:
			female[rec.Year] += rec.Count
		}
	}

	return Totals{
		Combined: buildYearTotals(combined),
		Male:     buildYearTotals(male),
		Female:   buildYearTotals(female),
	}
}

func buildYearTotals(sums map[int]int) YearTotals {
	totals := YearTotals{ByYear: sums}
	if len(sums) == 0 {
		return totals
	}

	years := sortedYears(sums)
	totals.MinYear = years[0]
	totals.MaxYear = years[0]
	totals.Min = sums[years[0]]
	totals.Max = sums[years[0]]

	for _, year := range years[1:] {
		if sums[year] < totals.Min {
			totals.Min = sums[year]
			totals.MinYear = year
		}
		if sums[year] > totals.Max {
			totals.Max = sums[year]
			totals.MaxYear = year
		}
	}
	return totals
}

func sortedYears(sums map[int]int) []int {
	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
