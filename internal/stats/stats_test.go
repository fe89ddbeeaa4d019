package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
	"github.com/PhantomInsights/baby-names-analysis/internal/stats"
)

func rec(year int, name string, gender domain.Gender, count int) domain.Record {
	return domain.Record{Year: year, Name: name, Gender: gender, Count: count}
}

func TestTotalsByYear(t *testing.T) {
	t.Run("single female record", func(t *testing.T) {
		records := []domain.Record{rec(2000, "Ann", domain.Female, 10)}

		totals := stats.TotalsByYear(records)

		assert.Equal(t, 10, totals.Combined.ByYear[2000])
		assert.Equal(t, 10, totals.Combined.Min)
		assert.Equal(t, 10, totals.Combined.Max)
		assert.Equal(t, 2000, totals.Combined.MinYear)
		assert.Equal(t, 2000, totals.Combined.MaxYear)

		// With only female records the female split equals the combined one.
		assert.Equal(t, totals.Combined, totals.Female)
		assert.Empty(t, totals.Male.ByYear)
	})

	t.Run("splits and extremes", func(t *testing.T) {
		records := []domain.Record{
			rec(1880, "Mary", domain.Female, 7000),
			rec(1880, "John", domain.Male, 9000),
			rec(1881, "Mary", domain.Female, 6500),
			rec(1881, "John", domain.Male, 8500),
			rec(1882, "Mary", domain.Female, 8000),
			rec(1882, "John", domain.Male, 9500),
		}

		totals := stats.TotalsByYear(records)

		assert.Equal(t, 16000, totals.Combined.ByYear[1880])
		assert.Equal(t, 15000, totals.Combined.Min)
		assert.Equal(t, 1881, totals.Combined.MinYear)
		assert.Equal(t, 17500, totals.Combined.Max)
		assert.Equal(t, 1882, totals.Combined.MaxYear)

		assert.Equal(t, 8500, totals.Male.Min)
		assert.Equal(t, 1881, totals.Male.MinYear)
		assert.Equal(t, 8000, totals.Female.Max)
		assert.Equal(t, 1882, totals.Female.MaxYear)
	})

	t.Run("tied extremes pick the earliest year", func(t *testing.T) {
		records := []domain.Record{
			rec(1990, "Ann", domain.Female, 10),
			rec(1991, "Ann", domain.Female, 10),
		}

		totals := stats.TotalsByYear(records)
		assert.Equal(t, 1990, totals.Combined.MinYear)
		assert.Equal(t, 1990, totals.Combined.MaxYear)
	})

	t.Run("empty table", func(t *testing.T) {
		totals := stats.TotalsByYear(nil)
		assert.Empty(t, totals.Combined.ByYear)
		assert.Zero(t, totals.Combined.Min)
	})
}

func TestTopN(t *testing.T) {
	t.Run("tie breaks lexicographically", func(t *testing.T) {
		records := []domain.Record{
			rec(2000, "Cid", domain.Male, 5),
			rec(2000, "Bob", domain.Male, 5),
		}

		top := stats.TopN(records, domain.Male, 1)

		require.Len(t, top, 1)
		assert.Equal(t, "Bob", top[0].Name)
	})

	t.Run("sums across years and filters gender", func(t *testing.T) {
		records := []domain.Record{
			rec(1999, "Jacob", domain.Male, 100),
			rec(2000, "Jacob", domain.Male, 200),
			rec(2000, "Emily", domain.Female, 900),
			rec(2000, "Ryan", domain.Male, 250),
		}

		top := stats.TopN(records, domain.Male, 10)

		want := []stats.NameCount{
			{Name: "Jacob", Count: 300},
			{Name: "Ryan", Count: 250},
		}
		if diff := cmp.Diff(want, top); diff != "" {
			t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("n larger than pool", func(t *testing.T) {
		records := []domain.Record{rec(2000, "Bob", domain.Male, 5)}
		assert.Len(t, stats.TopN(records, domain.Male, 10), 1)
	})

	t.Run("non-positive n", func(t *testing.T) {
		records := []domain.Record{rec(2000, "Bob", domain.Male, 5)}
		assert.Nil(t, stats.TopN(records, domain.Male, 0))
	})
}

func TestGenderNeutralTopN(t *testing.T) {
	records := []domain.Record{
		rec(2000, "Jordan", domain.Male, 600),
		rec(2000, "Jordan", domain.Female, 500),
		rec(2000, "Taylor", domain.Male, 300),
		rec(2000, "Taylor", domain.Female, 900),
		// Huge count but single-gender: must never qualify.
		rec(2000, "Michael", domain.Male, 100000),
		// Both genders but below the female threshold.
		rec(2000, "Casey", domain.Male, 450),
		rec(2000, "Casey", domain.Female, 40),
	}

	t.Run("ranks by combined count", func(t *testing.T) {
		top := stats.GenderNeutralTopN(records, 20, 100)

		want := []stats.GenderNeutralName{
			{Name: "Taylor", Male: 300, Female: 900, Combined: 1200},
			{Name: "Jordan", Male: 600, Female: 500, Combined: 1100},
		}
		if diff := cmp.Diff(want, top); diff != "" {
			t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single-gender name excluded despite count", func(t *testing.T) {
		top := stats.GenderNeutralTopN(records, 20, 100)
		for _, entry := range top {
			assert.NotEqual(t, "Michael", entry.Name)
		}
	})

	t.Run("threshold applies per gender", func(t *testing.T) {
		top := stats.GenderNeutralTopN(records, 20, 100)
		for _, entry := range top {
			assert.NotEqual(t, "Casey", entry.Name)
		}
	})

	t.Run("limit", func(t *testing.T) {
		top := stats.GenderNeutralTopN(records, 1, 100)
		require.Len(t, top, 1)
		assert.Equal(t, "Taylor", top[0].Name)
	})
}

func TestGrowthSeries(t *testing.T) {
	t.Run("single year percentages sum to 100", func(t *testing.T) {
		records := []domain.Record{
			rec(2000, "Ann", domain.Female, 30),
			rec(2000, "Bob", domain.Male, 70),
		}

		series := stats.GrowthSeries(records, 10, 0)

		require.Len(t, series, 2)
		total := 0.0
		for _, s := range series {
			require.Len(t, s.Shares, 1)
			total += s.Shares[0].Percent
		}
		assert.InDelta(t, 100.0, total, 1e-9)
	})

	t.Run("single name owns the whole year", func(t *testing.T) {
		records := []domain.Record{rec(2000, "Ann", domain.Female, 10)}

		series := stats.GrowthSeries(records, 10, 0)

		require.Len(t, series, 1)
		assert.Equal(t, "Ann", series[0].Name)
		assert.Equal(t, []stats.YearShare{{Year: 2000, Percent: 100}}, series[0].Shares)
	})

	t.Run("zero-total year yields zero percent", func(t *testing.T) {
		records := []domain.Record{
			rec(2000, "Ann", domain.Female, 0),
			rec(2001, "Ann", domain.Female, 10),
		}

		series := stats.GrowthSeries(records, 10, 0)

		require.Len(t, series, 1)
		want := []stats.YearShare{
			{Year: 2000, Percent: 0},
			{Year: 2001, Percent: 100},
		}
		assert.Equal(t, want, series[0].Shares)
	})

	t.Run("missing years fill with zero", func(t *testing.T) {
		records := []domain.Record{
			rec(2000, "Ann", domain.Female, 10),
			rec(2001, "Bob", domain.Male, 10),
		}

		series := stats.GrowthSeries(records, 10, 0)

		require.Len(t, series, 2)
		for _, s := range series {
			require.Len(t, s.Shares, 2)
		}
	})

	t.Run("genders merge per name", func(t *testing.T) {
		records := []domain.Record{
			rec(2000, "Jordan", domain.Male, 25),
			rec(2000, "Jordan", domain.Female, 25),
			rec(2000, "Mary", domain.Female, 50),
		}

		series := stats.GrowthSeries(records, 1, 0)

		require.Len(t, series, 1)
		// Jordan and Mary tie at 50%; the lexicographic tie-break ranks Jordan first.
		assert.Equal(t, "Jordan", series[0].Name)
		assert.InDelta(t, 50.0, series[0].Shares[0].Percent, 1e-9)
	})

	t.Run("fromYear filters earlier records", func(t *testing.T) {
		records := []domain.Record{
			rec(2007, "Old", domain.Male, 1000),
			rec(2008, "Liam", domain.Male, 10),
			rec(2009, "Liam", domain.Male, 20),
		}

		series := stats.GrowthSeries(records, 10, 2008)

		require.Len(t, series, 1)
		assert.Equal(t, "Liam", series[0].Name)
		require.Len(t, series[0].Shares, 2)
		assert.Equal(t, 2008, series[0].Shares[0].Year)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, stats.GrowthSeries(nil, 10, 0))
	})
}

func TestEssentials(t *testing.T) {
	records := []domain.Record{
		rec(2000, "Jordan", domain.Male, 10),
		rec(2000, "Jordan", domain.Female, 10),
		rec(2001, "Jordan", domain.Male, 10),
		rec(2000, "Mary", domain.Female, 10),
		rec(2000, "John", domain.Male, 10),
	}

	counts := stats.Essentials(records)

	assert.Equal(t, 3, counts.Names)
	assert.Equal(t, 2, counts.Male)
	assert.Equal(t, 2, counts.Female)
	assert.Equal(t, 1, counts.Neutral)
}
