package stats

import (
	"sort"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// NameCount is one ranked (name, summed count) pair.
type NameCount struct {
	Name  string
	Count int
}

// TopN ranks the n most used names of one gender by summed count, descending.
// Ties break by name ascending so equal counts always rank the same way.
func TopN(records []domain.Record, gender domain.Gender, n int) []NameCount {
	if n <= 0 {
		return nil
	}

	sums := make(map[string]int)
	for _, rec := range records {
		if rec.Gender == gender {
			sums[rec.Name] += rec.Count
		}
	}

	ranked := make([]NameCount, 0, len(sums))
	for name, count := range sums {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// GenderNeutralName is a name used for both genders, with its per-gender and
// combined summed counts.
type GenderNeutralName struct {
	Name     string
	Male     int
	Female   int
	Combined int
}

// GenderNeutralTopN ranks names that appear under both genders with a summed
// count of at least minPerGender on each side. A name present in only one
// gender never qualifies, however large its count. Results are ordered by
// combined count descending, ties by name ascending.
func GenderNeutralTopN(records []domain.Record, n, minPerGender int) []GenderNeutralName {
	if n <= 0 {
		return nil
	}

	male := make(map[string]int)
	female := make(map[string]int)
	for _, rec := range records {
		switch rec.Gender {
		case domain.Male:
			male[rec.Name] += rec.Count
		case domain.Female:
			female[rec.Name] += rec.Count
		}
	}

	var ranked []GenderNeutralName
	for name, m := range male {
		f, ok := female[name]
		if !ok {
			continue
		}
		if m < minPerGender || f < minPerGender {
			continue
		}
		ranked = append(ranked, GenderNeutralName{
			Name:     name,
			Male:     m,
			Female:   f,
			Combined: m + f,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Combined != ranked[j].Combined {
			return ranked[i].Combined > ranked[j].Combined
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
