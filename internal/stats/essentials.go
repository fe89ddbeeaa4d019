package stats

import "github.com/PhantomInsights/baby-names-analysis/internal/domain"

// EssentialCounts summarizes how many distinct names the table holds, overall
// and per gender pool. Neutral counts names that appear under both genders at
// least once.
type EssentialCounts struct {
	Names   int
	Male    int
	Female  int
	Neutral int
}

// Essentials counts distinct names in the combined table and each gender pool.
func Essentials(records []domain.Record) EssentialCounts {
	male := make(map[string]struct{})
	female := make(map[string]struct{})
	all := make(map[string]struct{})

	for _, rec := range records {
		all[rec.Name] = struct{}{}
		switch rec.Gender {
		case domain.Male:
			male[rec.Name] = struct{}{}
		case domain.Female:
			female[rec.Name] = struct{}{}
		}
	}

	neutral := 0
	for name := range male {
		if _, ok := female[name]; ok {
			neutral++
		}
	}

	return EssentialCounts{
		Names:   len(all),
		Male:    len(male),
		Female:  len(female),
		Neutral: neutral,
	}
}
