package recommend

import (
	"sort"

	"github.com/fragora/fragora/store"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultLimit = 3

// Rank scores every candidate and returns the top limit perfumes by
// descending score. The sort is stable: perfumes with equal scores keep
// their catalog order, so rankings are reproducible run to run.
func Rank(perfumes []*store.Perfume, match KeywordMatch, likedTags []string, dislikedIDs []string, limit int) []*store.Perfume {
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		perfume *store.Perfume
		score   float64
	}
	candidates := make([]scored, 0, len(perfumes))
	for _, perfume := range perfumes {
		candidates = append(candidates, scored{
			perfume: perfume,
			score:   Score(perfume, match, likedTags, dislikedIDs),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	result := make([]*store.Perfume, 0, limit)
	for _, candidate := range candidates[:limit] {
		result = append(result, candidate.perfume)
	}
	return result
}
