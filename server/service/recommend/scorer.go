package recommend

import (
	"strings"

	"github.com/fragora/fragora/store"
)

// Scoring weights. These are hand-tuned against the demo catalog; scores are
// unbounded and only compared against each other, so there is no need to
// normalize or clamp.
const (
	dislikePenalty    = 2.0
	styleTagBonus     = 1.2
	styleFamilyBonus  = 0.6
	seasonTagBonus    = 0.5
	timeTagBonus      = 0.5
	intensityBonus    = 0.8
	likedTagBonus     = 0.2
	usageStatsDivisor = 200.0
)

// Score computes the affinity of one perfume for an extracted signal plus
// the caller's preference history. The base is the community rating; every
// matched signal adds on top of it.
func Score(perfume *store.Perfume, match KeywordMatch, likedTags []string, dislikedIDs []string) float64 {
	score := perfume.AverageRating

	for _, id := range dislikedIDs {
		if id == perfume.ID {
			score -= dislikePenalty
			break
		}
	}

	family := Normalize(perfume.Family)
	for _, term := range match.Styles {
		// Tag and family bonuses are independent; a perfume tagged
		// "citrico" with family "citrico floral" earns both.
		if perfume.HasTag(term) {
			score += styleTagBonus
		}
		if strings.Contains(family, term) {
			score += styleFamilyBonus
		}
	}

	for _, term := range match.Seasons {
		if perfume.HasTag(term) {
			score += seasonTagBonus
		}
		// The popularity bump applies whether or not the tag matched.
		switch term {
		case "verano":
			score += float64(perfume.UsageStats.Summer) / usageStatsDivisor
		case "invierno":
			score += float64(perfume.UsageStats.Winter) / usageStatsDivisor
		}
	}

	for _, term := range match.Times {
		if perfume.HasTag(term) {
			score += timeTagBonus
		}
		switch term {
		case "dia":
			score += float64(perfume.UsageStats.Day) / usageStatsDivisor
		case "noche":
			score += float64(perfume.UsageStats.Night) / usageStatsDivisor
		}
	}

	if match.Intensity != "" && perfume.AverageIntensity == match.Intensity {
		score += intensityBonus
	}

	// likedTags is deliberately not deduplicated: a tag the user has liked
	// on several perfumes counts once per occurrence.
	for _, tag := range likedTags {
		if perfume.HasTag(tag) {
			score += likedTagBonus
		}
	}

	return score
}
