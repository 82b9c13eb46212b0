package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fragora/fragora/store"
)

func testPerfume() *store.Perfume {
	return &store.Perfume{
		ID:               "p1",
		Name:             "Citrus Bloom",
		Family:           "citrico floral",
		Tags:             []string{"fresco", "citrico", "verano", "dia"},
		AverageRating:    4.4,
		AverageIntensity: IntensitySuave,
		UsageStats:       store.UsageStats{Day: 120, Night: 20, Summer: 150, Winter: 10},
	}
}

func TestScoreEmptyMatchIsBaseRating(t *testing.T) {
	perfume := testPerfume()
	score := Score(perfume, KeywordMatch{}, nil, nil)
	require.Equal(t, perfume.AverageRating, score)
}

func TestScoreStyleBonuses(t *testing.T) {
	perfume := testPerfume()

	t.Run("tag and family bonuses stack", func(t *testing.T) {
		// "citrico" is both a tag and a substring of the family.
		score := Score(perfume, KeywordMatch{Styles: []string{"citrico"}}, nil, nil)
		require.InDelta(t, 4.4+1.2+0.6, score, 1e-9)
	})

	t.Run("tag only", func(t *testing.T) {
		score := Score(perfume, KeywordMatch{Styles: []string{"fresco"}}, nil, nil)
		require.InDelta(t, 4.4+1.2, score, 1e-9)
	})

	t.Run("unmatched style adds nothing", func(t *testing.T) {
		score := Score(perfume, KeywordMatch{Styles: []string{"amaderado"}}, nil, nil)
		require.InDelta(t, 4.4, score, 1e-9)
	})
}

func TestScoreSeasonAndTime(t *testing.T) {
	perfume := testPerfume()

	t.Run("season tag plus usage bump", func(t *testing.T) {
		score := Score(perfume, KeywordMatch{Seasons: []string{"verano"}}, nil, nil)
		require.InDelta(t, 4.4+0.5+150.0/200.0, score, 1e-9)
	})

	t.Run("usage bump applies without the tag", func(t *testing.T) {
		// Not tagged "invierno", but the winter popularity still counts.
		score := Score(perfume, KeywordMatch{Seasons: []string{"invierno"}}, nil, nil)
		require.InDelta(t, 4.4+10.0/200.0, score, 1e-9)
	})

	t.Run("time tag plus usage bump", func(t *testing.T) {
		score := Score(perfume, KeywordMatch{Times: []string{"dia"}}, nil, nil)
		require.InDelta(t, 4.4+0.5+120.0/200.0, score, 1e-9)
	})
}

func TestScoreIntensity(t *testing.T) {
	perfume := testPerfume()

	score := Score(perfume, KeywordMatch{Intensity: IntensitySuave}, nil, nil)
	require.InDelta(t, 4.4+0.8, score, 1e-9)

	score = Score(perfume, KeywordMatch{Intensity: IntensityFuerte}, nil, nil)
	require.InDelta(t, 4.4, score, 1e-9)
}

func TestScoreDislikePenalty(t *testing.T) {
	perfume := testPerfume()

	score := Score(perfume, KeywordMatch{}, nil, []string{"p1"})
	require.InDelta(t, 4.4-2.0, score, 1e-9)

	// The penalty applies once even if the id is listed twice.
	score = Score(perfume, KeywordMatch{}, nil, []string{"p1", "p1"})
	require.InDelta(t, 4.4-2.0, score, 1e-9)

	score = Score(perfume, KeywordMatch{}, nil, []string{"p9"})
	require.InDelta(t, 4.4, score, 1e-9)
}

func TestScoreLikedTagsCountPerOccurrence(t *testing.T) {
	perfume := testPerfume()

	// "fresco" appears twice in the history, so the bonus lands twice.
	score := Score(perfume, KeywordMatch{}, []string{"fresco", "fresco", "dulce"}, nil)
	require.InDelta(t, 4.4+0.2+0.2, score, 1e-9)
}
