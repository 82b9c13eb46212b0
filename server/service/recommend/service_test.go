package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fragora/fragora/store"
)

// mockStore serves a fixed catalog and one preference record.
type mockStore struct {
	perfumes []*store.Perfume
	prefs    map[string]*store.UserPreferences
}

func (m *mockStore) GetAllPerfumes(_ context.Context) ([]*store.Perfume, error) {
	return m.perfumes, nil
}

func (m *mockStore) GetUserPreferences(_ context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error) {
	if find.UserID == nil {
		return nil, nil
	}
	return m.prefs[*find.UserID], nil
}

// demoCatalog mirrors the seed data shipped with the demo database.
func demoCatalog() []*store.Perfume {
	return []*store.Perfume{
		{
			ID: "p1", Name: "Citrus Bloom", Family: "citrico floral",
			Tags:          []string{"fresco", "verano", "dia", "citrico"},
			AverageRating: 4.4, AverageIntensity: "media",
			UsageStats: store.UsageStats{Day: 75, Night: 25, Summer: 70, Winter: 30},
		},
		{
			ID: "p2", Name: "Noir Essence", Family: "ambar especiado",
			Tags:          []string{"nocturno", "invierno", "noche", "intenso"},
			AverageRating: 4.7, AverageIntensity: "fuerte",
			UsageStats: store.UsageStats{Day: 20, Night: 80, Summer: 10, Winter: 90},
		},
		{
			ID: "p3", Name: "Ocean Mist", Family: "acuatico",
			Tags:          []string{"acuatico", "marino", "dia"},
			AverageRating: 4.1, AverageIntensity: "suave",
			UsageStats: store.UsageStats{Day: 80, Night: 20, Summer: 65, Winter: 35},
		},
		{
			ID: "p4", Name: "Woodland Trail", Family: "amaderado",
			Tags:          []string{"amaderado", "otono", "invierno", "noche"},
			AverageRating: 4.3, AverageIntensity: "media",
			UsageStats: store.UsageStats{Day: 40, Night: 60, Summer: 35, Winter: 65},
		},
		{
			ID: "p5", Name: "Velvet Sky", Family: "dulce oriental",
			Tags:          []string{"dulce", "noche", "invierno"},
			AverageRating: 4.6, AverageIntensity: "fuerte",
			UsageStats: store.UsageStats{Day: 25, Night: 75, Summer: 20, Winter: 80},
		},
	}
}

func TestChatRecommendationOffTopic(t *testing.T) {
	service := NewService(&mockStore{perfumes: demoCatalog()})

	result, err := service.ChatRecommendation(context.Background(), "cual es la capital de francia")
	require.NoError(t, err)
	require.Equal(t, replyOffTopic, result.ReplyText)
	require.Empty(t, result.Recommendations)
}

func TestChatRecommendationFreshSummer(t *testing.T) {
	service := NewService(&mockStore{perfumes: demoCatalog()})

	result, err := service.ChatRecommendation(context.Background(), "quiero un perfume fresco para el verano")
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	// Citrus Bloom carries both terms and wins despite the higher base
	// ratings of p2 and p5.
	require.Equal(t, "p1", result.Recommendations[0].ID)
	require.Contains(t, result.ReplyText, "Citrus Bloom")
	require.Contains(t, result.ReplyText, "fresco, verano")
}

func TestChatRecommendationFreshCitrusDay(t *testing.T) {
	service := NewService(&mockStore{perfumes: demoCatalog()})

	result, err := service.ChatRecommendation(context.Background(), "busco algo fresco y citrico para el dia")
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)
	require.Equal(t, "p1", result.Recommendations[0].ID)

	// Velvet Sky (dulce/noche/invierno) matches nothing here and must rank
	// below Citrus Bloom despite its higher base rating.
	for i, perfume := range result.Recommendations {
		if perfume.ID == "p5" {
			require.Greater(t, i, 0)
		}
	}
}

func TestChatRecommendationContextGateWithoutSignal(t *testing.T) {
	service := NewService(&mockStore{perfumes: demoCatalog()})

	// "perfume" passes the gate but matches no style/season/time term, so
	// ranking falls back to base ratings and the reply uses the fallback
	// descriptor.
	result, err := service.ChatRecommendation(context.Background(), "recomiendame un perfume")
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	require.Equal(t, "p2", result.Recommendations[0].ID)
	require.Equal(t, "p5", result.Recommendations[1].ID)
	require.Equal(t, "p1", result.Recommendations[2].ID)
	require.Contains(t, result.ReplyText, "tu descripcion")
}

func TestTestRecommendationUsesHistory(t *testing.T) {
	mock := &mockStore{
		perfumes: demoCatalog(),
		prefs: map[string]*store.UserPreferences{
			"user-1": {
				UserID:    "user-1",
				Likes:     []string{"p1", "p3", "p4"},
				Dislikes:  []string{"p2"},
				Favorites: []string{"p1", "p4"},
			},
		},
	}
	service := NewService(mock)

	result, err := service.TestRecommendation(context.Background(), "user-1", StructuredAnswers{
		TimeOfDay: "noche",
		Season:    "invierno",
		Style:     []string{"amaderado"},
		Intensity: "media",
		UseCase:   "cita",
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	// Woodland Trail matches style, season, time, and intensity, and its
	// tags appear in the liked history; Noir Essence would otherwise lead
	// on base rating but carries the dislike penalty.
	require.Equal(t, "p4", result.Recommendations[0].ID)
	for _, perfume := range result.Recommendations {
		require.NotEqual(t, "p2", perfume.ID)
	}
	require.Contains(t, result.ReplyText, "amaderado")
	require.Contains(t, result.ReplyText, "intensidad media")
}

func TestTestRecommendationUnknownUser(t *testing.T) {
	service := NewService(&mockStore{perfumes: demoCatalog()})

	result, err := service.TestRecommendation(context.Background(), "stranger", StructuredAnswers{
		TimeOfDay: TimeOfDayBoth,
		Season:    SeasonAllYear,
		Style:     []string{"dulce"},
		Intensity: "fuerte",
		UseCase:   "diario",
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	// With no history, "dulce" plus the intensity match pushes Velvet Sky
	// past Noir Essence.
	require.Equal(t, "p5", result.Recommendations[0].ID)
}
