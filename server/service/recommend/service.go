// Package recommend implements the rule-based recommendation engine: keyword
// extraction over a closed vocabulary, weighted affinity scoring, stable
// ranking, and reply composition.
//
// The engine is deterministic and explainable by design; "AI" in the API
// surface means this scoring function, not a trained model. Scoring is pure
// and CPU-bound over the catalog, so there is no cancellation handling
// beyond the store reads.
package recommend

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/fragora/fragora/store"
)

// Store is the interface for store operations needed by the recommender.
type Store interface {
	GetAllPerfumes(ctx context.Context) ([]*store.Perfume, error)
	GetUserPreferences(ctx context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error)
}

// Recommendation is the outcome of one chat or guided-test request.
type Recommendation struct {
	ReplyText       string
	Recommendations []*store.Perfume
}

type service struct {
	store Store
}

// Service is the recommendation engine entrypoint used by the API layer.
type Service interface {
	// ChatRecommendation answers a free-text message. Off-topic messages
	// get a fixed redirect with no recommendations; no user history is
	// consulted on the chat path.
	ChatRecommendation(ctx context.Context, message string) (*Recommendation, error)

	// TestRecommendation answers the guided questionnaire for a user,
	// biasing scores with the tags of liked and favorited perfumes and
	// penalizing disliked ones.
	TestRecommendation(ctx context.Context, userID string, answers StructuredAnswers) (*Recommendation, error)
}

// NewService creates a recommendation service on top of the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) ChatRecommendation(ctx context.Context, message string) (*Recommendation, error) {
	if !IsPerfumeContext(message) {
		// Not an error: off-topic input is a normal business outcome.
		return &Recommendation{
			ReplyText:       replyOffTopic,
			Recommendations: []*store.Perfume{},
		}, nil
	}

	match := ExtractFromText(message)
	perfumes, err := s.store.GetAllPerfumes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	recommendations := Rank(perfumes, match, nil, nil, DefaultLimit)
	slog.Debug("chat recommendation ranked",
		slog.Int("catalog_size", len(perfumes)),
		slog.Int("result_count", len(recommendations)),
		slog.Int("style_terms", len(match.Styles)),
	)

	return &Recommendation{
		ReplyText:       ComposeChatReply(recommendations, match),
		Recommendations: recommendations,
	}, nil
}

func (s *service) TestRecommendation(ctx context.Context, userID string, answers StructuredAnswers) (*Recommendation, error) {
	perfumes, err := s.store.GetAllPerfumes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	likedTags, dislikedIDs, err := s.userHistory(ctx, userID, perfumes)
	if err != nil {
		return nil, err
	}

	match := ExtractFromAnswers(answers)
	recommendations := Rank(perfumes, match, likedTags, dislikedIDs, DefaultLimit)
	slog.Debug("test recommendation ranked",
		slog.String("user_id", userID),
		slog.Int("liked_tags", len(likedTags)),
		slog.Int("disliked_ids", len(dislikedIDs)),
		slog.Int("result_count", len(recommendations)),
	)

	return &Recommendation{
		ReplyText:       ComposeTestSummary(recommendations, answers),
		Recommendations: recommendations,
	}, nil
}

// userHistory collects the tags of every perfume the user likes or has
// favorited (duplicates across perfumes preserved; the scorer counts each
// occurrence) plus the disliked perfume ids.
func (s *service) userHistory(ctx context.Context, userID string, perfumes []*store.Perfume) ([]string, []string, error) {
	prefs, err := s.store.GetUserPreferences(ctx, &store.FindUserPreferences{UserID: &userID})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load user preferences")
	}
	if prefs == nil {
		// First contact with this user: no history, no bias.
		return nil, nil, nil
	}

	liked := make(map[string]bool, len(prefs.Likes)+len(prefs.Favorites))
	for _, id := range prefs.Likes {
		liked[id] = true
	}
	for _, id := range prefs.Favorites {
		liked[id] = true
	}

	var likedTags []string
	for _, perfume := range perfumes {
		if liked[perfume.ID] {
			likedTags = append(likedTags, perfume.Tags...)
		}
	}

	return likedTags, prefs.Dislikes, nil
}
