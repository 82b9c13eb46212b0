// Package preference implements the preference state machine: the five
// per-user perfume lists (likes, dislikes, favorites, want-to-try, have-it)
// and the action semantics that keep likes and dislikes mutually exclusive.
package preference

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	apierrors "github.com/fragora/fragora/server/internal/errors"
	"github.com/fragora/fragora/store"
)

// Store is the interface for store operations needed by the preference service.
type Store interface {
	GetUserPreferences(ctx context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error)
	UpsertUserPreferences(ctx context.Context, upsert *store.UpsertUserPreferences) (*store.UserPreferences, error)
}

// Service manages per-user preference records.
type Service interface {
	// GetPreferences returns the user's record, lazily creating an empty
	// one on first access.
	GetPreferences(ctx context.Context, userID string) (*store.UserPreferences, error)

	// ApplyAction applies one preference gesture and returns the full
	// updated record.
	ApplyAction(ctx context.Context, userID string, perfumeID string, action store.PreferenceAction) (*store.UserPreferences, error)
}

type service struct {
	store Store

	// userLocks serializes the read-modify-write cycle per user so that
	// concurrent actions on the same record cannot lose updates. Entries
	// are never removed; the map is bounded by the active user population.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewService creates a preference service on top of the given store.
func NewService(store Store) Service {
	return &service{
		store:     store,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex guarding the given user's record.
func (s *service) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lock, ok := s.userLocks[userID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.userLocks[userID] = lock
	return lock
}

func (s *service) GetPreferences(ctx context.Context, userID string) (*store.UserPreferences, error) {
	prefs, err := s.store.GetUserPreferences(ctx, &store.FindUserPreferences{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user preferences")
	}
	if prefs == nil {
		return store.NewUserPreferences(userID), nil
	}
	return prefs, nil
}

func (s *service) ApplyAction(ctx context.Context, userID string, perfumeID string, action store.PreferenceAction) (*store.UserPreferences, error) {
	if !action.IsValid() {
		return nil, apierrors.InvalidArgument(fmt.Sprintf("unknown preference action: %s", action))
	}

	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The store hands back its cached record; mutate a copy so a failed
	// upsert cannot leave unpersisted state in the cache.
	prefs = clonePreferences(prefs)
	applyAction(prefs, perfumeID, action)

	updated, err := s.store.UpsertUserPreferences(ctx, &store.UpsertUserPreferences{
		UserID:    userID,
		Likes:     prefs.Likes,
		Dislikes:  prefs.Dislikes,
		Favorites: prefs.Favorites,
		WantToTry: prefs.WantToTry,
		HaveIt:    prefs.HaveIt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store user preferences")
	}

	slog.Debug("preference action applied",
		slog.String("user_id", userID),
		slog.String("perfume_id", perfumeID),
		slog.String("action", string(action)),
	)
	return updated, nil
}

// clonePreferences deep-copies a preference record, including the five
// perfume-id lists.
func clonePreferences(prefs *store.UserPreferences) *store.UserPreferences {
	clone := *prefs
	clone.Likes = append([]string{}, prefs.Likes...)
	clone.Dislikes = append([]string{}, prefs.Dislikes...)
	clone.Favorites = append([]string{}, prefs.Favorites...)
	clone.WantToTry = append([]string{}, prefs.WantToTry...)
	clone.HaveIt = append([]string{}, prefs.HaveIt...)
	return &clone
}

// applyAction mutates prefs in place. Liking removes the perfume from
// dislikes first (and vice versa), unconditionally; the action's own list is
// then a plain toggle. The exclusivity cleanup and the toggle are a pair:
// calling the same action twice reverts the toggle but the opposing list
// stays cleared.
func applyAction(prefs *store.UserPreferences, perfumeID string, action store.PreferenceAction) {
	switch action {
	case store.ActionLike:
		prefs.Dislikes = removeID(prefs.Dislikes, perfumeID)
	case store.ActionDislike:
		prefs.Likes = removeID(prefs.Likes, perfumeID)
	}

	switch action {
	case store.ActionLike:
		prefs.Likes = toggleID(prefs.Likes, perfumeID)
	case store.ActionDislike:
		prefs.Dislikes = toggleID(prefs.Dislikes, perfumeID)
	case store.ActionFavorite:
		prefs.Favorites = toggleID(prefs.Favorites, perfumeID)
	case store.ActionWantToTry:
		prefs.WantToTry = toggleID(prefs.WantToTry, perfumeID)
	case store.ActionHaveIt:
		prefs.HaveIt = toggleID(prefs.HaveIt, perfumeID)
	}
}

// toggleID removes id when present, otherwise appends it.
func toggleID(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return removeID(list, id)
		}
	}
	return append(list, id)
}

// removeID returns list without id, preserving order.
func removeID(list []string, id string) []string {
	result := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != id {
			result = append(result, existing)
		}
	}
	return result
}
