package preference

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	apierrors "github.com/fragora/fragora/server/internal/errors"
	"github.com/fragora/fragora/store"
)

// memoryStore keeps preference records in a map, mimicking the upsert
// semantics of the real driver.
type memoryStore struct {
	records map[string]*store.UserPreferences
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]*store.UserPreferences{}}
}

func (m *memoryStore) GetUserPreferences(_ context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error) {
	if find.UserID == nil {
		return nil, nil
	}
	return m.records[*find.UserID], nil
}

func (m *memoryStore) UpsertUserPreferences(_ context.Context, upsert *store.UpsertUserPreferences) (*store.UserPreferences, error) {
	record := &store.UserPreferences{
		UserID:    upsert.UserID,
		Likes:     upsert.Likes,
		Dislikes:  upsert.Dislikes,
		Favorites: upsert.Favorites,
		WantToTry: upsert.WantToTry,
		HaveIt:    upsert.HaveIt,
	}
	m.records[upsert.UserID] = record
	return record, nil
}

func TestGetPreferencesLazyEmptyRecord(t *testing.T) {
	service := NewService(newMemoryStore())

	prefs, err := service.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", prefs.UserID)
	require.Empty(t, prefs.Likes)
	require.Empty(t, prefs.Dislikes)
	require.Empty(t, prefs.Favorites)
	require.Empty(t, prefs.WantToTry)
	require.Empty(t, prefs.HaveIt)
}

func TestApplyActionToggle(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	prefs, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, prefs.Likes)

	// Second like removes it again.
	prefs, err = service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	require.Empty(t, prefs.Likes)
}

func TestApplyActionLikeDislikeExclusive(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	_, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)

	prefs, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionDislike)
	require.NoError(t, err)
	require.Empty(t, prefs.Likes)
	require.Equal(t, []string{"p1"}, prefs.Dislikes)

	prefs, err = service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, prefs.Likes)
	require.Empty(t, prefs.Dislikes)
}

func TestApplyActionLikeAfterDislikeThenLikeAgain(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	_, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionDislike)
	require.NoError(t, err)

	// First like clears the dislike and adds the like; second like only
	// reverts the toggle, the dislike stays gone.
	_, err = service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	prefs, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	require.Empty(t, prefs.Likes)
	require.Empty(t, prefs.Dislikes)
}

func TestApplyActionIndependentLists(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	_, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	_, err = service.ApplyAction(ctx, "user-1", "p1", store.ActionFavorite)
	require.NoError(t, err)
	_, err = service.ApplyAction(ctx, "user-1", "p2", store.ActionWantToTry)
	require.NoError(t, err)
	prefs, err := service.ApplyAction(ctx, "user-1", "p3", store.ActionHaveIt)
	require.NoError(t, err)

	require.Equal(t, []string{"p1"}, prefs.Likes)
	require.Equal(t, []string{"p1"}, prefs.Favorites)
	require.Equal(t, []string{"p2"}, prefs.WantToTry)
	require.Equal(t, []string{"p3"}, prefs.HaveIt)

	// Disliking p1 pulls it out of likes but leaves favorites alone.
	prefs, err = service.ApplyAction(ctx, "user-1", "p1", store.ActionDislike)
	require.NoError(t, err)
	require.Empty(t, prefs.Likes)
	require.Equal(t, []string{"p1"}, prefs.Favorites)
	require.Equal(t, []string{"p1"}, prefs.Dislikes)
}

func TestApplyActionPreservesOrder(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := service.ApplyAction(ctx, "user-1", id, store.ActionLike)
		require.NoError(t, err)
	}
	prefs, err := service.ApplyAction(ctx, "user-1", "p2", store.ActionLike)
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p3"}, prefs.Likes)
}

func TestApplyActionUnknownAction(t *testing.T) {
	service := NewService(newMemoryStore())

	_, err := service.ApplyAction(context.Background(), "user-1", "p1", store.PreferenceAction("love"))
	require.Error(t, err)
	require.True(t, apierrors.IsCode(err, apierrors.ErrCodeInvalidArgument))
}

// failingUpsertStore serves a shared record, the way the store cache does,
// and rejects every write.
type failingUpsertStore struct {
	record *store.UserPreferences
}

func (s *failingUpsertStore) GetUserPreferences(_ context.Context, _ *store.FindUserPreferences) (*store.UserPreferences, error) {
	return s.record, nil
}

func (s *failingUpsertStore) UpsertUserPreferences(_ context.Context, _ *store.UpsertUserPreferences) (*store.UserPreferences, error) {
	return nil, errors.New("connection reset")
}

func TestApplyActionFailedUpsertLeavesSharedRecordUntouched(t *testing.T) {
	record := &store.UserPreferences{
		UserID:   "user-1",
		Likes:    []string{"p1"},
		Dislikes: []string{"p2"},
	}
	service := NewService(&failingUpsertStore{record: record})

	// Liking p2 would clear it from dislikes; the write fails, so the
	// record the store still holds must not carry that mutation.
	_, err := service.ApplyAction(context.Background(), "user-1", "p2", store.ActionLike)
	require.Error(t, err)
	require.Equal(t, []string{"p1"}, record.Likes)
	require.Equal(t, []string{"p2"}, record.Dislikes)
}

func TestApplyActionUsersIsolated(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryStore())

	_, err := service.ApplyAction(ctx, "user-1", "p1", store.ActionLike)
	require.NoError(t, err)
	prefs, err := service.GetPreferences(ctx, "user-2")
	require.NoError(t, err)
	require.Empty(t, prefs.Likes)
}
