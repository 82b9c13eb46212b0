package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fragora/fragora/store"
)

type memoryStore struct {
	reviews []*store.Review
	nextID  int64
}

func (m *memoryStore) CreateReview(_ context.Context, create *store.Review) (*store.Review, error) {
	m.nextID++
	created := *create
	created.ID = m.nextID
	m.reviews = append(m.reviews, &created)
	return &created, nil
}

func (m *memoryStore) ListReviews(_ context.Context, find *store.FindReview) ([]*store.Review, error) {
	var result []*store.Review
	for _, review := range m.reviews {
		if find.PerfumeID != nil && review.PerfumeID != *find.PerfumeID {
			continue
		}
		result = append(result, review)
	}
	return result, nil
}

func TestAddReview(t *testing.T) {
	mock := &memoryStore{}
	svc := NewService(mock).(*service)
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.AddReview(context.Background(), "user-1", "p1", 4, "Fresco y facil de usar")
	require.NoError(t, err)
	require.NotEmpty(t, created.UID)
	require.Equal(t, "user-1", created.UserID)
	require.Equal(t, "p1", created.PerfumeID)
	require.Equal(t, 4, created.Rating)
	require.Equal(t, fixed.Unix(), created.CreatedTs)
}

func TestAddReviewUniqueUIDs(t *testing.T) {
	mock := &memoryStore{}
	svc := NewService(mock)

	first, err := svc.AddReview(context.Background(), "user-1", "p1", 5, "primera")
	require.NoError(t, err)
	second, err := svc.AddReview(context.Background(), "user-1", "p1", 3, "segunda")
	require.NoError(t, err)
	require.NotEqual(t, first.UID, second.UID)
}

func TestListByPerfumeIsolation(t *testing.T) {
	mock := &memoryStore{}
	svc := NewService(mock)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "user-1", "p1", 4, "uno")
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "user-2", "p2", 5, "dos")
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "user-3", "p1", 2, "tres")
	require.NoError(t, err)

	reviews, err := svc.ListByPerfume(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		require.Equal(t, "p1", review.PerfumeID)
	}

	reviews, err = svc.ListByPerfume(ctx, "p9")
	require.NoError(t, err)
	require.Empty(t, reviews)
}
