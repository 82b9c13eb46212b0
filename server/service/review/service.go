// Package review implements the append-only review accumulator.
package review

import (
	"context"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/fragora/fragora/store"
)

// Rating bounds enforced at the API boundary; kept here as the single
// source of truth for both handler validation and tests.
const (
	MinRating = 1
	MaxRating = 5
)

// Store is the interface for store operations needed by the review service.
type Store interface {
	CreateReview(ctx context.Context, create *store.Review) (*store.Review, error)
	ListReviews(ctx context.Context, find *store.FindReview) ([]*store.Review, error)
}

// Service manages perfume reviews. There is no update or delete path.
type Service interface {
	// AddReview stamps the current time and appends one review.
	AddReview(ctx context.Context, userID, perfumeID string, rating int, comment string) (*store.Review, error)

	// ListByPerfume returns all reviews of one perfume, newest first.
	ListByPerfume(ctx context.Context, perfumeID string) ([]*store.Review, error)
}

type service struct {
	store Store
	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a review service on top of the given store.
func NewService(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) AddReview(ctx context.Context, userID, perfumeID string, rating int, comment string) (*store.Review, error) {
	created, err := s.store.CreateReview(ctx, &store.Review{
		UID:       shortuuid.New(),
		UserID:    userID,
		PerfumeID: perfumeID,
		Rating:    rating,
		Comment:   comment,
		CreatedTs: s.now().Unix(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}
	return created, nil
}

func (s *service) ListByPerfume(ctx context.Context, perfumeID string) ([]*store.Review, error) {
	reviews, err := s.store.ListReviews(ctx, &store.FindReview{PerfumeID: &perfumeID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	return reviews, nil
}
