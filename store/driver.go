package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Perfume model related methods. The catalog is seeded at startup and
	// read-only afterwards, so there is no update or delete.
	CreatePerfume(ctx context.Context, create *Perfume) (*Perfume, error)
	ListPerfumes(ctx context.Context, find *FindPerfume) ([]*Perfume, error)

	// UserPreferences model related methods.
	UpsertUserPreferences(ctx context.Context, upsert *UpsertUserPreferences) (*UserPreferences, error)
	GetUserPreferences(ctx context.Context, find *FindUserPreferences) (*UserPreferences, error)

	// Review model related methods. Reviews are append-only.
	CreateReview(ctx context.Context, create *Review) (*Review, error)
	ListReviews(ctx context.Context, find *FindReview) ([]*Review, error)
}
