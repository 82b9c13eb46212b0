package store

import (
	"context"
	"time"

	"github.com/fragora/fragora/internal/profile"
	"github.com/fragora/fragora/store/cache"
)

// catalogCacheKey is the single key under which the full perfume catalog is
// cached. The catalog is seeded once and read-only, so one entry is enough.
const catalogCacheKey = "catalog"

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Cache settings
	cacheConfig cache.Config

	// Caches
	catalogCache        *cache.Cache // cache for the full perfume catalog
	userPreferenceCache *cache.Cache // cache for per-user preference records
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	// Default cache settings
	cacheConfig := cache.Config{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
		MaxItems:        1000,
		OnEviction:      nil,
	}

	return &Store{
		driver:              driver,
		profile:             profile,
		cacheConfig:         cacheConfig,
		catalogCache:        cache.New(cacheConfig),
		userPreferenceCache: cache.New(cacheConfig),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	// Stop all cache cleanup goroutines
	s.catalogCache.Close()
	s.userPreferenceCache.Close()

	return s.driver.Close()
}

// CreatePerfume inserts a catalog entry. The demo seeder runs embedded SQL
// instead; this path exists for tests and tooling.
func (s *Store) CreatePerfume(ctx context.Context, create *Perfume) (*Perfume, error) {
	s.catalogCache.Delete(catalogCacheKey)
	return s.driver.CreatePerfume(ctx, create)
}

// ListPerfumes returns catalog entries matching find, in seed order.
func (s *Store) ListPerfumes(ctx context.Context, find *FindPerfume) ([]*Perfume, error) {
	return s.driver.ListPerfumes(ctx, find)
}

// GetPerfume returns the perfume with the given id, or nil when absent.
func (s *Store) GetPerfume(ctx context.Context, id string) (*Perfume, error) {
	list, err := s.driver.ListPerfumes(ctx, &FindPerfume{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// GetAllPerfumes returns the full catalog in seed order, served from cache
// when possible.
func (s *Store) GetAllPerfumes(ctx context.Context) ([]*Perfume, error) {
	if v, ok := s.catalogCache.Get(catalogCacheKey); ok {
		if perfumes, ok := v.([]*Perfume); ok {
			return perfumes, nil
		}
	}
	perfumes, err := s.driver.ListPerfumes(ctx, &FindPerfume{})
	if err != nil {
		return nil, err
	}
	s.catalogCache.Set(catalogCacheKey, perfumes)
	return perfumes, nil
}

// UpsertUserPreferences writes the full preference record for a user.
func (s *Store) UpsertUserPreferences(ctx context.Context, upsert *UpsertUserPreferences) (*UserPreferences, error) {
	prefs, err := s.driver.UpsertUserPreferences(ctx, upsert)
	if err != nil {
		return nil, err
	}
	s.userPreferenceCache.Set(prefs.UserID, prefs)
	return prefs, nil
}

// GetUserPreferences returns the stored preference record for a user, or
// nil when the user has never recorded a preference.
func (s *Store) GetUserPreferences(ctx context.Context, find *FindUserPreferences) (*UserPreferences, error) {
	if find.UserID != nil {
		if v, ok := s.userPreferenceCache.Get(*find.UserID); ok {
			if prefs, ok := v.(*UserPreferences); ok {
				return prefs, nil
			}
		}
	}
	prefs, err := s.driver.GetUserPreferences(ctx, find)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		s.userPreferenceCache.Set(prefs.UserID, prefs)
	}
	return prefs, nil
}

// CreateReview appends a review.
func (s *Store) CreateReview(ctx context.Context, create *Review) (*Review, error) {
	return s.driver.CreateReview(ctx, create)
}

// ListReviews returns reviews matching find, newest first.
func (s *Store) ListReviews(ctx context.Context, find *FindReview) ([]*Review, error) {
	return s.driver.ListReviews(ctx, find)
}
