package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fragora/fragora/internal/profile"
)

// countingDriver tracks how often the underlying driver is hit so cache
// behavior is observable.
type countingDriver struct {
	perfumes  []*Perfume
	prefs     map[string]*UserPreferences
	listCalls int
	getCalls  int
}

func (d *countingDriver) GetDB() *sql.DB { return nil }
func (d *countingDriver) Close() error   { return nil }

func (d *countingDriver) IsInitialized(_ context.Context) (bool, error) { return true, nil }

func (d *countingDriver) CreatePerfume(_ context.Context, create *Perfume) (*Perfume, error) {
	d.perfumes = append(d.perfumes, create)
	return create, nil
}

func (d *countingDriver) ListPerfumes(_ context.Context, find *FindPerfume) ([]*Perfume, error) {
	d.listCalls++
	if find.ID != nil {
		for _, perfume := range d.perfumes {
			if perfume.ID == *find.ID {
				return []*Perfume{perfume}, nil
			}
		}
		return nil, nil
	}
	return d.perfumes, nil
}

func (d *countingDriver) UpsertUserPreferences(_ context.Context, upsert *UpsertUserPreferences) (*UserPreferences, error) {
	prefs := &UserPreferences{
		UserID:    upsert.UserID,
		Likes:     upsert.Likes,
		Dislikes:  upsert.Dislikes,
		Favorites: upsert.Favorites,
		WantToTry: upsert.WantToTry,
		HaveIt:    upsert.HaveIt,
	}
	d.prefs[upsert.UserID] = prefs
	return prefs, nil
}

func (d *countingDriver) GetUserPreferences(_ context.Context, find *FindUserPreferences) (*UserPreferences, error) {
	d.getCalls++
	if find.UserID == nil {
		return nil, nil
	}
	return d.prefs[*find.UserID], nil
}

func (d *countingDriver) CreateReview(_ context.Context, create *Review) (*Review, error) {
	return create, nil
}

func (d *countingDriver) ListReviews(_ context.Context, _ *FindReview) ([]*Review, error) {
	return nil, nil
}

func newTestStore(t *testing.T) (*Store, *countingDriver) {
	t.Helper()
	driver := &countingDriver{
		perfumes: []*Perfume{{ID: "p1", Name: "Citrus Bloom"}},
		prefs:    map[string]*UserPreferences{},
	}
	st := New(driver, &profile.Profile{Mode: "demo", Driver: "sqlite"})
	t.Cleanup(func() { _ = st.Close() })
	return st, driver
}

func TestGetAllPerfumesCached(t *testing.T) {
	st, driver := newTestStore(t)
	ctx := context.Background()

	first, err := st.GetAllPerfumes(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = st.GetAllPerfumes(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, driver.listCalls)
}

func TestCreatePerfumeInvalidatesCatalogCache(t *testing.T) {
	st, driver := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetAllPerfumes(ctx)
	require.NoError(t, err)

	_, err = st.CreatePerfume(ctx, &Perfume{ID: "p2", Name: "Noir Essence"})
	require.NoError(t, err)

	perfumes, err := st.GetAllPerfumes(ctx)
	require.NoError(t, err)
	require.Len(t, perfumes, 2)
	require.Equal(t, 2, driver.listCalls)
}

func TestGetPerfume(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	perfume, err := st.GetPerfume(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, perfume)
	require.Equal(t, "Citrus Bloom", perfume.Name)

	perfume, err = st.GetPerfume(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, perfume)
}

func TestUserPreferencesCacheFlow(t *testing.T) {
	st, driver := newTestStore(t)
	ctx := context.Background()
	userID := "user-1"

	// Absent record: the driver is consulted every time, nothing cached.
	prefs, err := st.GetUserPreferences(ctx, &FindUserPreferences{UserID: &userID})
	require.NoError(t, err)
	require.Nil(t, prefs)
	require.Equal(t, 1, driver.getCalls)

	// Upsert fills the cache; the next read skips the driver.
	_, err = st.UpsertUserPreferences(ctx, &UpsertUserPreferences{UserID: userID, Likes: []string{"p1"}})
	require.NoError(t, err)

	prefs, err = st.GetUserPreferences(ctx, &FindUserPreferences{UserID: &userID})
	require.NoError(t, err)
	require.Equal(t, []string{"p1"}, prefs.Likes)
	require.Equal(t, 1, driver.getCalls)
}
