package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fragora/fragora/store"
)

func (d *DB) UpsertUserPreferences(ctx context.Context, upsert *store.UpsertUserPreferences) (*store.UserPreferences, error) {
	now := time.Now().Unix()

	likes, err := marshalJSON(upsert.Likes)
	if err != nil {
		return nil, err
	}
	dislikes, err := marshalJSON(upsert.Dislikes)
	if err != nil {
		return nil, err
	}
	favorites, err := marshalJSON(upsert.Favorites)
	if err != nil {
		return nil, err
	}
	wantToTry, err := marshalJSON(upsert.WantToTry)
	if err != nil {
		return nil, err
	}
	haveIt, err := marshalJSON(upsert.HaveIt)
	if err != nil {
		return nil, err
	}

	stmt := `INSERT INTO user_preferences (user_id, likes, dislikes, favorites, want_to_try, have_it, created_ts, updated_ts)
		VALUES (` + placeholders(8) + `)
		ON CONFLICT (user_id) DO UPDATE SET
			likes = EXCLUDED.likes,
			dislikes = EXCLUDED.dislikes,
			favorites = EXCLUDED.favorites,
			want_to_try = EXCLUDED.want_to_try,
			have_it = EXCLUDED.have_it,
			updated_ts = EXCLUDED.updated_ts
		RETURNING user_id, likes, dislikes, favorites, want_to_try, have_it, created_ts, updated_ts`

	row := d.db.QueryRowContext(ctx, stmt, upsert.UserID, likes, dislikes, favorites, wantToTry, haveIt, now, now)
	result, err := scanUserPreferences(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user_preferences: %w", err)
	}
	return result, nil
}

func (d *DB) GetUserPreferences(ctx context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error) {
	if find.UserID == nil {
		return nil, fmt.Errorf("user_id is required")
	}

	query := `SELECT user_id, likes, dislikes, favorites, want_to_try, have_it, created_ts, updated_ts
		FROM user_preferences WHERE user_id = ` + placeholder(1)

	row := d.db.QueryRowContext(ctx, query, *find.UserID)
	result, err := scanUserPreferences(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found, return nil without error
		}
		return nil, fmt.Errorf("failed to get user_preferences: %w", err)
	}
	return result, nil
}

func scanUserPreferences(row *sql.Row) (*store.UserPreferences, error) {
	result := &store.UserPreferences{}
	var likes, dislikes, favorites, wantToTry, haveIt string
	if err := row.Scan(
		&result.UserID,
		&likes,
		&dislikes,
		&favorites,
		&wantToTry,
		&haveIt,
		&result.CreatedTs,
		&result.UpdatedTs,
	); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(likes, &result.Likes); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(dislikes, &result.Dislikes); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(favorites, &result.Favorites); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(wantToTry, &result.WantToTry); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(haveIt, &result.HaveIt); err != nil {
		return nil, err
	}
	return result, nil
}
