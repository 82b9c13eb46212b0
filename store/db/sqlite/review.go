package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fragora/fragora/store"
)

func (d *DB) CreateReview(ctx context.Context, create *store.Review) (*store.Review, error) {
	fields := []string{"uid", "user_id", "perfume_id", "rating", "comment"}
	args := []any{create.UID, create.UserID, create.PerfumeID, create.Rating, create.Comment}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO review (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return create, nil
}

func (d *DB) ListReviews(ctx context.Context, find *store.FindReview) ([]*store.Review, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.UID; v != nil {
		where, args = append(where, "review.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "review.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.PerfumeID; v != nil {
		where, args = append(where, "review.perfume_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, uid, user_id, perfume_id, rating, comment, created_ts
		FROM review
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY review.created_ts DESC, review.id DESC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Review, 0)
	for rows.Next() {
		review := &store.Review{}
		if err := rows.Scan(
			&review.ID,
			&review.UID,
			&review.UserID,
			&review.PerfumeID,
			&review.Rating,
			&review.Comment,
			&review.CreatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		list = append(list, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return list, nil
}
