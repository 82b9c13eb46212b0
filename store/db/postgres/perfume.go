package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/fragora/fragora/store"
)

func (d *DB) CreatePerfume(ctx context.Context, create *store.Perfume) (*store.Perfume, error) {
	notes, err := marshalJSON(create.Notes)
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(create.Tags)
	if err != nil {
		return nil, err
	}
	usageStats, err := marshalJSON(create.UsageStats)
	if err != nil {
		return nil, err
	}
	buyLinks, err := marshalJSON(create.BuyLinks)
	if err != nil {
		return nil, err
	}

	fields := []string{
		"id", "name", "brand", "year", "concentration", "family",
		"notes", "tags", "average_rating", "average_longevity_hours",
		"average_intensity", "usage_stats", "image_url", "buy_links",
	}
	args := []any{
		create.ID, create.Name, create.Brand, create.Year, create.Concentration, create.Family,
		notes, tags, create.AverageRating, create.AverageLongevityHours,
		create.AverageIntensity, usageStats, create.ImageURL, buyLinks,
	}

	stmt := `INSERT INTO perfume (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create perfume: %w", err)
	}

	return create, nil
}

func (d *DB) ListPerfumes(ctx context.Context, find *store.FindPerfume) ([]*store.Perfume, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "perfume.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.NameSearch; v != nil {
		where, args = append(where, "LOWER(perfume.name) LIKE "+placeholder(len(args)+1)), append(args, "%"+strings.ToLower(*v)+"%")
	}
	if v := find.BrandSearch; v != nil {
		where, args = append(where, "LOWER(perfume.brand) LIKE "+placeholder(len(args)+1)), append(args, "%"+strings.ToLower(*v)+"%")
	}

	// Catalog order is seed order; rankers depend on it being stable.
	query := `
		SELECT
			id, name, brand, year, concentration, family,
			notes, tags, average_rating, average_longevity_hours,
			average_intensity, usage_stats, image_url, buy_links,
			created_ts, updated_ts
		FROM perfume
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY perfume.seed_order ASC, perfume.id ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query perfumes: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Perfume, 0)
	for rows.Next() {
		perfume := &store.Perfume{}
		var notes, tags, usageStats, buyLinks string
		if err := rows.Scan(
			&perfume.ID,
			&perfume.Name,
			&perfume.Brand,
			&perfume.Year,
			&perfume.Concentration,
			&perfume.Family,
			&notes,
			&tags,
			&perfume.AverageRating,
			&perfume.AverageLongevityHours,
			&perfume.AverageIntensity,
			&usageStats,
			&perfume.ImageURL,
			&buyLinks,
			&perfume.CreatedTs,
			&perfume.UpdatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan perfume: %w", err)
		}
		if err := unmarshalJSON(notes, &perfume.Notes); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(tags, &perfume.Tags); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(usageStats, &perfume.UsageStats); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(buyLinks, &perfume.BuyLinks); err != nil {
			return nil, err
		}

		// Tag filtering happens post-scan; tags live in a JSON column and
		// the catalog is small enough that SQL-side json_each is not worth it.
		if find.Tag != nil && !hasTagFold(perfume, *find.Tag) {
			continue
		}
		list = append(list, perfume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate perfumes: %w", err)
	}

	return list, nil
}

func hasTagFold(perfume *store.Perfume, tag string) bool {
	for _, t := range perfume.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
