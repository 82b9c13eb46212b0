package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pkg/errors"
)

// Migration System Overview:
//
// Fresh installations apply the full schema from LATEST.sql for the active
// driver. In dev and demo mode an empty catalog is then populated from the
// embedded seed files so the service is usable out of the box.
//
// Migration Files:
// - Location: store/migration/{driver}/LATEST.sql
// - Seed files: store/seed/{driver}/*.sql, sorted lexicographically

//go:embed migration
var migrationFS embed.FS

//go:embed seed
var seedFS embed.FS

const (
	// LatestSchemaFileName is the name of the latest schema file.
	// This file is used to initialize fresh installations with the current schema.
	LatestSchemaFileName = "LATEST.sql"
)

// Migrate applies the schema on fresh installations and seeds demo data
// when running in dev or demo mode.
func (s *Store) Migrate(ctx context.Context) error {
	initialized, err := s.driver.IsInitialized(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check if database is initialized")
	}

	if !initialized {
		if err := s.applyLatestSchema(ctx); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		slog.Info("database initialized", slog.String("driver", s.profile.Driver))
	}

	if s.profile.Mode == "demo" || s.profile.Mode == "dev" {
		if err := s.seedIfEmpty(ctx); err != nil {
			return errors.Wrap(err, "failed to seed database")
		}
	}

	return nil
}

func (s *Store) applyLatestSchema(ctx context.Context) error {
	filePath := fmt.Sprintf("migration/%s/%s", s.profile.Driver, LatestSchemaFileName)
	buf, err := migrationFS.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read latest schema file %q", filePath)
	}

	if _, err := s.driver.GetDB().ExecContext(ctx, string(buf)); err != nil {
		return errors.Wrapf(err, "failed to execute latest schema %q", filePath)
	}
	return nil
}

func (s *Store) seedIfEmpty(ctx context.Context) error {
	perfumes, err := s.driver.ListPerfumes(ctx, &FindPerfume{})
	if err != nil {
		return errors.Wrap(err, "failed to list perfumes")
	}
	if len(perfumes) > 0 {
		return nil
	}

	dirPath := fmt.Sprintf("seed/%s", s.profile.Driver)
	entries, err := fs.ReadDir(seedFS, dirPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read seed directory %q", dirPath)
	}

	// fs.ReadDir returns entries sorted by name, which fixes seed order.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		buf, err := seedFS.ReadFile(dirPath + "/" + entry.Name())
		if err != nil {
			return errors.Wrapf(err, "failed to read seed file %q", entry.Name())
		}
		if _, err := s.driver.GetDB().ExecContext(ctx, string(buf)); err != nil {
			return errors.Wrapf(err, "failed to execute seed file %q", entry.Name())
		}
		slog.Info("seed file applied", slog.String("file", entry.Name()))
	}
	return nil
}
