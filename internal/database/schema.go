package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

//go:embed seed_data.sql
var seedData string

// ApplySchemaExtras installs schema objects AutoMigrate cannot express.
// Postgres only; other dialects (sqlite in tests) skip silently.
func ApplySchemaExtras(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	statements := []string{
		`CREATE OR REPLACE FUNCTION refresh_posts_updated_at()
		RETURNS TRIGGER AS $$
		BEGIN
			NEW.updated_at = NOW();
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS posts_updated_at ON posts`,
		`CREATE TRIGGER posts_updated_at
		BEFORE UPDATE ON posts
		FOR EACH ROW
		EXECUTE FUNCTION refresh_posts_updated_at()`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts (author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_tags_tag_id ON posts_tags (tag_id)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema extras: %w", err)
		}
	}
	return nil
}

// Reset drops all tables, recreates the schema and loads the bundled sample
// data. Destructive; exposed only through the reset endpoint.
func Reset(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	// Drop order respects foreign keys: join table and posts first.
	if err := tx.Migrator().DropTable(
		&models.PostTag{},
		&models.Post{},
		&models.Tag{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := Migrate(tx); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	if err := ApplySchemaExtras(tx); err != nil {
		return err
	}

	for _, stmt := range strings.Split(seedData, ";\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to load seed data: %w", err)
		}
	}

	// Seed rows carry explicit ids; realign the sequences so subsequent
	// inserts do not collide. Sqlite keeps its rowid counter consistent on
	// its own.
	if db.Dialector.Name() == "postgres" {
		for _, table := range []string{"users", "tags", "posts"} {
			stmt := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s", table, table)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to realign %s id sequence: %w", table, err)
			}
		}
	}

	middleware.DatabaseResets.Inc()
	middleware.Logger.InfoContext(ctx, "Database reset completed")
	return nil
}
