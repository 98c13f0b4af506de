package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateSchema creates all tables and the uniqueness indexes the services rely
// on. Safe to call on every startup.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*MediaStatus)(nil),
		(*Friendship)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	// One row per (user, media, status); the toggle service depends on this.
	if _, err := db.NewCreateIndex().
		Model((*MediaStatus)(nil)).
		Index("idx_media_statuses_unique").
		Unique().
		IfNotExists().
		Column("user_id", "media_id", "media_type", "status").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create media status index: %w", err)
	}

	// No duplicate friendship edges.
	if _, err := db.NewCreateIndex().
		Model((*Friendship)(nil)).
		Index("idx_friendships_unique").
		Unique().
		IfNotExists().
		Column("user_id", "friend_id").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create friendship index: %w", err)
	}

	return nil
}
