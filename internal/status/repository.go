package status

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cinetech/api/internal/database"
)

// Store captures the persistence operations the status service composes into
// its toggle algorithm. RunInTx hands the callback a Store bound to a single
// transaction so multi-row mutations commit atomically.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	Insert(ctx context.Context, row Row) error
	Delete(ctx context.Context, key Key) (bool, error)
	Flags(ctx context.Context, userID uuid.UUID, mediaID int64, mediaType MediaType) (Flags, error)
	ListByStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Item, error)
}

// Repository handles media status persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// RunInTx executes fn against a repository bound to one database transaction.
// If the repository is already transactional, fn runs in the open transaction.
func (r *Repository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	db, ok := r.db.(*bun.DB)
	if !ok {
		return fn(ctx, r)
	}

	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &Repository{db: tx})
	})
}

// Insert creates a status row. The unique index on (user, media, type, status)
// rejects duplicates under concurrent toggles; On CONFLICT DO NOTHING keeps the
// operation idempotent.
func (r *Repository) Insert(ctx context.Context, row Row) error {
	dbRow := &database.MediaStatus{
		UserID:     row.UserID,
		MediaID:    row.MediaID,
		MediaType:  string(row.MediaType),
		Status:     string(row.Status),
		Title:      row.Title,
		PosterPath: row.PosterPath,
	}

	_, err := r.db.NewInsert().
		Model(dbRow).
		On("CONFLICT (user_id, media_id, media_type, status) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert status row: %w", err)
	}

	return nil
}

// Delete removes a status row if present and reports whether one was removed.
func (r *Repository) Delete(ctx context.Context, key Key) (bool, error) {
	result, err := r.db.NewDelete().
		Model((*database.MediaStatus)(nil)).
		Where("user_id = ?", key.UserID).
		Where("media_id = ?", key.MediaID).
		Where("media_type = ?", string(key.MediaType)).
		Where("status = ?", string(key.Status)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete status row: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Flags derives the three booleans from the rows present for a (user, media)
// pair. A missing row means false; no phantom values.
func (r *Repository) Flags(ctx context.Context, userID uuid.UUID, mediaID int64, mediaType MediaType) (Flags, error) {
	var statuses []string
	err := r.db.NewSelect().
		Model((*database.MediaStatus)(nil)).
		Column("status").
		Where("user_id = ?", userID).
		Where("media_id = ?", mediaID).
		Where("media_type = ?", string(mediaType)).
		Scan(ctx, &statuses)
	if err != nil {
		return Flags{}, fmt.Errorf("failed to load status rows: %w", err)
	}

	var flags Flags
	for _, s := range statuses {
		switch Status(s) {
		case StatusFavorite:
			flags.Favorite = true
		case StatusWatched:
			flags.Watched = true
		case StatusWatchLater:
			flags.WatchLater = true
		}
	}

	return flags, nil
}

// ListByStatus returns the user's rows for one status, newest first.
func (r *Repository) ListByStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Item, error) {
	var dbRows []database.MediaStatus
	err := r.db.NewSelect().
		Model(&dbRows).
		Where("user_id = ?", userID).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status rows: %w", err)
	}

	items := make([]Item, 0, len(dbRows))
	for _, row := range dbRows {
		items = append(items, Item{
			MediaID:    row.MediaID,
			MediaType:  MediaType(row.MediaType),
			Status:     Status(row.Status),
			Title:      row.Title,
			PosterPath: row.PosterPath,
			CreatedAt:  row.CreatedAt,
		})
	}

	return items, nil
}
