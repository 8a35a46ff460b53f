package store

import (
	"context"
	"errors"
	"fmt"

	"ai-hub/internal/database"
	"ai-hub/internal/model"

	"github.com/jackc/pgx/v5"
)

// RecordGeneration commits a usage increment and a history append as one
// transaction. The increment is an in-storage delta, so N concurrent calls
// for the same user always add exactly N, regardless of interleaving.
func RecordGeneration(ctx context.Context, db database.DB, userID int64, toolType, prompt, response string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("RecordGeneration: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE users SET usage_count = usage_count + 1 WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("RecordGeneration: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return ErrUserNotFound
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO history (user_id, tool_type, prompt, response)
		 VALUES ($1, $2, $3, $4)`,
		userID,
		toolType,
		prompt,
		response,
	); err != nil {
		return fmt.Errorf("RecordGeneration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("RecordGeneration: %w", err)
	}
	return nil
}

func GetUsage(ctx context.Context, db database.DB, userID int64) (int64, error) {
	var count int64
	row := db.QueryRow(ctx,
		`SELECT usage_count FROM users WHERE id = $1`,
		userID,
	)
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("GetUsage: %w", err)
	}
	return count, nil
}

// ListHistory returns the limit most recent records for the user, newest
// first. Ties on created_at fall back to insertion order.
func ListHistory(ctx context.Context, db database.DB, userID int64, limit int) ([]model.HistoryRecord, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, tool_type, prompt, response, created_at
		 FROM history
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListHistory: %w", err)
	}
	defer rows.Close()

	records := []model.HistoryRecord{}
	for rows.Next() {
		var r model.HistoryRecord
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ToolType,
			&r.Prompt,
			&r.Response,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListHistory: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListHistory: %w", err)
	}
	return records, nil
}
