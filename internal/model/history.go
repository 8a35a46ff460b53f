package model

import "time"

// HistoryRecord is one completed generation. Records are append-only and
// ordered by CreatedAt (ties broken by insertion order via ID).
type HistoryRecord struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ToolType  string    `db:"tool_type" json:"tool_type"`
	Prompt    string    `db:"prompt" json:"prompt"`
	Response  string    `db:"response" json:"response"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
