package model

import "time"

// User is an account in the gateway. UsageCount is monotonically
// non-decreasing and only ever changed by the usage ledger's transactional
// increment. PasswordHash never leaves the process.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	UsageCount   int64     `db:"usage_count" json:"usage_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
