package model

import (
	"time"
)

// GoalCategory groups goals within a board. UserID is the creator; only the
// creator may add goals to the category.
type GoalCategory struct {
	ID        string    `db:"id"`
	BoardID   string    `db:"board_id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
