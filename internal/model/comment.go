package model

import (
	"time"
)

// GoalComment is a free-text note attached to a goal.
type GoalComment struct {
	ID        string    `db:"id"`
	GoalID    string    `db:"goal_id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
