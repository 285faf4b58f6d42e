package model

import (
	"time"
)

type Board struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
