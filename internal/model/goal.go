package model

import (
	"time"
)

const (
	GoalStatusToDo       = "to_do"
	GoalStatusInProgress = "in_progress"
	GoalStatusDone       = "done"
	GoalStatusArchived   = "archived"
)

const (
	GoalPriorityLow      = "low"
	GoalPriorityMedium   = "medium"
	GoalPriorityHigh     = "high"
	GoalPriorityCritical = "critical"
)

func ValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusToDo, GoalStatusInProgress, GoalStatusDone, GoalStatusArchived:
		return true
	}
	return false
}

func ValidGoalPriority(priority string) bool {
	switch priority {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh, GoalPriorityCritical:
		return true
	}
	return false
}

// Goal is a task inside a category. Archived goals are logically deleted and
// excluded from all listings.
type Goal struct {
	ID          string     `db:"id"`
	CategoryID  string     `db:"category_id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (g *Goal) Archived() bool {
	return g.Status == GoalStatusArchived
}
