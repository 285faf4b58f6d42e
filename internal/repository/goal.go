package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/jmoiron/sqlx"
)

const (
	GoalSortTitle   = "title"
	GoalSortCreated = "created"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalFilter narrows a goal listing. Zero values mean "no constraint".
type GoalFilter struct {
	DueAfter  *time.Time
	DueBefore *time.Time
	Search    string // matches title or description
	SortBy    string // GoalSortTitle (default) or GoalSortCreated
}

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	ByIDUnscoped(goalID string) (*model.Goal, error)
	Goals(userID string, filter GoalFilter) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Archive(userID, goalID string) error
	ArchiveByCategory(ext sqlx.Execer, categoryID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, category_id, user_id, title, description, due_date, status, priority, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.CategoryID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.DueDate,
		goal.Status,
		goal.Priority,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

// ByID looks up a goal within the caller's visible scope: own goals that are
// not archived and whose category is not deleted.
func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT goals.* FROM goals
	          JOIN goal_categories ON goal_categories.id = goals.category_id
	          WHERE goals.id = $1 AND goals.user_id = $2
	            AND ` + categoryNotDeleted + ` AND ` + goalNotArchived

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

// ByIDUnscoped returns the goal regardless of owner or archive status, for
// permission checks and the idempotent delete path.
func (r *goalRepository) ByIDUnscoped(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string, filter GoalFilter) ([]*model.Goal, error) {
	var goals []*model.Goal

	query := `SELECT goals.* FROM goals
	          JOIN goal_categories ON goal_categories.id = goals.category_id
	          WHERE goals.user_id = $1
	            AND ` + categoryNotDeleted + ` AND ` + goalNotArchived
	args := []any{userID}

	if filter.DueAfter != nil {
		args = append(args, *filter.DueAfter)
		query += fmt.Sprintf(` AND goals.due_date >= $%d`, len(args))
	}
	if filter.DueBefore != nil {
		args = append(args, *filter.DueBefore)
		query += fmt.Sprintf(` AND goals.due_date <= $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(` AND (goals.title LIKE $%d OR goals.description LIKE $%d)`, len(args), len(args))
	}

	switch filter.SortBy {
	case GoalSortCreated:
		query += ` ORDER BY goals.created_at ASC`
	default:
		query += ` ORDER BY LOWER(goals.title) ASC`
	}

	err := r.db.Select(&goals, query, args...)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET category_id = $1, title = $2, description = $3, due_date = $4, status = $5, priority = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		goal.CategoryID,
		goal.Title,
		goal.Description,
		goal.DueDate,
		goal.Status,
		goal.Priority,
		time.Now(),
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Archive sets status to archived and writes no other column. Archiving an
// already archived goal is a no-op that still reports success.
func (r *goalRepository) Archive(userID, goalID string) error {
	query := `UPDATE goals SET status = $1
	          WHERE id = $2 AND user_id = $3`

	result, err := r.db.Exec(query, model.GoalStatusArchived, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// ArchiveByCategory archives every goal in the category. It runs on the
// transaction that tombstones the category so the cascade is all-or-nothing.
func (r *goalRepository) ArchiveByCategory(ext sqlx.Execer, categoryID string) error {
	query := `UPDATE goals SET status = $1 WHERE category_id = $2`

	_, err := ext.Exec(query, model.GoalStatusArchived, categoryID)
	return err
}
