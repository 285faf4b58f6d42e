package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryRepository interface {
	Create(category *model.GoalCategory) error
	ByID(userID, categoryID string) (*model.GoalCategory, error)
	ByIDUnscoped(categoryID string) (*model.GoalCategory, error)
	Categories(userID, search string) ([]*model.GoalCategory, error)
	Update(category *model.GoalCategory) error
	MarkDeleted(ext sqlx.Execer, categoryID string) error
}

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.GoalCategory) error {
	query := `INSERT INTO goal_categories (id, board_id, user_id, title, is_deleted, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		category.ID,
		category.BoardID,
		category.UserID,
		category.Title,
		category.IsDeleted,
		category.CreatedAt,
		category.UpdatedAt,
	)

	return err
}

// ByID looks up a category within the caller's visible scope: rows the caller
// created and has not deleted.
func (r *categoryRepository) ByID(userID, categoryID string) (*model.GoalCategory, error) {
	category := &model.GoalCategory{}
	query := `SELECT * FROM goal_categories
	          WHERE id = $1 AND user_id = $2 AND ` + categoryNotDeleted

	err := r.db.Get(category, query, categoryID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

// ByIDUnscoped returns the category regardless of owner or tombstone.
// Permission checks need the row itself to tell "forbidden" apart from
// "absent" before any scoped query hides it.
func (r *categoryRepository) ByIDUnscoped(categoryID string) (*model.GoalCategory, error) {
	category := &model.GoalCategory{}
	query := `SELECT * FROM goal_categories WHERE id = $1`

	err := r.db.Get(category, query, categoryID)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}

	return category, err
}

func (r *categoryRepository) Categories(userID, search string) ([]*model.GoalCategory, error) {
	var categories []*model.GoalCategory

	query := `SELECT * FROM goal_categories
	          WHERE user_id = $1 AND ` + categoryNotDeleted
	args := []any{userID}

	if search != "" {
		query += ` AND title LIKE $2`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY LOWER(title) ASC`

	err := r.db.Select(&categories, query, args...)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Update(category *model.GoalCategory) error {
	query := `UPDATE goal_categories SET title = $1, updated_at = $2
	          WHERE id = $3 AND user_id = $4 AND ` + categoryNotDeleted

	result, err := r.db.Exec(query, category.Title, time.Now(), category.ID, category.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// MarkDeleted tombstones the category, writing only the is_deleted column.
// Callers run it inside the same transaction that archives the category's
// goals.
func (r *categoryRepository) MarkDeleted(ext sqlx.Execer, categoryID string) error {
	query := `UPDATE goal_categories SET is_deleted = TRUE WHERE id = $1`

	result, err := ext.Exec(query, categoryID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
