package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentRepository interface {
	Create(comment *model.GoalComment) error
	ByID(userID, commentID string) (*model.GoalComment, error)
	Comments(userID, goalID string) ([]*model.GoalComment, error)
	Update(comment *model.GoalComment) error
	Delete(userID, commentID string) error
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.GoalComment) error {
	query := `INSERT INTO goal_comments (id, goal_id, user_id, text, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.GoalID,
		comment.UserID,
		comment.Text,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	return err
}

func (r *commentRepository) ByID(userID, commentID string) (*model.GoalComment, error) {
	comment := &model.GoalComment{}
	query := `SELECT * FROM goal_comments WHERE id = $1 AND user_id = $2`

	err := r.db.Get(comment, query, commentID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCommentNotFound
	}

	return comment, err
}

// Comments lists the caller's comments oldest first, optionally limited to
// one goal.
func (r *commentRepository) Comments(userID, goalID string) ([]*model.GoalComment, error) {
	var comments []*model.GoalComment

	query := `SELECT * FROM goal_comments WHERE user_id = $1`
	args := []any{userID}

	if goalID != "" {
		query += ` AND goal_id = $2`
		args = append(args, goalID)
	}

	query += ` ORDER BY created_at ASC`

	err := r.db.Select(&comments, query, args...)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepository) Update(comment *model.GoalComment) error {
	query := `UPDATE goal_comments SET text = $1, updated_at = $2
	          WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, comment.Text, time.Now(), comment.ID, comment.UserID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// Delete removes the comment row. Comments carry no tombstone flag.
func (r *commentRepository) Delete(userID, commentID string) error {
	query := `DELETE FROM goal_comments WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, commentID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCommentNotFound
	}

	return nil
}
