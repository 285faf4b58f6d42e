package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrBoardNotFound = errors.New("board not found")
)

type BoardRepository interface {
	Create(ext sqlx.Execer, board *model.Board) error
	ByID(id string) (*model.Board, error)
	BoardsByUser(userID string) ([]*model.Board, error)
	Update(board *model.Board) error
	MarkDeleted(id string) error
}

type boardRepository struct {
	db *sqlx.DB
}

func NewBoardRepository(db *sqlx.DB) BoardRepository {
	return &boardRepository{db: db}
}

// Create inserts a board. It takes an executor so the service can create the
// board and its owner participant in one transaction.
func (r *boardRepository) Create(ext sqlx.Execer, board *model.Board) error {
	query := `INSERT INTO boards (id, title, is_deleted, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := ext.Exec(query,
		board.ID,
		board.Title,
		board.IsDeleted,
		board.CreatedAt,
		board.UpdatedAt,
	)

	return err
}

func (r *boardRepository) ByID(id string) (*model.Board, error) {
	board := &model.Board{}
	query := `SELECT * FROM boards WHERE id = $1 AND ` + boardNotDeleted

	err := r.db.Get(board, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrBoardNotFound
	}

	return board, err
}

// BoardsByUser returns the non-deleted boards the user participates in.
func (r *boardRepository) BoardsByUser(userID string) ([]*model.Board, error) {
	var boards []*model.Board
	query := `SELECT boards.* FROM boards
	          JOIN board_participants ON board_participants.board_id = boards.id
	          WHERE board_participants.user_id = $1 AND ` + boardNotDeleted + `
	          ORDER BY LOWER(boards.title) ASC`

	err := r.db.Select(&boards, query, userID)
	if err != nil {
		return nil, err
	}

	return boards, nil
}

func (r *boardRepository) Update(board *model.Board) error {
	query := `UPDATE boards SET title = $1, updated_at = $2
	          WHERE id = $3 AND ` + boardNotDeleted

	result, err := r.db.Exec(query, board.Title, time.Now(), board.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrBoardNotFound
	}

	return nil
}

// MarkDeleted tombstones the board. Categories and goals are left untouched;
// there is no board-level cascade.
func (r *boardRepository) MarkDeleted(id string) error {
	query := `UPDATE boards SET is_deleted = TRUE, updated_at = $1
	          WHERE id = $2 AND ` + boardNotDeleted

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrBoardNotFound
	}

	return nil
}
