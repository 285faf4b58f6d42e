package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrDuplicateParticipant = errors.New("user already participates in board")
)

type ParticipantRepository interface {
	Create(ext sqlx.Execer, participant *model.BoardParticipant) error
	ByBoardAndUser(boardID, userID string) (*model.BoardParticipant, error)
	ByBoard(boardID string) ([]*model.BoardParticipant, error)
	UpdateRole(boardID, userID, role string) error
	Delete(boardID, userID string) error
}

type participantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// Create inserts a participant row. The executor lets board creation insert
// the board and its owner participant atomically.
func (r *participantRepository) Create(ext sqlx.Execer, participant *model.BoardParticipant) error {
	query := `INSERT INTO board_participants (id, board_id, user_id, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := ext.Exec(query,
		participant.ID,
		participant.BoardID,
		participant.UserID,
		participant.Role,
		participant.CreatedAt,
		participant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateParticipant
		}
		return err
	}

	return nil
}

func (r *participantRepository) ByBoardAndUser(boardID, userID string) (*model.BoardParticipant, error) {
	participant := &model.BoardParticipant{}
	query := `SELECT * FROM board_participants WHERE board_id = $1 AND user_id = $2`

	err := r.db.Get(participant, query, boardID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrParticipantNotFound
	}

	return participant, err
}

func (r *participantRepository) ByBoard(boardID string) ([]*model.BoardParticipant, error) {
	var participants []*model.BoardParticipant
	query := `SELECT * FROM board_participants WHERE board_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&participants, query, boardID)
	if err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) UpdateRole(boardID, userID, role string) error {
	query := `UPDATE board_participants SET role = $1, updated_at = $2
	          WHERE board_id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, role, time.Now(), boardID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (r *participantRepository) Delete(boardID, userID string) error {
	query := `DELETE FROM board_participants WHERE board_id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, boardID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
