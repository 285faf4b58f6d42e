package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/validation"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BoardService struct {
	db              *sqlx.DB
	repo            repository.BoardRepository
	participantRepo repository.ParticipantRepository
	userRepo        repository.UserRepository
	access          *AccessService
}

func NewBoardService(
	db *sqlx.DB,
	repo repository.BoardRepository,
	participantRepo repository.ParticipantRepository,
	userRepo repository.UserRepository,
	access *AccessService,
) *BoardService {
	return &BoardService{
		db:              db,
		repo:            repo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		access:          access,
	}
}

// Create inserts the board and its implicit owner participant in one
// transaction, so a board can never exist without an owner.
func (s *BoardService) Create(userID, title string) (*model.Board, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, invalid(err)
	}

	now := time.Now()
	board := &model.Board{
		ID:        uuid.New().String(),
		Title:     title,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &model.BoardParticipant{
		ID:        uuid.New().String(),
		BoardID:   board.ID,
		UserID:    userID,
		Role:      model.RoleOwner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = s.repo.Create(tx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	err = s.participantRepo.Create(tx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner participant: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit board creation: %w", err)
	}

	return board, nil
}

func (s *BoardService) Boards(userID string) ([]*model.Board, error) {
	return s.repo.BoardsByUser(userID)
}

// ByID returns the board if the caller participates in it. Non-members get
// not-found rather than a permission error so board existence never leaks.
func (s *BoardService) ByID(userID, boardID string) (*model.Board, error) {
	board, err := s.repo.ByID(boardID)
	if err != nil {
		return nil, err
	}

	_, err = s.access.Role(userID, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, repository.ErrBoardNotFound
		}
		return nil, err
	}

	return board, nil
}

func (s *BoardService) Update(userID, boardID, title string) (*model.Board, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, invalid(err)
	}

	board, err := s.ByID(userID, boardID)
	if err != nil {
		return nil, err
	}

	err = s.access.RequireOwner(userID, boardID)
	if err != nil {
		return nil, err
	}

	board.Title = title
	board.UpdatedAt = time.Now()

	err = s.repo.Update(board)
	if err != nil {
		return nil, err
	}

	return board, nil
}

// Delete tombstones the board only. Its categories and goals are not
// cascaded; they stay reachable through their own creator-scoped queries.
func (s *BoardService) Delete(userID, boardID string) error {
	_, err := s.ByID(userID, boardID)
	if err != nil {
		return err
	}

	err = s.access.RequireOwner(userID, boardID)
	if err != nil {
		return err
	}

	return s.repo.MarkDeleted(boardID)
}

func (s *BoardService) Participants(userID, boardID string) ([]*model.BoardParticipant, error) {
	_, err := s.ByID(userID, boardID)
	if err != nil {
		return nil, err
	}

	return s.participantRepo.ByBoard(boardID)
}

// AddParticipant grants a user a role on the board. Only the owner may share
// a board, and ownership itself is never granted this way.
func (s *BoardService) AddParticipant(userID, boardID, memberID, role string) (*model.BoardParticipant, error) {
	_, err := s.ByID(userID, boardID)
	if err != nil {
		return nil, err
	}

	err = s.access.RequireOwner(userID, boardID)
	if err != nil {
		return nil, err
	}

	if role != model.RoleWriter && role != model.RoleReader {
		return nil, invalid(errors.New("role must be writer or reader"))
	}

	_, err = s.userRepo.ByID(memberID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, invalid(errors.New("no such user"))
		}
		return nil, err
	}

	now := time.Now()
	participant := &model.BoardParticipant{
		ID:        uuid.New().String(),
		BoardID:   boardID,
		UserID:    memberID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.participantRepo.Create(s.db, participant)
	if err != nil {
		return nil, err
	}

	return participant, nil
}

// ChangeParticipantRole updates a collaborator's role. The owner row is
// immutable: demoting the sole owner would orphan the board.
func (s *BoardService) ChangeParticipantRole(userID, boardID, memberID, role string) error {
	_, err := s.ByID(userID, boardID)
	if err != nil {
		return err
	}

	err = s.access.RequireOwner(userID, boardID)
	if err != nil {
		return err
	}

	if role != model.RoleWriter && role != model.RoleReader {
		return invalid(errors.New("role must be writer or reader"))
	}

	member, err := s.participantRepo.ByBoardAndUser(boardID, memberID)
	if err != nil {
		return err
	}

	if member.Role == model.RoleOwner {
		return invalid(errors.New("the board owner's role cannot be changed"))
	}

	return s.participantRepo.UpdateRole(boardID, memberID, role)
}

// RemoveParticipant revokes a collaborator's access. The owner row cannot be
// removed.
func (s *BoardService) RemoveParticipant(userID, boardID, memberID string) error {
	_, err := s.ByID(userID, boardID)
	if err != nil {
		return err
	}

	err = s.access.RequireOwner(userID, boardID)
	if err != nil {
		return err
	}

	member, err := s.participantRepo.ByBoardAndUser(boardID, memberID)
	if err != nil {
		return err
	}

	if member.Role == model.RoleOwner {
		return invalid(errors.New("the board owner cannot be removed"))
	}

	return s.participantRepo.Delete(boardID, memberID)
}
