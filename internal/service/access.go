package service

import (
	"errors"
	"fmt"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
)

// AccessService resolves a caller's role on a board. Board-level mutations
// consult it; goal-level checks stay creator-scoped (the stored roles exist
// so board-wide sharing can be layered in later without a schema change).
type AccessService struct {
	participantRepo repository.ParticipantRepository
}

func NewAccessService(participantRepo repository.ParticipantRepository) *AccessService {
	return &AccessService{participantRepo: participantRepo}
}

// Role returns the caller's participant record on the board, or
// repository.ErrParticipantNotFound when the caller is not a member.
func (s *AccessService) Role(userID, boardID string) (*model.BoardParticipant, error) {
	return s.participantRepo.ByBoardAndUser(boardID, userID)
}

// RequireEditor allows owners and writers through and denies everyone else.
func (s *AccessService) RequireEditor(userID, boardID string) error {
	participant, err := s.participantRepo.ByBoardAndUser(boardID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("failed to resolve board role: %w", err)
	}

	if !participant.CanEdit() {
		return ErrPermissionDenied
	}

	return nil
}

// RequireOwner allows only the board owner through.
func (s *AccessService) RequireOwner(userID, boardID string) error {
	participant, err := s.participantRepo.ByBoardAndUser(boardID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("failed to resolve board role: %w", err)
	}

	if participant.Role != model.RoleOwner {
		return ErrPermissionDenied
	}

	return nil
}
