package validation

import (
	"errors"

	"github.com/goalboard/goalboard/internal/model"
)

var (
	ErrUnknownStatus     = errors.New("unknown goal status")
	ErrArchivedImmutable = errors.New("archived goals cannot change status")
	ErrStatusSkipped     = errors.New("status must advance one step at a time")
)

// ValidateStatusTransition checks a goal status change against the lifecycle
// to_do -> in_progress -> done, with archived reachable from any status and
// terminal once entered. Staying on the current status is always allowed.
func ValidateStatusTransition(from, to string) error {
	if !model.ValidGoalStatus(from) || !model.ValidGoalStatus(to) {
		return ErrUnknownStatus
	}

	if from == to {
		return nil
	}

	if from == model.GoalStatusArchived {
		return ErrArchivedImmutable
	}

	if to == model.GoalStatusArchived {
		return nil
	}

	switch {
	case from == model.GoalStatusToDo && to == model.GoalStatusInProgress:
		return nil
	case from == model.GoalStatusInProgress && to == model.GoalStatusDone:
		return nil
	}

	return ErrStatusSkipped
}
