package validation

import (
	"testing"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want error
	}{
		{"start work", model.GoalStatusToDo, model.GoalStatusInProgress, nil},
		{"finish work", model.GoalStatusInProgress, model.GoalStatusDone, nil},
		{"stay put", model.GoalStatusDone, model.GoalStatusDone, nil},
		{"archive from anywhere", model.GoalStatusToDo, model.GoalStatusArchived, nil},
		{"archive done goal", model.GoalStatusDone, model.GoalStatusArchived, nil},
		{"skip in_progress", model.GoalStatusToDo, model.GoalStatusDone, ErrStatusSkipped},
		{"move backwards", model.GoalStatusDone, model.GoalStatusToDo, ErrStatusSkipped},
		{"reopen from done", model.GoalStatusDone, model.GoalStatusInProgress, ErrStatusSkipped},
		{"unarchive", model.GoalStatusArchived, model.GoalStatusToDo, ErrArchivedImmutable},
		{"archived stays archived", model.GoalStatusArchived, model.GoalStatusArchived, nil},
		{"unknown target", model.GoalStatusToDo, "paused", ErrUnknownStatus},
		{"unknown source", "", model.GoalStatusToDo, ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
