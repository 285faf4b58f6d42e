package service

import (
	"testing"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalCreate_OnlyCategoryCreator(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")

	board, category := env.createBoardWithCategory(t, alice.ID, "Work")

	// Even a writer on the board may not add goals to Alice's category
	_, err := env.boards.AddParticipant(alice.ID, board.ID, bob.ID, model.RoleWriter)
	require.NoError(t, err)

	_, err = env.goals.Create(bob.ID, CreateGoalInput{
		CategoryID: category.ID,
		Title:      "Bob's goal",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	goal, err := env.goals.Create(alice.ID, CreateGoalInput{
		CategoryID: category.ID,
		Title:      "Ship v1",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, goal.UserID)
	assert.Equal(t, model.GoalStatusToDo, goal.Status)
	assert.Equal(t, model.GoalPriorityMedium, goal.Priority)
}

func TestGoalCreate_RejectsDeletedCategory(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")

	require.NoError(t, env.category.Delete(user.ID, category.ID))

	_, err := env.goals.Create(user.ID, CreateGoalInput{
		CategoryID: category.ID,
		Title:      "Too late",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestGoalDelete_ArchivesAndIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")
	goal := env.createGoal(t, user.ID, category.ID, "Ship v1")

	require.NoError(t, env.goals.Delete(user.ID, goal.ID))

	archived, err := env.goalRepo.ByIDUnscoped(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusArchived, archived.Status)

	// Second delete is a no-op, not an error
	require.NoError(t, env.goals.Delete(user.ID, goal.ID))

	archived, err = env.goalRepo.ByIDUnscoped(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusArchived, archived.Status)
}

func TestGoalDelete_OtherUsersGoalReadsAsAbsent(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")
	_, category := env.createBoardWithCategory(t, alice.ID, "Work")
	goal := env.createGoal(t, alice.ID, category.ID, "Ship v1")

	err := env.goals.Delete(bob.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
}

func TestGoalList_HidesArchivedAndDeletedCategories(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	board, keep := env.createBoardWithCategory(t, user.ID, "Keep")
	doomed, err := env.category.Create(user.ID, board.ID, "Doomed")
	require.NoError(t, err)

	visible := env.createGoal(t, user.ID, keep.ID, "Visible")
	archived := env.createGoal(t, user.ID, keep.ID, "Archived")
	env.createGoal(t, user.ID, doomed.ID, "Buried")

	require.NoError(t, env.goals.Delete(user.ID, archived.ID))
	require.NoError(t, env.category.Delete(user.ID, doomed.ID))

	goals, err := env.goals.Goals(user.ID, repository.GoalFilter{})
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, visible.ID, goals[0].ID)
}

func TestGoalUpdate_StatusLifecycle(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")
	goal := env.createGoal(t, user.ID, category.ID, "Ship v1")

	update := func(status string) error {
		_, err := env.goals.Update(user.ID, goal.ID, UpdateGoalInput{
			CategoryID: category.ID,
			Title:      goal.Title,
			Status:     status,
			Priority:   goal.Priority,
		})
		return err
	}

	// Skipping in_progress is rejected
	err := update(model.GoalStatusDone)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	require.NoError(t, update(model.GoalStatusInProgress))
	require.NoError(t, update(model.GoalStatusDone))

	got, err := env.goals.ByID(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusDone, got.Status)
}

func TestGoalUpdate_CategoryReassignmentNeedsOwnership(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")

	_, alicesCategory := env.createBoardWithCategory(t, alice.ID, "Alice's")
	_, bobsCategory := env.createBoardWithCategory(t, bob.ID, "Bob's")

	goal := env.createGoal(t, alice.ID, alicesCategory.ID, "Ship v1")

	_, err := env.goals.Update(alice.ID, goal.ID, UpdateGoalInput{
		CategoryID: bobsCategory.ID,
		Title:      goal.Title,
		Status:     goal.Status,
		Priority:   goal.Priority,
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestGoalScenario_CascadeEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	_, work := env.createBoardWithCategory(t, alice.ID, "B1")

	goal := env.createGoal(t, alice.ID, work.ID, "Ship v1")
	assert.Equal(t, model.GoalStatusToDo, goal.Status)

	require.NoError(t, env.category.Delete(alice.ID, work.ID))

	deleted, err := env.categories.ByIDUnscoped(work.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)

	shipped, err := env.goalRepo.ByIDUnscoped(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusArchived, shipped.Status)

	goals, err := env.goals.Goals(alice.ID, repository.GoalFilter{})
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalList_DueDateFilter(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"early", "middle", "late"} {
		due := base.AddDate(0, i, 0)
		_, err := env.goals.Create(user.ID, CreateGoalInput{
			CategoryID: category.ID,
			Title:      title,
			DueDate:    &due,
		})
		require.NoError(t, err)
	}

	after := base.AddDate(0, 0, 15)
	before := base.AddDate(0, 1, 15)
	goals, err := env.goals.Goals(user.ID, repository.GoalFilter{
		DueAfter:  &after,
		DueBefore: &before,
	})
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "middle", goals[0].Title)
}
