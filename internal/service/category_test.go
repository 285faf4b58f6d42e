package service

import (
	"errors"
	"testing"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_RequiresEditorRole(t *testing.T) {
	env := newTestEnv(t)

	owner := env.createUser(t, "owner@example.com")
	writer := env.createUser(t, "writer@example.com")
	reader := env.createUser(t, "reader@example.com")
	outsider := env.createUser(t, "outsider@example.com")

	board, err := env.boards.Create(owner.ID, "Team board")
	require.NoError(t, err)

	_, err = env.boards.AddParticipant(owner.ID, board.ID, writer.ID, model.RoleWriter)
	require.NoError(t, err)
	_, err = env.boards.AddParticipant(owner.ID, board.ID, reader.ID, model.RoleReader)
	require.NoError(t, err)

	category, err := env.category.Create(writer.ID, board.ID, "Writer's category")
	require.NoError(t, err)
	assert.Equal(t, writer.ID, category.UserID)

	_, err = env.category.Create(reader.ID, board.ID, "Reader's category")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = env.category.Create(outsider.ID, board.ID, "Outsider's category")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCategoryDelete_CascadesArchiveToGoals(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")

	first := env.createGoal(t, user.ID, category.ID, "Ship v1")
	second := env.createGoal(t, user.ID, category.ID, "Write docs")

	require.NoError(t, env.category.Delete(user.ID, category.ID))

	got, err := env.categories.ByIDUnscoped(category.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	for _, id := range []string{first.ID, second.ID} {
		goal, err := env.goalRepo.ByIDUnscoped(id)
		require.NoError(t, err)
		assert.Equal(t, model.GoalStatusArchived, goal.Status)
	}

	goals, err := env.goals.Goals(user.ID, repository.GoalFilter{})
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestCategoryDelete_OnlyVisibleToCreator(t *testing.T) {
	env := newTestEnv(t)

	creator := env.createUser(t, "creator@example.com")
	other := env.createUser(t, "other@example.com")
	_, category := env.createBoardWithCategory(t, creator.ID, "Private")

	err := env.category.Delete(other.ID, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	// Deleting twice: the second call no longer sees the row
	require.NoError(t, env.category.Delete(creator.ID, category.ID))
	err = env.category.Delete(creator.ID, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

// failingGoalRepository simulates a store failure on the cascade's second
// write.
type failingGoalRepository struct {
	repository.GoalRepository
}

func (f *failingGoalRepository) ArchiveByCategory(ext sqlx.Execer, categoryID string) error {
	return errors.New("simulated archive failure")
}

func TestCategoryDelete_RollsBackWhenArchiveFails(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")
	goal := env.createGoal(t, user.ID, category.ID, "Ship v1")

	boardRepo := repository.NewBoardRepository(env.db)
	participantRepo := repository.NewParticipantRepository(env.db)
	failing := NewCategoryService(
		env.db,
		env.categories,
		&failingGoalRepository{GoalRepository: env.goalRepo},
		boardRepo,
		NewAccessService(participantRepo),
	)

	err := failing.Delete(user.ID, category.ID)
	require.Error(t, err)

	// The tombstone write must have been rolled back with the cascade
	got, err := env.categories.ByIDUnscoped(category.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)

	kept, err := env.goalRepo.ByIDUnscoped(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GoalStatusToDo, kept.Status)
}

func TestCategoryList_ExcludesDeletedAndOrdersByTitle(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	board, err := env.boards.Create(user.ID, "Board")
	require.NoError(t, err)

	for _, title := range []string{"zeta", "Alpha", "midway"} {
		_, err := env.category.Create(user.ID, board.ID, title)
		require.NoError(t, err)
	}

	deleted, err := env.category.Create(user.ID, board.ID, "gone soon")
	require.NoError(t, err)
	require.NoError(t, env.category.Delete(user.ID, deleted.ID))

	categories, err := env.category.Categories(user.ID, "")
	require.NoError(t, err)

	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Alpha", "midway", "zeta"}, titles)
}
