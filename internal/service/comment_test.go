package service

import (
	"testing"

	"github.com/goalboard/goalboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreate_OpenToAnyUser(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")
	_, category := env.createBoardWithCategory(t, alice.ID, "Work")
	goal := env.createGoal(t, alice.ID, category.ID, "Ship v1")

	comment, err := env.comments.Create(bob.ID, goal.ID, "looks good")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, comment.UserID)
	assert.Equal(t, goal.ID, comment.GoalID)
}

func TestCommentCreate_RejectsMissingGoalAndBlankText(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")
	goal := env.createGoal(t, user.ID, category.ID, "Ship v1")

	_, err := env.comments.Create(user.ID, "no-such-goal", "hello")
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	_, err = env.comments.Create(user.ID, goal.ID, "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCommentList_OrderedOldestFirst(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "a@example.com")
	_, category := env.createBoardWithCategory(t, user.ID, "Work")
	goal := env.createGoal(t, user.ID, category.ID, "Ship v1")

	for _, text := range []string{"first", "second", "third"} {
		_, err := env.comments.Create(user.ID, goal.ID, text)
		require.NoError(t, err)
	}

	comments, err := env.comments.Comments(user.ID, goal.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "third", comments[2].Text)
}

func TestCommentUpdateDelete_CreatorScoped(t *testing.T) {
	env := newTestEnv(t)

	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")
	_, category := env.createBoardWithCategory(t, alice.ID, "Work")
	goal := env.createGoal(t, alice.ID, category.ID, "Ship v1")

	comment, err := env.comments.Create(alice.ID, goal.ID, "original")
	require.NoError(t, err)

	_, err = env.comments.Update(bob.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	err = env.comments.Delete(bob.ID, comment.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	updated, err := env.comments.Update(alice.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	require.NoError(t, env.comments.Delete(alice.ID, comment.ID))

	_, err = env.comments.ByID(alice.ID, comment.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}
