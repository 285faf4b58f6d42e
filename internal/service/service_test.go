package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/goalboard/goalboard/internal/db"
	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack against a throwaway sqlite database
// with the real migrations applied.
type testEnv struct {
	db         *sqlx.DB
	users      repository.UserRepository
	categories repository.CategoryRepository
	goalRepo   repository.GoalRepository
	boards     *BoardService
	category   *CategoryService
	goals      *GoalService
	comments   *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "goalboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close(database))
	})

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	userRepo := repository.NewUserRepository(database)
	boardRepo := repository.NewBoardRepository(database)
	participantRepo := repository.NewParticipantRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	commentRepo := repository.NewCommentRepository(database)

	access := NewAccessService(participantRepo)

	return &testEnv{
		db:         database,
		users:      userRepo,
		categories: categoryRepo,
		goalRepo:   goalRepo,
		boards:     NewBoardService(database, boardRepo, participantRepo, userRepo, access),
		category:   NewCategoryService(database, categoryRepo, goalRepo, boardRepo, access),
		goals:      NewGoalService(goalRepo, categoryRepo),
		comments:   NewCommentService(commentRepo, goalRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *model.User {
	t.Helper()

	hash := "not-a-real-hash"
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, e.users.Create(user))
	return user
}

// createBoardWithCategory makes owner a board plus one category on it.
func (e *testEnv) createBoardWithCategory(t *testing.T, ownerID, title string) (*model.Board, *model.GoalCategory) {
	t.Helper()

	board, err := e.boards.Create(ownerID, title)
	require.NoError(t, err)

	category, err := e.category.Create(ownerID, board.ID, title+" category")
	require.NoError(t, err)

	return board, category
}

func (e *testEnv) createGoal(t *testing.T, userID, categoryID, title string) *model.Goal {
	t.Helper()

	goal, err := e.goals.Create(userID, CreateGoalInput{
		CategoryID: categoryID,
		Title:      title,
	})
	require.NoError(t, err)
	return goal
}
