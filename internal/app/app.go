package app

import (
	"fmt"

	"github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/db"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	UserService     *service.UserService
	BoardService    *service.BoardService
	CategoryService *service.CategoryService
	GoalService     *service.GoalService
	CommentService  *service.CommentService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	boardRepository := repository.NewBoardRepository(database)
	participantRepository := repository.NewParticipantRepository(database)
	categoryRepository := repository.NewCategoryRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	commentRepository := repository.NewCommentRepository(database)

	// Services
	accessService := service.NewAccessService(participantRepository)
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	boardService := service.NewBoardService(database, boardRepository, participantRepository, userRepository, accessService)
	categoryService := service.NewCategoryService(database, categoryRepository, goalRepository, boardRepository, accessService)
	goalService := service.NewGoalService(goalRepository, categoryRepository)
	commentService := service.NewCommentService(commentRepository, goalRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		UserService:     userService,
		BoardService:    boardService,
		CategoryService: categoryService,
		GoalService:     goalService,
		CommentService:  commentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
