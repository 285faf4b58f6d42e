package routes

import (
	"net/http"

	"github.com/goalboard/goalboard/internal/app"
	"github.com/goalboard/goalboard/internal/handler"
	"github.com/goalboard/goalboard/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	board := handler.NewBoardHandler(app.BoardService)
	category := handler.NewCategoryHandler(app.CategoryService)
	goal := handler.NewGoalHandler(app.GoalService)
	comment := handler.NewCommentHandler(app.CommentService)

	mux := http.NewServeMux()

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth(app.Cfg.AuthRateLimit, app.Cfg.AuthRateWindow)

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/me", middleware.RequireAuth(auth.Me))

	// Boards and participants
	mux.HandleFunc("POST /boards", middleware.RequireAuth(board.Create))
	mux.HandleFunc("GET /boards", middleware.RequireAuth(board.List))
	mux.HandleFunc("GET /boards/{id}", middleware.RequireAuth(board.Get))
	mux.HandleFunc("PUT /boards/{id}", middleware.RequireAuth(board.Update))
	mux.HandleFunc("DELETE /boards/{id}", middleware.RequireAuth(board.Delete))
	mux.HandleFunc("GET /boards/{id}/participants", middleware.RequireAuth(board.ListParticipants))
	mux.HandleFunc("POST /boards/{id}/participants", middleware.RequireAuth(board.AddParticipant))
	mux.HandleFunc("PUT /boards/{id}/participants/{userID}", middleware.RequireAuth(board.ChangeParticipantRole))
	mux.HandleFunc("DELETE /boards/{id}/participants/{userID}", middleware.RequireAuth(board.RemoveParticipant))

	// Categories
	mux.HandleFunc("POST /goals/categories", middleware.RequireAuth(category.Create))
	mux.HandleFunc("GET /goals/categories", middleware.RequireAuth(category.List))
	mux.HandleFunc("GET /goals/categories/{id}", middleware.RequireAuth(category.Get))
	mux.HandleFunc("PUT /goals/categories/{id}", middleware.RequireAuth(category.Update))
	mux.HandleFunc("DELETE /goals/categories/{id}", middleware.RequireAuth(category.Delete))

	// Goals
	mux.HandleFunc("POST /goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /goals/{id}", middleware.RequireAuth(goal.Delete))

	// Comments
	mux.HandleFunc("POST /goals/comments", middleware.RequireAuth(comment.Create))
	mux.HandleFunc("GET /goals/comments", middleware.RequireAuth(comment.List))
	mux.HandleFunc("GET /goals/comments/{id}", middleware.RequireAuth(comment.Get))
	mux.HandleFunc("PUT /goals/comments/{id}", middleware.RequireAuth(comment.Update))
	mux.HandleFunc("DELETE /goals/comments/{id}", middleware.RequireAuth(comment.Delete))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)

	return handler
}
