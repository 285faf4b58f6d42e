package service

import (
	"fmt"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/validation"
	"github.com/google/uuid"
)

type CommentService struct {
	repo     repository.CommentRepository
	goalRepo repository.GoalRepository
}

func NewCommentService(repo repository.CommentRepository, goalRepo repository.GoalRepository) *CommentService {
	return &CommentService{
		repo:     repo,
		goalRepo: goalRepo,
	}
}

// Create attaches a comment to a goal. Any authenticated user may comment;
// there is no ownership check at creation.
func (s *CommentService) Create(userID, goalID, text string) (*model.GoalComment, error) {
	err := validation.ValidateCommentText(text)
	if err != nil {
		return nil, invalid(err)
	}

	_, err = s.goalRepo.ByIDUnscoped(goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &model.GoalComment{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) Comments(userID, goalID string) ([]*model.GoalComment, error) {
	return s.repo.Comments(userID, goalID)
}

func (s *CommentService) ByID(userID, commentID string) (*model.GoalComment, error) {
	return s.repo.ByID(userID, commentID)
}

// Update edits a comment. The creator-scoped lookup reads someone else's
// comment as absent rather than forbidden.
func (s *CommentService) Update(userID, commentID, text string) (*model.GoalComment, error) {
	err := validation.ValidateCommentText(text)
	if err != nil {
		return nil, invalid(err)
	}

	comment, err := s.repo.ByID(userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	comment.UpdatedAt = time.Now()

	err = s.repo.Update(comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) Delete(userID, commentID string) error {
	return s.repo.Delete(userID, commentID)
}
