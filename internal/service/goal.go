package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrDeletedCategory = errors.New("cannot use a deleted category")
)

// CreateGoalInput carries the client-settable goal fields. Status and
// priority default to to_do and medium when empty.
type CreateGoalInput struct {
	CategoryID  string
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    string
}

type UpdateGoalInput struct {
	CategoryID  string
	Title       string
	Description *string
	DueDate     *time.Time
	Status      string
	Priority    string
}

type GoalService struct {
	repo         repository.GoalRepository
	categoryRepo repository.CategoryRepository
}

func NewGoalService(repo repository.GoalRepository, categoryRepo repository.CategoryRepository) *GoalService {
	return &GoalService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// Create adds a goal to a category. Only the category's creator may add
// goals, no matter what board role the caller holds.
func (s *GoalService) Create(userID string, in CreateGoalInput) (*model.Goal, error) {
	err := validation.ValidateTitle(in.Title)
	if err != nil {
		return nil, invalid(err)
	}

	if in.Priority == "" {
		in.Priority = model.GoalPriorityMedium
	}
	if !model.ValidGoalPriority(in.Priority) {
		return nil, invalid(fmt.Errorf("unknown priority %q", in.Priority))
	}

	category, err := s.categoryRepo.ByIDUnscoped(in.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.IsDeleted {
		return nil, invalid(ErrDeletedCategory)
	}

	if category.UserID != userID {
		return nil, ErrPermissionDenied
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      model.GoalStatusToDo,
		Priority:    in.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string, filter repository.GoalFilter) ([]*model.Goal, error) {
	return s.repo.Goals(userID, filter)
}

// Update rewrites a goal's client-settable fields. Moving a goal to another
// category requires the caller to be that category's creator, and status
// changes must follow the to_do -> in_progress -> done lifecycle.
func (s *GoalService) Update(userID, goalID string, in UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateTitle(in.Title)
	if err != nil {
		return nil, invalid(err)
	}

	if !model.ValidGoalPriority(in.Priority) {
		return nil, invalid(fmt.Errorf("unknown priority %q", in.Priority))
	}

	if in.CategoryID != goal.CategoryID {
		category, err := s.categoryRepo.ByIDUnscoped(in.CategoryID)
		if err != nil {
			return nil, err
		}

		if category.IsDeleted {
			return nil, invalid(ErrDeletedCategory)
		}

		if category.UserID != userID {
			return nil, ErrPermissionDenied
		}
	}

	err = validation.ValidateStatusTransition(goal.Status, in.Status)
	if err != nil {
		return nil, invalid(err)
	}

	goal.CategoryID = in.CategoryID
	goal.Title = in.Title
	goal.Description = in.Description
	goal.DueDate = in.DueDate
	goal.Status = in.Status
	goal.Priority = in.Priority
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete archives the goal. Archiving is terminal and idempotent: deleting
// an already archived goal succeeds without changing anything. Comments stay
// attached but become unreachable through goal listings.
func (s *GoalService) Delete(userID, goalID string) error {
	goal, err := s.repo.ByIDUnscoped(goalID)
	if err != nil {
		return err
	}

	// Creator scope: someone else's goal reads as absent.
	if goal.UserID != userID {
		return repository.ErrGoalNotFound
	}

	return s.repo.Archive(userID, goalID)
}
