package service

import (
	"fmt"
	"time"

	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/validation"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryService struct {
	db       *sqlx.DB
	repo     repository.CategoryRepository
	goalRepo repository.GoalRepository
	boardRepo repository.BoardRepository
	access   *AccessService
}

func NewCategoryService(
	db *sqlx.DB,
	repo repository.CategoryRepository,
	goalRepo repository.GoalRepository,
	boardRepo repository.BoardRepository,
	access *AccessService,
) *CategoryService {
	return &CategoryService{
		db:       db,
		repo:     repo,
		goalRepo: goalRepo,
		boardRepo: boardRepo,
		access:   access,
	}
}

// Create adds a category to a board. The caller must hold the owner or
// writer role on the board; the category records the caller as its creator.
func (s *CategoryService) Create(userID, boardID, title string) (*model.GoalCategory, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, invalid(err)
	}

	_, err = s.boardRepo.ByID(boardID)
	if err != nil {
		return nil, err
	}

	err = s.access.RequireEditor(userID, boardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &model.GoalCategory{
		ID:        uuid.New().String(),
		BoardID:   boardID,
		UserID:    userID,
		Title:     title,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Categories(userID, search string) ([]*model.GoalCategory, error) {
	return s.repo.Categories(userID, search)
}

func (s *CategoryService) ByID(userID, categoryID string) (*model.GoalCategory, error) {
	return s.repo.ByID(userID, categoryID)
}

func (s *CategoryService) Update(userID, categoryID, title string) (*model.GoalCategory, error) {
	err := validation.ValidateTitle(title)
	if err != nil {
		return nil, invalid(err)
	}

	category, err := s.repo.ByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Title = title
	category.UpdatedAt = time.Now()

	err = s.repo.Update(category)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// Delete tombstones the category and archives every goal in it within one
// transaction. A concurrent reader sees either the pre-delete state or both
// writes, never one without the other.
func (s *CategoryService) Delete(userID, categoryID string) error {
	_, err := s.repo.ByID(userID, categoryID)
	if err != nil {
		return err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = s.repo.MarkDeleted(tx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	err = s.goalRepo.ArchiveByCategory(tx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to archive category goals: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit category deletion: %w", err)
	}

	return nil
}
