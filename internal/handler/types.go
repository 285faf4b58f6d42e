package handler

import (
	"time"

	"github.com/goalboard/goalboard/internal/model"
)

// Wire shapes for the JSON API. Timestamps are RFC 3339; id, created and
// updated are always server-assigned.

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created"`
}

type boardResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type participantResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board"`
	UserID    string    `json:"user"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type goalResponse struct {
	ID          string     `json:"id"`
	CategoryID  string     `json:"category"`
	UserID      string     `json:"user"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created"`
	UpdatedAt   time.Time  `json:"updated"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goal"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toBoardResponse(b *model.Board) boardResponse {
	return boardResponse{
		ID:        b.ID,
		Title:     b.Title,
		IsDeleted: b.IsDeleted,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toParticipantResponse(p *model.BoardParticipant) participantResponse {
	return participantResponse{
		ID:        p.ID,
		BoardID:   p.BoardID,
		UserID:    p.UserID,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCategoryResponse(c *model.GoalCategory) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		UserID:    c.UserID,
		Title:     c.Title,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toGoalResponse(g *model.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID,
		CategoryID:  g.CategoryID,
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		DueDate:     g.DueDate,
		Status:      g.Status,
		Priority:    g.Priority,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toCommentResponse(c *model.GoalComment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		GoalID:    c.GoalID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toBoardResponses(boards []*model.Board) []boardResponse {
	out := make([]boardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardResponse(b))
	}
	return out
}

func toParticipantResponses(participants []*model.BoardParticipant) []participantResponse {
	out := make([]participantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, toParticipantResponse(p))
	}
	return out
}

func toCategoryResponses(categories []*model.GoalCategory) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toGoalResponses(goals []*model.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	return out
}

func toCommentResponses(comments []*model.GoalComment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}
