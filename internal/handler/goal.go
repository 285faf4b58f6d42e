package handler

import (
	"net/http"
	"time"

	"github.com/goalboard/goalboard/internal/ctxkeys"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type createGoalRequest struct {
	CategoryID  string     `json:"category"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
}

type updateGoalRequest struct {
	CategoryID  string     `json:"category"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	goal, err := h.goalService.Create(user.ID, service.CreateGoalInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	filter, err := goalFilterFromQuery(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	goals, err := h.goalService.Goals(user.ID, filter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponses(goals))
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponse(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	goal, err := h.goalService.Update(user.ID, r.PathValue("id"), service.UpdateGoalInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toGoalResponse(goal))
}

// Delete archives the goal; a repeated delete is a no-op success
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.goalService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// goalFilterFromQuery parses due_after, due_before (RFC 3339), search and
// sort query parameters.
func goalFilterFromQuery(r *http.Request) (repository.GoalFilter, error) {
	filter := repository.GoalFilter{
		Search: r.URL.Query().Get("search"),
		SortBy: r.URL.Query().Get("sort"),
	}

	if v := r.URL.Query().Get("due_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DueAfter = &t
	}

	if v := r.URL.Query().Get("due_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DueBefore = &t
	}

	return filter, nil
}
