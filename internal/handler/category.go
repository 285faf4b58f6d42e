package handler

import (
	"net/http"

	"github.com/goalboard/goalboard/internal/ctxkeys"
	"github.com/goalboard/goalboard/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

type createCategoryRequest struct {
	BoardID string `json:"board"`
	Title   string `json:"title"`
}

type updateCategoryRequest struct {
	Title string `json:"title"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createCategoryRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	category, err := h.categoryService.Create(user.ID, req.BoardID, req.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	categories, err := h.categoryService.Categories(user.ID, r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCategoryResponses(categories))
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	category, err := h.categoryService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateCategoryRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	category, err := h.categoryService.Update(user.ID, r.PathValue("id"), req.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCategoryResponse(category))
}

// Delete tombstones the category and archives its goals in one transaction
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.categoryService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
