package handler

import (
	"net/http"

	"github.com/goalboard/goalboard/internal/ctxkeys"
	"github.com/goalboard/goalboard/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type createCommentRequest struct {
	GoalID string `json:"goal"`
	Text   string `json:"text"`
}

type updateCommentRequest struct {
	Text string `json:"text"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createCommentRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	comment, err := h.commentService.Create(user.ID, req.GoalID, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	comments, err := h.commentService.Comments(user.ID, r.URL.Query().Get("goal"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCommentResponses(comments))
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	comment, err := h.commentService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateCommentRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	comment, err := h.commentService.Update(user.ID, r.PathValue("id"), req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.commentService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
