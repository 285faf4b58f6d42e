package handler

import (
	"net/http"

	"github.com/goalboard/goalboard/internal/ctxkeys"
	"github.com/goalboard/goalboard/internal/service"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

type boardRequest struct {
	Title string `json:"title"`
}

type participantRequest struct {
	UserID string `json:"user"`
	Role   string `json:"role"`
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req boardRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	board, err := h.boardService.Create(user.ID, req.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBoardResponse(board))
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	boards, err := h.boardService.Boards(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBoardResponses(boards))
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	board, err := h.boardService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBoardResponse(board))
}

func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req boardRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	board, err := h.boardService.Update(user.ID, r.PathValue("id"), req.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBoardResponse(board))
}

func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.boardService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *BoardHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	participants, err := h.boardService.Participants(user.ID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toParticipantResponses(participants))
}

func (h *BoardHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req participantRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	participant, err := h.boardService.AddParticipant(user.ID, r.PathValue("id"), req.UserID, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toParticipantResponse(participant))
}

func (h *BoardHandler) ChangeParticipantRole(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req participantRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	err = h.boardService.ChangeParticipantRole(user.ID, r.PathValue("id"), r.PathValue("userID"), req.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *BoardHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.boardService.RemoveParticipant(user.ID, r.PathValue("id"), r.PathValue("userID"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
