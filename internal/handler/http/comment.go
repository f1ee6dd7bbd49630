package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/MKhiriev/stack-underflow/models"
	"github.com/go-chi/chi/v5"
)

// createComment does not check that the referenced question exists.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	var request models.CreateCommentRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, 0)
		return
	}

	created, err := h.services.CommentService.CreateComment(r.Context(), models.Comment{
		Content:    request.Content,
		QuestionID: request.QuestionID,
		UserID:     claims.UserID(),
		Username:   claims.Username,
	})
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgCommentCreated, created)
}

func (h *Handler) getCommentsByQuestion(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.GetCommentsByQuestion(r.Context(), chi.URLParam(r, "questionId"))
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgCommentsFetched, comments)
}

// deleteComment is reachable without a token.
func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommentService.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgCommentDeleted, nil)
}
