package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/MKhiriev/stack-underflow/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	var request models.CreateQuestionRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, 0)
		return
	}

	question := models.Question{
		Title:       request.Title,
		Description: request.Description,
		UserID:      claims.UserID(),
		Username:    claims.Username,
	}
	if request.Status != nil {
		question.Status = *request.Status
	}

	created, err := h.services.QuestionService.CreateQuestion(r.Context(), question)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgQuestionCreated, created)
}

func (h *Handler) getAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.services.QuestionService.GetAllQuestions(r.Context())
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgQuestionsFetched, questions)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.QuestionService.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgQuestionFetched, question)
}

// updateQuestion reports not-found and forbidden alike as 400.
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	var request models.UpdateQuestionRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	updated, err := h.services.QuestionService.UpdateQuestion(r.Context(), models.QuestionUpdate{
		ID:               chi.URLParam(r, "id"),
		Title:            request.Title,
		Description:      request.Description,
		Status:           request.Status,
		RequestingUserID: claims.UserID(),
	})
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgQuestionUpdated, updated)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	if err = h.services.QuestionService.DeleteQuestion(r.Context(), chi.URLParam(r, "id"), claims.UserID()); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgQuestionDeleted, nil)
}
