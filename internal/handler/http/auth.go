package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/models"
)

// register answers 201 with the created user or 400 on any classified failure.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user registered")
	writeSuccess(w, r, http.StatusCreated, app.MsgRegistrationSuccessful, user)
}

// login answers 200 with a bearer token or 401 on any classified failure.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err, http.StatusUnauthorized)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err, http.StatusUnauthorized)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, models.LoginResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
		User:        user,
	})
}

// me describes the identity carried by the verified token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgTokenIsValid, models.MeResponse{
		UserID:    claims.UserID(),
		Username:  claims.Username,
		ExpiresAt: claims.Expiry(),
	})
}
