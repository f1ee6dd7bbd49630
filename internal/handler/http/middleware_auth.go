package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// On success the verified claims are stored in the request context (see
// [utils.WithClaims]) so handlers can read the caller id and username
// without re-parsing the token. Every rejection is a 401 with the same
// "invalid token" message, except for a missing or malformed header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			writeFailure(w, r, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			writeFailure(w, r, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			writeFailure(w, r, http.StatusUnauthorized, app.MsgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}
