package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
	"github.com/MKhiriev/stack-underflow/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrInvalidToken:          http.StatusUnauthorized,
	service.ErrUsernameTaken:         http.StatusBadRequest,
	service.ErrHashingFailed:         http.StatusBadRequest,
	service.ErrTokenGenerationFailed: http.StatusBadRequest,
	service.ErrNotFound:              http.StatusNotFound,
	service.ErrForbidden:             http.StatusForbidden,
	service.ErrUpdateFailed:          http.StatusBadRequest,
	service.ErrDeleteFailed:          http.StatusBadRequest,
	service.ErrStorageUnavailable:    http.StatusServiceUnavailable,
}

// errorMessages is checked in order, so specific failures come before the
// kinds they wrap.
var errorMessages = []struct {
	err     error
	message string
}{
	{service.ErrQuestionNotFound, app.MsgQuestionNotFound},
	{service.ErrCommentNotFound, app.MsgCommentNotFound},
	{service.ErrCannotEditQuestion, app.MsgCannotEditQuestion},
	{service.ErrCannotDeleteQuestion, app.MsgCannotDeleteQuestion},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrInvalidToken, app.MsgInvalidToken},
	{service.ErrUsernameTaken, app.MsgUsernameTaken},
	{service.ErrHashingFailed, app.MsgHashingFailed},
	{service.ErrTokenGenerationFailed, app.MsgTokenGenerationFailed},
	{service.ErrUpdateFailed, app.MsgUpdateFailed},
	{service.ErrDeleteFailed, app.MsgDeleteFailed},
	{service.ErrStorageUnavailable, app.MsgStorageUnavailable},
	{service.ErrNotFound, app.MsgNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// failureFromError resolves the status and message for err. A non-zero
// override replaces the status of every classified failure; unclassified
// ones stay 500.
func failureFromError(err error, override int) (int, string) {
	status := statusFromError(err)
	if override != 0 && status != http.StatusInternalServerError {
		status = override
	}
	return status, messageFromError(err)
}
