package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/service"
	"github.com/MKhiriev/stack-underflow/models"
	"github.com/stretchr/testify/require"
)

// ---- Mocks ----

type mockAuthSvc struct {
	registerFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn    func(ctx context.Context, creds models.Credentials) (models.Token, models.User, error)
	parseFn    func(ctx context.Context, token string) (models.Claims, error)
}

func (m *mockAuthSvc) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, creds)
	}
	return models.User{ID: "user-1", Username: creds.Username}, nil
}

func (m *mockAuthSvc) Login(ctx context.Context, creds models.Credentials) (models.Token, models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return models.Token{SignedString: "signed"}, models.User{ID: "user-1", Username: creds.Username}, nil
}

func (m *mockAuthSvc) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, token)
	}
	if token != "good-token" {
		return models.Claims{}, service.ErrInvalidToken
	}
	return testClaims("alice-id", "alice"), nil
}

type mockQuestionSvc struct {
	createFn func(ctx context.Context, q models.Question) (models.Question, error)
	listFn   func(ctx context.Context) ([]models.Question, error)
	getFn    func(ctx context.Context, id string) (models.Question, error)
	updateFn func(ctx context.Context, u models.QuestionUpdate) (models.Question, error)
	deleteFn func(ctx context.Context, id, userID string) error
}

func (m *mockQuestionSvc) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	if m.createFn != nil {
		return m.createFn(ctx, q)
	}
	return q, nil
}

func (m *mockQuestionSvc) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Question{}, nil
}

func (m *mockQuestionSvc) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Question{ID: id}, nil
}

func (m *mockQuestionSvc) UpdateQuestion(ctx context.Context, u models.QuestionUpdate) (models.Question, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return models.Question{ID: u.ID, Title: u.Title, Status: u.Status}, nil
}

func (m *mockQuestionSvc) DeleteQuestion(ctx context.Context, id, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

type mockCommentSvc struct {
	createFn func(ctx context.Context, c models.Comment) (models.Comment, error)
	listFn   func(ctx context.Context, questionID string) ([]models.Comment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCommentSvc) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return c, nil
}

func (m *mockCommentSvc) GetCommentsByQuestion(ctx context.Context, questionID string) ([]models.Comment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, questionID)
	}
	return []models.Comment{}, nil
}

func (m *mockCommentSvc) DeleteComment(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAppInfoSvc struct {
	healthErr error
}

func (m *mockAppInfoSvc) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("test-version", "", "")
}

func (m *mockAppInfoSvc) CheckHealth(_ context.Context) error {
	return m.healthErr
}

// ---- Helpers ----

func testClaims(userID, username string) models.Claims {
	claims := models.Claims{Username: username}
	claims.Subject = userID
	return claims
}

// newTestHandler creates a Handler whose unset services fall back to
// permissive mocks.
func newTestHandler(services ...*service.Services) *Handler {
	svc := &service.Services{}
	if len(services) > 0 {
		svc = services[0]
	}
	if svc.AuthService == nil {
		svc.AuthService = &mockAuthSvc{}
	}
	if svc.QuestionService == nil {
		svc.QuestionService = &mockQuestionSvc{}
	}
	if svc.CommentService == nil {
		svc.CommentService = &mockCommentSvc{}
	}
	if svc.AppInfoService == nil {
		svc.AppInfoService = &mockAppInfoSvc{}
	}
	return NewHandler(svc, config.Server{}, logger.Nop())
}

// serve sends a request through the full router.
func serve(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// envelope mirrors models.Envelope with the payload kept raw.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}
