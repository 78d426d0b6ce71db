package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "user-directory/internal/http"
	"user-directory/internal/http/mocks"
	"user-directory/internal/model"
	"user-directory/internal/service"
)

var logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

var alice = model.UserRecord{
	ID:        "1",
	Name:      "Alice",
	Avatar:    "a.png",
	CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

func TestHandler_Users(t *testing.T) {
	bob := "Bob"

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		mockBehavior   func(us *mocks.UserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "List: Success",
			method: http.MethodGet,
			target: "/users",
			mockBehavior: func(us *mocks.UserService) {
				us.On("ListUsers", mock.Anything).Return([]model.UserRecord{alice}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"1","name":"Alice","avatar":"a.png","createdAt":"2024-01-01T00:00:00Z"}]`,
		},
		{
			name:   "List: Internal Error",
			method: http.MethodGet,
			target: "/users",
			mockBehavior: func(us *mocks.UserService) {
				us.On("ListUsers", mock.Anything).Return(nil, service.ErrInternal("failed to list users", errors.New("db")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":{"code":"INTERNAL","message":"failed to list users"}}`,
		},
		{
			name:   "Get: Success",
			method: http.MethodGet,
			target: "/users/1",
			mockBehavior: func(us *mocks.UserService) {
				us.On("GetUser", mock.Anything, "1").Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Get: Not Found",
			method: http.MethodGet,
			target: "/users/404",
			mockBehavior: func(us *mocks.UserService) {
				us.On("GetUser", mock.Anything, "404").Return(model.UserRecord{}, service.ErrNotFound("user not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":{"code":"NOT_FOUND","message":"user not found"}}`,
		},
		{
			name:           "Get: Bad ID",
			method:         http.MethodGet,
			target:         "/users/bad$id",
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Create: Success",
			method: http.MethodPost,
			target: "/users",
			body:   `{"name":"Alice","avatar":"a.png"}`,
			mockBehavior: func(us *mocks.UserService) {
				us.On("CreateUser", mock.Anything, "Alice", "a.png").Return(alice, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Create: Invalid JSON",
			method:         http.MethodPost,
			target:         "/users",
			body:           `{"name": "broken`,
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Create: Missing name",
			method:         http.MethodPost,
			target:         "/users",
			body:           `{"avatar":"a.png"}`,
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Create: Conflict",
			method: http.MethodPost,
			target: "/users",
			body:   `{"name":"Alice"}`,
			mockBehavior: func(us *mocks.UserService) {
				us.On("CreateUser", mock.Anything, "Alice", "").Return(model.UserRecord{}, service.ErrDomain("USER_EXISTS", "user id already exists"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Update: Success",
			method: http.MethodPatch,
			target: "/users/1",
			body:   `{"name":"Bob"}`,
			mockBehavior: func(us *mocks.UserService) {
				us.On("UpdateUser", mock.Anything, "1", model.UserPatch{Name: &bob}).Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update: Empty patch",
			method:         http.MethodPatch,
			target:         "/users/1",
			body:           `{}`,
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Delete: Success",
			method: http.MethodDelete,
			target: "/users/1",
			mockBehavior: func(us *mocks.UserService) {
				us.On("DeleteUser", mock.Anything, "1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"1","status":"deleted"}`,
		},
		{
			name:   "Delete: Unexpected error",
			method: http.MethodDelete,
			target: "/users/1",
			mockBehavior: func(us *mocks.UserService) {
				us.On("DeleteUser", mock.Anything, "1").Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := mocks.NewUserService(t)
			tt.mockBehavior(us)

			h := httpapi.NewHandler(us, logger, httpapi.Options{CORSOrigins: []string{"*"}})

			req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewUserService(t), logger, httpapi.Options{})

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_CORSPreflight(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewUserService(t), logger, httpapi.Options{
		CORSOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()

	h.Router().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_RateLimit(t *testing.T) {
	us := mocks.NewUserService(t)
	us.On("ListUsers", mock.Anything).Return([]model.UserRecord{}, nil).Once()

	h := httpapi.NewHandler(us, logger, httpapi.Options{RateLimitRPS: 0.001})
	router := h.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
}
