package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/internal/service/authservice"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"nickname":"alice","email":"alice@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123").
					Return(domain.Profile{ID: "a1", Nickname: "alice", Balance: 5000}, nil)
				service.EXPECT().GenerateToken("a1").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nickname taken",
			body: `{"nickname":"alice","email":"other@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "other@example.com", "password123").
					Return(domain.Profile{}, fmt.Errorf("%w: nickname taken", domain.ErrConflict))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already exists: nickname taken",
		},
		{
			name: "Validation failed",
			body: `{"nickname":"alice","email":"bad","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "bad", "password123").
					Return(domain.Profile{}, fmt.Errorf("%w: invalid email", domain.ErrInvalidArgument))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid argument: invalid email",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"nickname":"alice","email":"alice@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "alice", "alice@example.com", "password123").
					Return(domain.Profile{ID: "a1"}, nil)
				service.EXPECT().GenerateToken("a1").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			var resp dto.AuthResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, int64(5000), resp.User.Balance)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"alice@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice@example.com", "password123").
					Return(domain.Profile{ID: "a1", Nickname: "alice"}, nil)
				service.EXPECT().
					GenerateToken("a1").
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"alice","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "wrongpassword").
					Return(domain.Profile{}, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Store failure",
			body: `{"login":"alice","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "alice", "password123").
					Return(domain.Profile{}, errors.New("disk error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}
