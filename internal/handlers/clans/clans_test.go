package clans

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

func NewMock(t *testing.T) (*ClansHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, clanID, body string) *http.Request {
	req := httptest.NewRequest(method, "/api/clan", bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	if clanID != "" {
		rctx.URLParams.Add("id", clanID)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, "a1")
	return req.WithContext(ctx)
}

func TestCreateAndJoin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		handle       http.HandlerFunc
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Create",
			handle: handler.CreateClan,
			body:   `{"name":"Winners","description":"we win"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "a1", "Winners", "we win").
					Return(&domain.Clan{ID: "c1", Name: "Winners"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Create already in clan",
			handle: handler.CreateClan,
			body:   `{"name":"Winners"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "a1", "Winners", "").
					Return(nil, domain.ErrAlreadyInClan)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Join unknown clan",
			handle: handler.JoinClan,
			body:   `{"clan_id":"nope"}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), "a1", "nope").
					Return(nil, fmt.Errorf("%w: clan nope", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Join invalid body",
			handle:       handler.JoinClan,
			body:         `nope`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			tt.handle(rr, newRequest("POST", "", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListClans(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any()).Return([]domain.ClanSummary{{ID: "c1", Name: "Winners", Members: 3}}, nil)

	rr := httptest.NewRecorder()
	handler.ListClans(rr, newRequest("GET", "", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.ClansResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Clans, 1)
	assert.Equal(t, 3, resp.Clans[0].Members)
}

func TestMessages(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Read", func(t *testing.T) {
		service.EXPECT().Messages(gomock.Any(), "a1", "c1").
			Return([]domain.ClanMessage{{ID: "m1", Text: "hi"}}, nil)

		rr := httptest.NewRecorder()
		handler.GetMessages(rr, newRequest("GET", "c1", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.MessagesResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "hi", resp.Messages[0].Text)
	})

	t.Run("Read as outsider", func(t *testing.T) {
		service.EXPECT().Messages(gomock.Any(), "a1", "c2").Return(nil, domain.ErrForbidden)

		rr := httptest.NewRecorder()
		handler.GetMessages(rr, newRequest("GET", "c2", ""))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Send", func(t *testing.T) {
		service.EXPECT().SendMessage(gomock.Any(), "a1", "c1", "hello").
			Return(domain.ClanMessage{ID: "m2", Text: "hello"}, nil)

		rr := httptest.NewRecorder()
		handler.SendMessage(rr, newRequest("POST", "c1", `{"text":"hello"}`))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDonate(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Donate(gomock.Any(), "a1", "c1", int64(250)).
		Return(domain.Donation{Balance: 750, Treasury: 250}, nil)

	rr := httptest.NewRecorder()
	handler.Donate(rr, newRequest("POST", "c1", `{"amount":250}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	var donation domain.Donation
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&donation))
	assert.Equal(t, int64(250), donation.Treasury)
}

func TestAction(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Warn",
			body: `{"action":"warn","target_id":"a2","reason":"spam"}`,
			prepareMock: func() {
				service.EXPECT().Act(gomock.Any(), domain.ClanActionRequest{
					ClanID: "c1", ActorID: "a1", TargetID: "a2", Action: domain.ActionWarn, Reason: "spam",
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Transfer",
			body: `{"action":"transfer","target_id":"a3","amount":40}`,
			prepareMock: func() {
				service.EXPECT().Act(gomock.Any(), domain.ClanActionRequest{
					ClanID: "c1", ActorID: "a1", TargetID: "a3", Action: domain.ActionTransfer, Amount: 40,
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Promote by vice",
			body: `{"action":"promote","target_id":"a2"}`,
			prepareMock: func() {
				service.EXPECT().Act(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: promote requires leader", domain.ErrForbidden))
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden: promote requires leader",
		},
		{
			name:         "Unknown action",
			body:         `{"action":"disband"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Action(rr, newRequest("POST", "c1", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
