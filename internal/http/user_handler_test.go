package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "committee-service/internal/http"
	"committee-service/internal/http/mocks"
	"committee-service/internal/model"
	"committee-service/internal/service"
)

func TestHandler_GetUser(t *testing.T) {
	alice := model.User{ID: 1, Username: "alice", DisplayName: "Alice", Email: "alice@example.org"}

	tests := []struct {
		name           string
		path           string
		mockBehavior   func(us *mocks.UserService)
		expectedStatus int
		expectedCode   int
	}{
		{
			name: "Success",
			path: "/api/user/1",
			mockBehavior: func(us *mocks.UserService) {
				us.On("GetUser", mock.Anything, int64(1)).Return(alice, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/api/user/999999",
			mockBehavior: func(us *mocks.UserService) {
				us.On("GetUser", mock.Anything, int64(999999)).Return(model.User{}, service.ErrUserNotFound())
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   4,
		},
		{
			name: "Storage failure",
			path: "/api/user/1",
			mockBehavior: func(us *mocks.UserService) {
				us.On("GetUser", mock.Anything, int64(1)).Return(model.User{}, errors.New("i/o timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   -1,
		},
		{
			name:           "Bad id",
			path:           "/api/user/abc",
			mockBehavior:   func(us *mocks.UserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			committeeSvc := new(mocks.CommitteeService)
			userSvc := new(mocks.UserService)
			tt.mockBehavior(userSvc)

			h := httpapi.NewHandler(committeeSvc, userSvc, testLogger, nil)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedStatus == http.StatusOK {
				var got model.User
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, alice, got)
			} else {
				var env envelope
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
				assert.Equal(t, tt.expectedCode, env.ErrorCode)
			}
			userSvc.AssertExpectations(t)
		})
	}
}
