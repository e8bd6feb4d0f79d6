package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-wizard/internal/data/entity"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockIdentity struct{ mock.Mock }

func (m *mockIdentity) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func captureContextHandler(t *testing.T, gotUser **entity.User, gotToken *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			*gotUser = user
		}
		if token, ok := utils.GetTokenFromContext(r.Context()); ok {
			*gotToken = token
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ResolvesUserAndStoresToken(t *testing.T) {
	identity := &mockIdentity{}
	identity.On("CurrentUser", mock.Anything, "tok-1").
		Return(&entity.User{ID: "user42", Name: "Alice"}, nil)

	var gotUser *entity.User
	var gotToken string
	handler := Auth(identity, zap.NewNop())(captureContextHandler(t, &gotUser, &gotToken))

	req := httptest.NewRequest(http.MethodPost, "/api/wizard/sess-1/submit", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotUser)
	assert.Equal(t, "user42", gotUser.ID)
	assert.Equal(t, "tok-1", gotToken)
}

func TestAuth_RejectsMissingAndMalformedHeader(t *testing.T) {
	identity := &mockIdentity{}
	handler := Auth(identity, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	}))

	for _, header := range []string{"", "tok-1", "Basic tok-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
	identity.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestAuth_RejectedToken(t *testing.T) {
	identity := &mockIdentity{}
	identity.On("CurrentUser", mock.Anything, "stale").
		Return(nil, gateway.ErrUnauthenticated)

	handler := Auth(identity, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a rejected token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_IdentityDown(t *testing.T) {
	identity := &mockIdentity{}
	identity.On("CurrentUser", mock.Anything, "tok-1").
		Return(nil, assert.AnError)

	handler := Auth(identity, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when identity is unreachable")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
