package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-wizard/internal/dto/request"
	"cinema-wizard/internal/dto/response"
	"cinema-wizard/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockWizardService struct{ mock.Mock }

func (m *mockWizardService) StartSession(ctx context.Context) (*response.SessionResponse, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) SelectMovie(ctx context.Context, sessionID string, req *request.SelectMovieRequest) (*response.SessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) SelectCinema(ctx context.Context, sessionID string, req *request.SelectCinemaRequest) (*response.SessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) SelectShowtime(ctx context.Context, sessionID string, req *request.SelectShowtimeRequest) (*response.SessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) ToggleSeat(ctx context.Context, sessionID string, req *request.ToggleSeatRequest) (*response.SessionResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.SessionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) Submit(ctx context.Context, sessionID, userID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, sessionID, userID)
	if v := args.Get(0); v != nil {
		return v.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizardService) Cancel(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func newWizardRouter(svc *mockWizardService) *chi.Mux {
	h := NewWizardHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/wizard", h.StartSession)
	r.Get("/api/wizard/{id}", h.GetSession)
	r.Post("/api/wizard/{id}/movie", h.SelectMovie)
	r.Post("/api/wizard/{id}/seats/toggle", h.ToggleSeat)
	r.Delete("/api/wizard/{id}", h.Cancel)
	return r
}

func TestWizardHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown session", session.ErrSessionNotFound, http.StatusNotFound},
		{"order guard", session.ErrNoShowtimeSelected, http.StatusBadRequest},
		{"seat taken", session.ErrSeatUnavailable, http.StatusConflict},
		{"backend down", session.ErrCollaboratorUnavailable, http.StatusBadGateway},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWizardService{}
			svc.On("ToggleSeat", mock.Anything, "sess-1", mock.Anything).
				Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/wizard/sess-1/seats/toggle",
				strings.NewReader(`{"seat_id":"A1"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newWizardRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWizardHandler_StartSession(t *testing.T) {
	svc := &mockWizardService{}
	svc.On("StartSession", mock.Anything).
		Return(&response.SessionResponse{SessionID: "sess-1", Step: "idle"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/wizard", nil)
	rec := httptest.NewRecorder()

	newWizardRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sess-1"`)
}

func TestWizardHandler_SelectMovie_ValidationFailure(t *testing.T) {
	svc := &mockWizardService{}

	req := httptest.NewRequest(http.MethodPost, "/api/wizard/sess-1/movie",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newWizardRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SelectMovie", mock.Anything, mock.Anything, mock.Anything)
}

func TestWizardHandler_Cancel(t *testing.T) {
	svc := &mockWizardService{}
	svc.On("Cancel", mock.Anything, "sess-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/wizard/sess-1", nil)
	rec := httptest.NewRecorder()

	newWizardRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
