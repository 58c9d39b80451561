package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kettlewell/stranded/internal/domain"
)

// MockPlayerService mocks the player.Service interface
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) RegisterPlayer(ctx context.Context, username string, policy domain.ResourcePolicy) (*domain.Player, error) {
	args := m.Called(ctx, username, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Grant(ctx context.Context, playerID string, food, water, gold int) (*domain.Player, error) {
	args := m.Called(ctx, playerID, food, water, gold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func newPlayerRouter(svc *MockPlayerService) http.Handler {
	h := NewPlayerHandler(svc)
	r := chi.NewRouter()
	r.Post("/player/register", h.Register)
	r.Get("/player/{id}", h.Get)
	r.Get("/player", h.GetByUsername)
	r.Post("/player/grant", h.Grant)
	return r
}

func TestPlayerHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("RegisterPlayer", mock.Anything, "castaway", domain.ResourcePolicy("")).
			Return(&domain.Player{ID: "player-1", Username: "castaway"}, nil)

		body := bytes.NewBufferString(`{"username":"castaway"}`)
		req := httptest.NewRequest("POST", "/player/register", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"castaway"`)
		svc.AssertExpectations(t)
	})

	t.Run("missing username", func(t *testing.T) {
		svc := &MockPlayerService{}

		body := bytes.NewBufferString(`{}`)
		req := httptest.NewRequest("POST", "/player/register", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required")
		svc.AssertNotCalled(t, "RegisterPlayer")
	})

	t.Run("invalid policy", func(t *testing.T) {
		svc := &MockPlayerService{}

		body := bytes.NewBufferString(`{"username":"castaway","policy":"saturate"}`)
		req := httptest.NewRequest("POST", "/player/register", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid resource policy")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &MockPlayerService{}

		body := bytes.NewBufferString(`{"username":`)
		req := httptest.NewRequest("POST", "/player/register", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("RegisterPlayer", mock.Anything, "castaway", domain.ResourcePolicy("")).
			Return(nil, domain.ErrDuplicateUsername)

		body := bytes.NewBufferString(`{"username":"castaway"}`)
		req := httptest.NewRequest("POST", "/player/register", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUsernameTakenError)
	})
}

func TestPlayerHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("GetPlayer", mock.Anything, "player-1").
			Return(&domain.Player{ID: "player-1", Username: "castaway", Water: 5}, nil)

		req := httptest.NewRequest("GET", "/player/player-1", nil)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"water":5`)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("GetPlayer", mock.Anything, "missing").
			Return(nil, domain.ErrPlayerNotFound)

		req := httptest.NewRequest("GET", "/player/missing", nil)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgPlayerNotFoundError)
	})
}

func TestPlayerHandler_GetByUsername(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("GetPlayerByUsername", mock.Anything, "castaway").
			Return(&domain.Player{ID: "player-1", Username: "castaway"}, nil)

		req := httptest.NewRequest("GET", "/player?username=castaway", nil)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing query parameter", func(t *testing.T) {
		svc := &MockPlayerService{}

		req := httptest.NewRequest("GET", "/player", nil)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetPlayerByUsername")
	})
}

func TestPlayerHandler_Grant(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockPlayerService{}
		svc.On("Grant", mock.Anything, "player-1", 2, 0, -1).
			Return(&domain.Player{ID: "player-1", Food: 2, Gold: -1}, nil)

		body := bytes.NewBufferString(`{"player_id":"player-1","food":2,"gold":-1}`)
		req := httptest.NewRequest("POST", "/player/grant", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"food":2`)
		svc.AssertExpectations(t)
	})

	t.Run("missing player id", func(t *testing.T) {
		svc := &MockPlayerService{}

		body := bytes.NewBufferString(`{"food":2}`)
		req := httptest.NewRequest("POST", "/player/grant", body)
		w := httptest.NewRecorder()

		newPlayerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Grant")
	})
}
