package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LeQuyetTien/vidly/pkg/auth"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/middleware"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const (
	testSecret  = "test-secret"
	testGenreID = "64a1f0aabbccddeeff007788"
	testUserID  = "64a1f0aabbccddeeff00aabb"
)

type mockGenreService struct {
	createFn  func(ctx context.Context, input *model.GenreInput) (*model.Genre, error)
	getByIDFn func(ctx context.Context, id string) (*model.Genre, error)
	getAllFn  func(ctx context.Context) ([]*model.Genre, error)
	updateFn  func(ctx context.Context, id string, input *model.GenreInput) (*model.Genre, error)
	deleteFn  func(ctx context.Context, id string) (*model.Genre, error)
}

func (m *mockGenreService) Create(ctx context.Context, input *model.GenreInput) (*model.Genre, error) {
	return m.createFn(ctx, input)
}

func (m *mockGenreService) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockGenreService) GetAll(ctx context.Context) ([]*model.Genre, error) {
	return m.getAllFn(ctx)
}

func (m *mockGenreService) Update(ctx context.Context, id string, input *model.GenreInput) (*model.Genre, error) {
	return m.updateFn(ctx, id, input)
}

func (m *mockGenreService) Delete(ctx context.Context, id string) (*model.Genre, error) {
	return m.deleteFn(ctx, id)
}

func newTestRouter(svc *mockGenreService) *httprouter.Router {
	log := logger.New(logger.Config{Output: io.Discard})
	verifier := auth.NewVerifier(testSecret)
	router := httprouter.New()
	NewGenreHandler(svc, verifier, log).RegisterRoutes(router)
	return router
}

func signToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID:  testUserID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestGenreRouteProtection(t *testing.T) {
	svc := &mockGenreService{
		createFn: func(ctx context.Context, input *model.GenreInput) (*model.Genre, error) {
			return &model.Genre{ID: testGenreID, Name: input.Name}, nil
		},
		getAllFn: func(ctx context.Context) ([]*model.Genre, error) {
			return []*model.Genre{{ID: testGenreID, Name: "Action"}}, nil
		},
		deleteFn: func(ctx context.Context, id string) (*model.Genre, error) {
			return &model.Genre{ID: id, Name: "Action"}, nil
		},
	}
	router := newTestRouter(svc)

	t.Run("listing is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/genres", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("creation requires a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(`{"name":"Action Movies"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("creation accepts a valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(`{"name":"Action Movies"}`))
		req.Header.Set(middleware.TokenHeader, signToken(t, false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var genre model.Genre
		if err := json.Unmarshal(rec.Body.Bytes(), &genre); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if genre.ID != testGenreID {
			t.Errorf("genre ID = %q, want %q", genre.ID, testGenreID)
		}
	})

	t.Run("creation rejects a forged token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{UserID: testUserID})
		signed, err := token.SignedString([]byte("wrong-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(`{"name":"Action Movies"}`))
		req.Header.Set(middleware.TokenHeader, signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("deletion requires the admin flag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/genres/"+testGenreID, nil)
		req.Header.Set(middleware.TokenHeader, signToken(t, false))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("deletion accepts an admin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/genres/"+testGenreID, nil)
		req.Header.Set(middleware.TokenHeader, signToken(t, true))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})
}
