package service

import (
	"context"
	"errors"
	"io"
	"testing"

	genreserrors "github.com/LeQuyetTien/vidly/internal/genres/errors"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

const testGenreID = "64a1f0aabbccddeeff007788"

type mockGenreRepo struct {
	createFn   func(ctx context.Context, genre *model.Genre) error
	findByIDFn func(ctx context.Context, id string) (*model.Genre, error)
	findAllFn  func(ctx context.Context) ([]*model.Genre, error)
	updateFn   func(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error)
	deleteFn   func(ctx context.Context, id string) (*model.Genre, error)
}

func (m *mockGenreRepo) Create(ctx context.Context, genre *model.Genre) error {
	if m.createFn == nil {
		return errors.New("unexpected call to Create")
	}
	return m.createFn(ctx, genre)
}

func (m *mockGenreRepo) FindByID(ctx context.Context, id string) (*model.Genre, error) {
	if m.findByIDFn == nil {
		return nil, errors.New("unexpected call to FindByID")
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockGenreRepo) FindAll(ctx context.Context) ([]*model.Genre, error) {
	if m.findAllFn == nil {
		return nil, errors.New("unexpected call to FindAll")
	}
	return m.findAllFn(ctx)
}

func (m *mockGenreRepo) Update(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return m.updateFn(ctx, id, genre)
}

func (m *mockGenreRepo) Delete(ctx context.Context, id string) (*model.Genre, error) {
	if m.deleteFn == nil {
		return nil, errors.New("unexpected call to Delete")
	}
	return m.deleteFn(ctx, id)
}

func newTestService(repo *mockGenreRepo) GenreService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{Output: io.Discard}),
	}
	return NewGenreService(repo, validation.New(), cfg)
}

func TestCreateGenre(t *testing.T) {
	t.Run("persists a normalized name", func(t *testing.T) {
		var created *model.Genre
		repo := &mockGenreRepo{
			createFn: func(ctx context.Context, genre *model.Genre) error {
				genre.ID = testGenreID
				created = genre
				return nil
			},
		}
		svc := newTestService(repo)

		genre, err := svc.Create(context.Background(), &model.GenreInput{Name: "  Science   Fiction "})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if genre.ID != testGenreID {
			t.Errorf("genre ID = %q, want %q", genre.ID, testGenreID)
		}
		if created.Name != "Science Fiction" {
			t.Errorf("name = %q, want %q", created.Name, "Science Fiction")
		}
	})

	t.Run("rejects a short name", func(t *testing.T) {
		svc := newTestService(&mockGenreRepo{})

		_, err := svc.Create(context.Background(), &model.GenreInput{Name: "Pop"})
		assertAppError(t, err, apperrors.CodeValidation, 400)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		svc := newTestService(&mockGenreRepo{})

		_, err := svc.Create(context.Background(), &model.GenreInput{})
		assertAppError(t, err, apperrors.CodeValidation, 400)
	})
}

func TestGetGenre(t *testing.T) {
	t.Run("maps a malformed id to not found", func(t *testing.T) {
		repo := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return nil, genreserrors.ErrInvalidID
			},
		}
		svc := newTestService(repo)

		_, err := svc.GetByID(context.Background(), "1234")
		assertAppError(t, err, apperrors.CodeNotFound, 404)
	})

	t.Run("returns all genres", func(t *testing.T) {
		repo := &mockGenreRepo{
			findAllFn: func(ctx context.Context) ([]*model.Genre, error) {
				return []*model.Genre{
					{ID: testGenreID, Name: "Action"},
					{ID: "64a1f0aabbccddeeff009900", Name: "Comedy"},
				}, nil
			},
		}
		svc := newTestService(repo)

		genres, err := svc.GetAll(context.Background())
		if err != nil {
			t.Fatalf("GetAll returned error: %v", err)
		}
		if len(genres) != 2 {
			t.Errorf("got %d genres, want 2", len(genres))
		}
	})
}

func TestUpdateGenre(t *testing.T) {
	t.Run("maps a missing genre to not found", func(t *testing.T) {
		repo := &mockGenreRepo{
			updateFn: func(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error) {
				return nil, genreserrors.ErrNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.Update(context.Background(), testGenreID, &model.GenreInput{Name: "Romance"})
		assertAppError(t, err, apperrors.CodeNotFound, 404)
	})
}

func TestDeleteGenre(t *testing.T) {
	t.Run("returns the deleted genre", func(t *testing.T) {
		repo := &mockGenreRepo{
			deleteFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return &model.Genre{ID: id, Name: "Action"}, nil
			},
		}
		svc := newTestService(repo)

		genre, err := svc.Delete(context.Background(), testGenreID)
		if err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if genre.ID != testGenreID {
			t.Errorf("deleted ID = %q, want %q", genre.ID, testGenreID)
		}
	})
}

func assertAppError(t *testing.T, err error, code string, status int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !apperrors.IsAppError(err) {
		t.Fatalf("expected an AppError, got %T: %v", err, err)
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != code {
		t.Errorf("error code = %q, want %q", appErr.Code, code)
	}
	if appErr.HTTPStatus != status {
		t.Errorf("http status = %d, want %d", appErr.HTTPStatus, status)
	}
}
