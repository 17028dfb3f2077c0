package service

import (
	"context"
	"errors"
	"io"
	"testing"

	genreserrors "github.com/LeQuyetTien/vidly/internal/genres/errors"
	movieserrors "github.com/LeQuyetTien/vidly/internal/movies/errors"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/logger"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	testGenreID = "64a1f0aabbccddeeff007788"
	testMovieID = "64a1f0aabbccddeeff003344"
)

type mockMovieRepo struct {
	createFn   func(ctx context.Context, movie *model.Movie) error
	findByIDFn func(ctx context.Context, id string) (*model.Movie, error)
	updateFn   func(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error)
	deleteFn   func(ctx context.Context, id string) (*model.Movie, error)
}

func (m *mockMovieRepo) Create(ctx context.Context, movie *model.Movie) error {
	if m.createFn == nil {
		return errors.New("unexpected call to Create")
	}
	return m.createFn(ctx, movie)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	if m.findByIDFn == nil {
		return nil, errors.New("unexpected call to FindByID")
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockMovieRepo) FindAll(ctx context.Context) ([]*model.Movie, error) {
	return nil, errors.New("unexpected call to FindAll")
}

func (m *mockMovieRepo) Update(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected call to Update")
	}
	return m.updateFn(ctx, id, movie)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id string) (*model.Movie, error) {
	if m.deleteFn == nil {
		return nil, errors.New("unexpected call to Delete")
	}
	return m.deleteFn(ctx, id)
}

func (m *mockMovieRepo) DecrementStock(ctx context.Context, id string) error {
	return errors.New("unexpected call to DecrementStock")
}

func (m *mockMovieRepo) IncrementStock(ctx context.Context, id string) error {
	return errors.New("unexpected call to IncrementStock")
}

type mockGenreRepo struct {
	findByIDFn func(ctx context.Context, id string) (*model.Genre, error)
}

func (m *mockGenreRepo) Create(ctx context.Context, genre *model.Genre) error {
	return errors.New("unexpected call to Create")
}

func (m *mockGenreRepo) FindByID(ctx context.Context, id string) (*model.Genre, error) {
	if m.findByIDFn == nil {
		return nil, errors.New("unexpected call to FindByID")
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockGenreRepo) FindAll(ctx context.Context) ([]*model.Genre, error) {
	return nil, errors.New("unexpected call to FindAll")
}

func (m *mockGenreRepo) Update(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error) {
	return nil, errors.New("unexpected call to Update")
}

func (m *mockGenreRepo) Delete(ctx context.Context, id string) (*model.Genre, error) {
	return nil, errors.New("unexpected call to Delete")
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Output: io.Discard}),
	}
}

func newTestService(movies *mockMovieRepo, genres *mockGenreRepo) MovieService {
	return NewMovieService(movies, genres, validation.New(), testConfig())
}

func validInput() *model.MovieInput {
	return &model.MovieInput{
		Title:           "Terminator",
		GenreID:         testGenreID,
		NumberInStock:   6,
		DailyRentalRate: 2.5,
	}
}

func TestCreateMovie(t *testing.T) {
	t.Run("embeds the resolved genre", func(t *testing.T) {
		movies := &mockMovieRepo{
			createFn: func(ctx context.Context, movie *model.Movie) error {
				movie.ID = testMovieID
				return nil
			},
		}
		genres := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				if id != testGenreID {
					t.Errorf("resolved wrong genre id: %s", id)
				}
				return &model.Genre{ID: testGenreID, Name: "Action"}, nil
			},
		}
		svc := newTestService(movies, genres)

		movie, err := svc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if movie.ID != testMovieID {
			t.Errorf("movie ID = %q, want %q", movie.ID, testMovieID)
		}
		if movie.Genre.ID != testGenreID || movie.Genre.Name != "Action" {
			t.Errorf("genre snapshot = %+v", movie.Genre)
		}
	})

	t.Run("normalizes the title before validating", func(t *testing.T) {
		var created *model.Movie
		movies := &mockMovieRepo{
			createFn: func(ctx context.Context, movie *model.Movie) error {
				created = movie
				return nil
			},
		}
		genres := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return &model.Genre{ID: testGenreID, Name: "Action"}, nil
			},
		}
		svc := newTestService(movies, genres)

		input := validInput()
		input.Title = "  the   terminator  "
		if _, err := svc.Create(context.Background(), input); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if created.Title != "the terminator" {
			t.Errorf("title = %q, want %q", created.Title, "the terminator")
		}
	})

	t.Run("rejects an unknown genre", func(t *testing.T) {
		genres := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return nil, genreserrors.ErrNotFound
			},
		}
		svc := newTestService(&mockMovieRepo{}, genres)

		_, err := svc.Create(context.Background(), validInput())
		assertAppError(t, err, apperrors.CodeInvalidReference, 400)
	})

	t.Run("rejects stock outside the allowed range", func(t *testing.T) {
		svc := newTestService(&mockMovieRepo{}, &mockGenreRepo{})

		input := validInput()
		input.NumberInStock = 300
		_, err := svc.Create(context.Background(), input)
		assertAppError(t, err, apperrors.CodeValidation, 400)
	})

	t.Run("rejects a short title", func(t *testing.T) {
		svc := newTestService(&mockMovieRepo{}, &mockGenreRepo{})

		input := validInput()
		input.Title = "Up"
		_, err := svc.Create(context.Background(), input)
		assertAppError(t, err, apperrors.CodeValidation, 400)
	})
}

func TestGetMovie(t *testing.T) {
	t.Run("maps a malformed id to not found", func(t *testing.T) {
		movies := &mockMovieRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Movie, error) {
				return nil, movieserrors.ErrInvalidID
			},
		}
		svc := newTestService(movies, &mockGenreRepo{})

		_, err := svc.GetByID(context.Background(), "1234")
		assertAppError(t, err, apperrors.CodeNotFound, 404)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("re-resolves the genre", func(t *testing.T) {
		var updated *model.Movie
		movies := &mockMovieRepo{
			updateFn: func(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error) {
				updated = movie
				return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
		}
		genres := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return &model.Genre{ID: testGenreID, Name: "Thriller"}, nil
			},
		}
		svc := newTestService(movies, genres)

		movie, err := svc.Update(context.Background(), testMovieID, validInput())
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if movie.Genre.Name != "Thriller" {
			t.Errorf("genre name = %q, want %q", movie.Genre.Name, "Thriller")
		}
		if updated.ID != testMovieID {
			t.Errorf("updated ID = %q, want %q", updated.ID, testMovieID)
		}
	})

	t.Run("maps a missing movie to not found", func(t *testing.T) {
		movies := &mockMovieRepo{
			updateFn: func(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error) {
				return nil, movieserrors.ErrNotFound
			},
		}
		genres := &mockGenreRepo{
			findByIDFn: func(ctx context.Context, id string) (*model.Genre, error) {
				return &model.Genre{ID: testGenreID, Name: "Action"}, nil
			},
		}
		svc := newTestService(movies, genres)

		_, err := svc.Update(context.Background(), testMovieID, validInput())
		assertAppError(t, err, apperrors.CodeNotFound, 404)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("returns the deleted movie", func(t *testing.T) {
		movies := &mockMovieRepo{
			deleteFn: func(ctx context.Context, id string) (*model.Movie, error) {
				return &model.Movie{ID: id, Title: "Terminator"}, nil
			},
		}
		svc := newTestService(movies, &mockGenreRepo{})

		movie, err := svc.Delete(context.Background(), testMovieID)
		if err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if movie.ID != testMovieID {
			t.Errorf("deleted ID = %q, want %q", movie.ID, testMovieID)
		}
	})

	t.Run("maps a missing movie to not found", func(t *testing.T) {
		movies := &mockMovieRepo{
			deleteFn: func(ctx context.Context, id string) (*model.Movie, error) {
				return nil, movieserrors.ErrNotFound
			},
		}
		svc := newTestService(movies, &mockGenreRepo{})

		_, err := svc.Delete(context.Background(), testMovieID)
		assertAppError(t, err, apperrors.CodeNotFound, 404)
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
