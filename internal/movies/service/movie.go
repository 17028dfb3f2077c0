package service

import (
	"context"
	"errors"

	genreserrors "github.com/LeQuyetTien/vidly/internal/genres/errors"
	genresrepo "github.com/LeQuyetTien/vidly/internal/genres/repository"
	movieserrors "github.com/LeQuyetTien/vidly/internal/movies/errors"
	"github.com/LeQuyetTien/vidly/internal/movies/repository"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/sanitizer"
	"github.com/LeQuyetTien/vidly/pkg/validation"
)

type MovieService interface {
	Create(ctx context.Context, input *model.MovieInput) (*model.Movie, error)
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	GetAll(ctx context.Context) ([]*model.Movie, error)
	Update(ctx context.Context, id string, input *model.MovieInput) (*model.Movie, error)
	Delete(ctx context.Context, id string) (*model.Movie, error)
}

type movieService struct {
	repo      repository.MovieRepository
	genreRepo genresrepo.GenreRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewMovieService(
	repo repository.MovieRepository,
	genreRepo genresrepo.GenreRepository,
	validator *validation.Validator,
	cfg *config.Config,
) MovieService {
	return &movieService{
		repo:      repo,
		genreRepo: genreRepo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *movieService) Create(ctx context.Context, input *model.MovieInput) (*model.Movie, error) {
	input.Title = sanitizer.NormalizeTitle(input.Title)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	genre, err := s.resolveGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:           input.Title,
		Genre:           *genre,
		NumberInStock:   input.NumberInStock,
		DailyRentalRate: input.DailyRentalRate,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		s.cfg.Log.Error("Failed to create movie", "error", err)
		return nil, apperrors.Internal("Failed to create movie", err)
	}

	s.cfg.Log.Info("Movie created successfully", "id", movie.ID, "title", movie.Title)
	return movie, nil
}

func (s *movieService) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, movieserrors.ErrNotFound) || errors.Is(err, movieserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Movie", id)
		}
		return nil, apperrors.Internal("Failed to retrieve movie", err)
	}

	return movie, nil
}

func (s *movieService) GetAll(ctx context.Context) ([]*model.Movie, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list movies", "error", err)
		return nil, apperrors.Internal("Failed to retrieve movies", err)
	}

	return movies, nil
}

func (s *movieService) Update(ctx context.Context, id string, input *model.MovieInput) (*model.Movie, error) {
	input.Title = sanitizer.NormalizeTitle(input.Title)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	genre, err := s.resolveGenre(ctx, input.GenreID)
	if err != nil {
		return nil, err
	}

	movie := &model.Movie{
		ID:              id,
		Title:           input.Title,
		Genre:           *genre,
		NumberInStock:   input.NumberInStock,
		DailyRentalRate: input.DailyRentalRate,
	}
	if _, err := s.repo.Update(ctx, id, movie); err != nil {
		if errors.Is(err, movieserrors.ErrNotFound) || errors.Is(err, movieserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Movie", id)
		}
		return nil, apperrors.Internal("Failed to update movie", err)
	}

	s.cfg.Log.Info("Movie updated successfully", "id", id)
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, id string) (*model.Movie, error) {
	movie, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, movieserrors.ErrNotFound) || errors.Is(err, movieserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Movie", id)
		}
		return nil, apperrors.Internal("Failed to delete movie", err)
	}

	s.cfg.Log.Info("Movie deleted successfully", "id", id)
	return movie, nil
}

func (s *movieService) resolveGenre(ctx context.Context, genreID string) (*model.Genre, error) {
	genre, err := s.genreRepo.FindByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, genreserrors.ErrNotFound) || errors.Is(err, genreserrors.ErrInvalidID) {
			return nil, apperrors.InvalidReference("genre")
		}
		return nil, apperrors.Internal("Failed to resolve genre", err)
	}
	return genre, nil
}

func (s *movieService) validate(input *model.MovieInput) error {
	if err := s.validator.Struct(input); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("Movie validation failed", "error", err)
			return apperrors.Validation(fieldErrs.First(), map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to validate movie input", err)
	}
	return nil
}
