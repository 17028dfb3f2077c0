package service

import (
	"context"
	"errors"

	genreserrors "github.com/LeQuyetTien/vidly/internal/genres/errors"
	"github.com/LeQuyetTien/vidly/internal/genres/repository"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/sanitizer"
	"github.com/LeQuyetTien/vidly/pkg/validation"
)

type GenreService interface {
	Create(ctx context.Context, input *model.GenreInput) (*model.Genre, error)
	GetByID(ctx context.Context, id string) (*model.Genre, error)
	GetAll(ctx context.Context) ([]*model.Genre, error)
	Update(ctx context.Context, id string, input *model.GenreInput) (*model.Genre, error)
	Delete(ctx context.Context, id string) (*model.Genre, error)
}

type genreService struct {
	repo      repository.GenreRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewGenreService(repo repository.GenreRepository, validator *validation.Validator, cfg *config.Config) GenreService {
	return &genreService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *genreService) Create(ctx context.Context, input *model.GenreInput) (*model.Genre, error) {
	input.Name = sanitizer.NormalizeName(input.Name)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	genre := &model.Genre{Name: input.Name}
	if err := s.repo.Create(ctx, genre); err != nil {
		s.cfg.Log.Error("Failed to create genre", "error", err)
		return nil, apperrors.Internal("Failed to create genre", err)
	}

	s.cfg.Log.Info("Genre created successfully", "id", genre.ID, "name", genre.Name)
	return genre, nil
}

func (s *genreService) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, genreserrors.ErrNotFound) || errors.Is(err, genreserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Genre", id)
		}
		return nil, apperrors.Internal("Failed to retrieve genre", err)
	}

	return genre, nil
}

func (s *genreService) GetAll(ctx context.Context) ([]*model.Genre, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list genres", "error", err)
		return nil, apperrors.Internal("Failed to retrieve genres", err)
	}

	return genres, nil
}

func (s *genreService) Update(ctx context.Context, id string, input *model.GenreInput) (*model.Genre, error) {
	input.Name = sanitizer.NormalizeName(input.Name)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	genre := &model.Genre{ID: id, Name: input.Name}
	if _, err := s.repo.Update(ctx, id, genre); err != nil {
		if errors.Is(err, genreserrors.ErrNotFound) || errors.Is(err, genreserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Genre", id)
		}
		return nil, apperrors.Internal("Failed to update genre", err)
	}

	s.cfg.Log.Info("Genre updated successfully", "id", id)
	return genre, nil
}

func (s *genreService) Delete(ctx context.Context, id string) (*model.Genre, error) {
	genre, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, genreserrors.ErrNotFound) || errors.Is(err, genreserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Genre", id)
		}
		return nil, apperrors.Internal("Failed to delete genre", err)
	}

	s.cfg.Log.Info("Genre deleted successfully", "id", id)
	return genre, nil
}

func (s *genreService) validate(input *model.GenreInput) error {
	if err := s.validator.Struct(input); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("Genre validation failed", "error", err)
			return apperrors.Validation(fieldErrs.First(), map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to validate genre input", err)
	}
	return nil
}
