package service

import (
	"context"
	"errors"
	"strings"

	userserrors "github.com/LeQuyetTien/vidly/internal/users/errors"
	"github.com/LeQuyetTien/vidly/internal/users/repository"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/sanitizer"
	"github.com/LeQuyetTien/vidly/pkg/validation"
)

type UserService interface {
	Create(ctx context.Context, input *model.UserInput) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewUserService(repo repository.UserRepository, validator *validation.Validator, cfg *config.Config) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *userService) Create(ctx context.Context, input *model.UserInput) (*model.User, error) {
	input.Name = sanitizer.NormalizeName(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate(input); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:    input.Name,
		Email:   input.Email,
		IsAdmin: input.IsAdmin,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicateEmail) {
			return nil, apperrors.Validation("User already registered", map[string]any{
				"email": input.Email,
			})
		}
		s.cfg.Log.Error("Failed to create user", "error", err)
		return nil, apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User created successfully", "id", user.ID, "email", user.Email)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("User", id)
		}
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list users", "error", err)
		return nil, apperrors.Internal("Failed to retrieve users", err)
	}

	return users, nil
}

func (s *userService) validate(input *model.UserInput) error {
	if err := s.validator.Struct(input); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("User validation failed", "error", err)
			return apperrors.Validation(fieldErrs.First(), map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to validate user input", err)
	}
	return nil
}
