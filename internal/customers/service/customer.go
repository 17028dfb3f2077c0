package service

import (
	"context"
	"errors"

	customerserrors "github.com/LeQuyetTien/vidly/internal/customers/errors"
	"github.com/LeQuyetTien/vidly/internal/customers/repository"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/sanitizer"
	"github.com/LeQuyetTien/vidly/pkg/validation"
)

type CustomerService interface {
	Create(ctx context.Context, input *model.CustomerInput) (*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetAll(ctx context.Context) ([]*model.Customer, error)
	Update(ctx context.Context, id string, input *model.CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

type customerService struct {
	repo      repository.CustomerRepository
	validator *validation.Validator
	cfg       *config.Config
}

func NewCustomerService(repo repository.CustomerRepository, validator *validation.Validator, cfg *config.Config) CustomerService {
	return &customerService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *customerService) Create(ctx context.Context, input *model.CustomerInput) (*model.Customer, error) {
	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		Name:   input.Name,
		Phone:  input.Phone,
		IsGold: input.IsGold,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		s.cfg.Log.Error("Failed to create customer", "error", err)
		return nil, apperrors.Internal("Failed to create customer", err)
	}

	s.cfg.Log.Info("Customer created successfully", "id", customer.ID, "name", customer.Name)
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) || errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Customer", id)
		}
		return nil, apperrors.Internal("Failed to retrieve customer", err)
	}

	return customer, nil
}

func (s *customerService) GetAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list customers", "error", err)
		return nil, apperrors.Internal("Failed to retrieve customers", err)
	}

	return customers, nil
}

func (s *customerService) Update(ctx context.Context, id string, input *model.CustomerInput) (*model.Customer, error) {
	s.sanitize(input)
	if err := s.validate(input); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:     id,
		Name:   input.Name,
		Phone:  input.Phone,
		IsGold: input.IsGold,
	}
	if _, err := s.repo.Update(ctx, id, customer); err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) || errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Customer", id)
		}
		return nil, apperrors.Internal("Failed to update customer", err)
	}

	s.cfg.Log.Info("Customer updated successfully", "id", id)
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) || errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Customer", id)
		}
		return nil, apperrors.Internal("Failed to delete customer", err)
	}

	s.cfg.Log.Info("Customer deleted successfully", "id", id)
	return customer, nil
}

func (s *customerService) sanitize(input *model.CustomerInput) {
	input.Name = sanitizer.NormalizeName(input.Name)
	input.Phone = sanitizer.NormalizePhone(input.Phone)
}

func (s *customerService) validate(input *model.CustomerInput) error {
	if err := s.validator.Struct(input); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("Customer validation failed", "error", err)
			return apperrors.Validation(fieldErrs.First(), map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to validate customer input", err)
	}
	return nil
}
