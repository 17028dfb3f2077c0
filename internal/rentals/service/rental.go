package service

import (
	"context"
	"errors"
	"time"

	customerserrors "github.com/LeQuyetTien/vidly/internal/customers/errors"
	customersrepo "github.com/LeQuyetTien/vidly/internal/customers/repository"
	movieserrors "github.com/LeQuyetTien/vidly/internal/movies/errors"
	moviesrepo "github.com/LeQuyetTien/vidly/internal/movies/repository"
	rentalserrors "github.com/LeQuyetTien/vidly/internal/rentals/errors"
	"github.com/LeQuyetTien/vidly/internal/rentals/repository"
	"github.com/LeQuyetTien/vidly/pkg/config"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	"github.com/LeQuyetTien/vidly/pkg/events"
	"github.com/LeQuyetTien/vidly/pkg/model"
	"github.com/LeQuyetTien/vidly/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

type RentalService interface {
	Create(ctx context.Context, input *model.RentalInput) (*model.Rental, error)
	GetByID(ctx context.Context, id string) (*model.Rental, error)
	GetAll(ctx context.Context) ([]*model.Rental, error)
	Update(ctx context.Context, id string, input *model.RentalInput) (*model.Rental, error)
	Delete(ctx context.Context, id string) (*model.Rental, error)
	Return(ctx context.Context, input *model.ReturnInput) (*model.Rental, error)
}

type rentalService struct {
	repo         repository.RentalRepository
	customerRepo customersrepo.CustomerRepository
	movieRepo    moviesrepo.MovieRepository
	validator    *validation.Validator
	publisher    events.Publisher
	cfg          *config.Config
}

func NewRentalService(
	repo repository.RentalRepository,
	customerRepo customersrepo.CustomerRepository,
	movieRepo moviesrepo.MovieRepository,
	validator *validation.Validator,
	publisher events.Publisher,
	cfg *config.Config,
) RentalService {
	return &rentalService{
		repo:         repo,
		customerRepo: customerRepo,
		movieRepo:    movieRepo,
		validator:    validator,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// Create coordinates the rental transaction. Steps 1-4 are pure
// preconditions with no side effects; the only mutating step is the
// transaction, which inserts the rental and decrements the movie's stock
// as one unit. The stock guard is re-checked inside the write filter of
// the decrement, so two concurrent creations against a movie with one
// copy left end with exactly one rental.
func (s *rentalService) Create(ctx context.Context, input *model.RentalInput) (*model.Rental, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) || errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.InvalidReference("customer")
		}
		return nil, apperrors.Internal("Failed to resolve customer", err)
	}

	movie, err := s.movieRepo.FindByID(ctx, input.MovieID)
	if err != nil {
		if errors.Is(err, movieserrors.ErrNotFound) || errors.Is(err, movieserrors.ErrInvalidID) {
			return nil, apperrors.InvalidReference("movie")
		}
		return nil, apperrors.Internal("Failed to resolve movie", err)
	}

	if movie.NumberInStock == 0 {
		return nil, apperrors.OutOfStock(movie.Title)
	}

	rental := &model.Rental{
		Customer: model.CustomerSnapshot{
			ID:   customer.ID,
			Name: customer.Name,
		},
		Movie: model.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut:      input.DateOut,
		DateReturned: input.DateReturned,
		RentalFee:    input.RentalFee,
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Create(sessCtx, rental); err != nil {
			return apperrors.Transaction(err)
		}
		if err := s.movieRepo.DecrementStock(sessCtx, movie.ID); err != nil {
			if errors.Is(err, movieserrors.ErrNoStock) {
				return apperrors.OutOfStock(movie.Title)
			}
			return apperrors.Transaction(err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create rental",
			"customer_id", input.CustomerID,
			"movie_id", input.MovieID,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Rental created successfully",
		"id", rental.ID,
		"customer_id", customer.ID,
		"movie_id", movie.ID,
	)
	s.publishEvent(ctx, events.TypeRentalCreated, rental)

	return rental, nil
}

func (s *rentalService) GetByID(ctx context.Context, id string) (*model.Rental, error) {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// a malformed id addresses no document, so it is a 404 like any
		// other missing rental
		if errors.Is(err, rentalserrors.ErrNotFound) || errors.Is(err, rentalserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Rental", id)
		}
		return nil, apperrors.Internal("Failed to retrieve rental", err)
	}

	return rental, nil
}

func (s *rentalService) GetAll(ctx context.Context) ([]*model.Rental, error) {
	rentals, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rentals", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rentals", err)
	}

	return rentals, nil
}

// Update rewrites the rental's snapshot fields wholesale from freshly
// resolved customer and movie documents. It does not re-check stock and
// does not touch any movie's counter.
func (s *rentalService) Update(ctx context.Context, id string, input *model.RentalInput) (*model.Rental, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) || errors.Is(err, customerserrors.ErrInvalidID) {
			return nil, apperrors.InvalidReference("customer")
		}
		return nil, apperrors.Internal("Failed to resolve customer", err)
	}

	movie, err := s.movieRepo.FindByID(ctx, input.MovieID)
	if err != nil {
		if errors.Is(err, movieserrors.ErrNotFound) || errors.Is(err, movieserrors.ErrInvalidID) {
			return nil, apperrors.InvalidReference("movie")
		}
		return nil, apperrors.Internal("Failed to resolve movie", err)
	}

	rental := &model.Rental{
		ID: id,
		Customer: model.CustomerSnapshot{
			ID:   customer.ID,
			Name: customer.Name,
		},
		Movie: model.MovieSnapshot{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateOut:      input.DateOut,
		DateReturned: input.DateReturned,
		RentalFee:    input.RentalFee,
	}

	if _, err := s.repo.Update(ctx, id, rental); err != nil {
		if errors.Is(err, rentalserrors.ErrNotFound) || errors.Is(err, rentalserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Rental", id)
		}
		return nil, apperrors.Internal("Failed to update rental", err)
	}

	s.cfg.Log.Info("Rental updated successfully", "id", id)
	return rental, nil
}

// Delete removes the rental document only. The movie's stock is left as
// is, matching the behavior of the system this one replaces.
func (s *rentalService) Delete(ctx context.Context, id string) (*model.Rental, error) {
	rental, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, rentalserrors.ErrNotFound) || errors.Is(err, rentalserrors.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Rental", id)
		}
		return nil, apperrors.Internal("Failed to delete rental", err)
	}

	s.cfg.Log.Info("Rental deleted successfully", "id", id)
	return rental, nil
}

// Return closes the most recent rental for the customer/movie pair: it
// stamps date_returned, computes the fee from whole days out, and restores
// one unit of stock, all inside one transaction.
func (s *rentalService) Return(ctx context.Context, input *model.ReturnInput) (*model.Rental, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	rental, err := s.repo.FindByCustomerAndMovie(ctx, input.CustomerID, input.MovieID)
	if err != nil {
		if errors.Is(err, rentalserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Rental")
		}
		return nil, apperrors.Internal("Failed to resolve rental", err)
	}

	if rental.DateReturned != nil {
		return nil, apperrors.Validation("Return already processed", map[string]any{
			"rental_id": rental.ID,
		})
	}

	returnedAt := time.Now().UTC()
	daysOut := int(returnedAt.Sub(rental.DateOut).Hours() / 24)
	fee := float64(daysOut) * rental.Movie.DailyRentalRate

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.SetReturned(sessCtx, rental.ID, returnedAt, fee); err != nil {
			return apperrors.Transaction(err)
		}
		if err := s.movieRepo.IncrementStock(sessCtx, rental.Movie.ID); err != nil {
			// the movie may have been deleted while the rental was out;
			// the return still succeeds
			if !errors.Is(err, movieserrors.ErrNotFound) {
				return apperrors.Transaction(err)
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to process return", "rental_id", rental.ID, "error", err)
		return nil, err
	}

	rental.DateReturned = &returnedAt
	rental.RentalFee = &fee

	s.cfg.Log.Info("Rental returned successfully",
		"id", rental.ID,
		"rental_fee", fee,
		"days_out", daysOut,
	)
	s.publishEvent(ctx, events.TypeRentalReturned, rental)

	return rental, nil
}

// --- Helpers ---

func (s *rentalService) validate(input any) error {
	if err := s.validator.Struct(input); err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			s.cfg.Log.Warn("Rental validation failed", "error", err)
			return apperrors.Validation(fieldErrs.First(), map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to validate rental input", err)
	}
	return nil
}

func (s *rentalService) publishEvent(ctx context.Context, eventType string, rental *model.Rental) {
	var err error
	switch eventType {
	case events.TypeRentalCreated:
		err = s.publisher.RentalCreated(ctx, rental)
	case events.TypeRentalReturned:
		err = s.publisher.RentalReturned(ctx, rental)
	}
	if err != nil {
		// best effort: the transaction already committed
		s.cfg.Log.Warn("Failed to publish rental event",
			"event_type", eventType,
			"rental_id", rental.ID,
			"error", err,
		)
	}
}
