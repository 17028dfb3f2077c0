package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	rentalserrors "github.com/LeQuyetTien/vidly/internal/rentals/errors"
	"github.com/LeQuyetTien/vidly/pkg/config"
	mongotx "github.com/LeQuyetTien/vidly/pkg/db/mongo"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "rentals"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	FindByID(ctx context.Context, id string) (*model.Rental, error)
	FindAll(ctx context.Context) ([]*model.Rental, error)
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*model.Rental, error)
	Update(ctx context.Context, id string, rental *model.Rental) (*mongo.UpdateResult, error)
	SetReturned(ctx context.Context, id string, returnedAt time.Time, fee float64) error
	Delete(ctx context.Context, id string) (*model.Rental, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoRentalRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoRentalRepository(cfg *config.Config) RentalRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRentalRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo, cfg.TransactionTimeout),
	}
}

// withTimeout wraps the context with a timeout unless it is already a
// transaction session context, which must not be re-wrapped.
func (r *mongoRentalRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, rental)
	if err != nil {
		return fmt.Errorf("failed to create rental: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rental.ID = oid.Hex()
	}
	return nil
}

func (r *mongoRentalRepository) FindByID(ctx context.Context, id string) (*model.Rental, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", rentalserrors.ErrInvalidID, id)
	}

	var rental model.Rental
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, rentalserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rental: %w", err)
	}

	return &rental, nil
}

func (r *mongoRentalRepository) FindAll(ctx context.Context) ([]*model.Rental, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date_out", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find rentals: %w", err)
	}
	defer cursor.Close(ctx)

	var rentals []*model.Rental
	if err = cursor.All(ctx, &rentals); err != nil {
		return nil, fmt.Errorf("failed to decode rentals: %w", err)
	}

	return rentals, nil
}

// FindByCustomerAndMovie resolves the most recent rental for the pair,
// newest date_out first.
func (r *mongoRentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"customer.id": customerID,
		"movie.id":    movieID,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "date_out", Value: -1}})

	var rental model.Rental
	err := r.collection.FindOne(ctx, filter, opts).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, rentalserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rental: %w", err)
	}

	return &rental, nil
}

// buildRentalUpdate leaves date_returned and rental_fee absent on open
// rentals. The collection validator types both fields, so a present null
// would fail document validation.
func buildRentalUpdate(rental *model.Rental) bson.M {
	set := bson.M{
		"customer": rental.Customer,
		"movie":    rental.Movie,
		"date_out": rental.DateOut,
	}
	unset := bson.M{}
	if rental.DateReturned != nil {
		set["date_returned"] = rental.DateReturned
	} else {
		unset["date_returned"] = ""
	}
	if rental.RentalFee != nil {
		set["rental_fee"] = rental.RentalFee
	} else {
		unset["rental_fee"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func (r *mongoRentalRepository) Update(ctx context.Context, id string, rental *model.Rental) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", rentalserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := buildRentalUpdate(rental)

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update rental: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, rentalserrors.ErrNotFound
	}

	return result, nil
}

func (r *mongoRentalRepository) SetReturned(ctx context.Context, id string, returnedAt time.Time, fee float64) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", rentalserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"date_returned": returnedAt,
			"rental_fee":    fee,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to close rental: %w", err)
	}

	if result.MatchedCount == 0 {
		return rentalserrors.ErrNotFound
	}

	return nil
}

func (r *mongoRentalRepository) Delete(ctx context.Context, id string) (*model.Rental, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", rentalserrors.ErrInvalidID, id)
	}

	var rental model.Rental
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&rental)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, rentalserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete rental: %w", err)
	}

	return &rental, nil
}

func (r *mongoRentalRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
