package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	movieserrors "github.com/LeQuyetTien/vidly/internal/movies/errors"
	"github.com/LeQuyetTien/vidly/pkg/config"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "movies"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	FindByID(ctx context.Context, id string) (*model.Movie, error)
	FindAll(ctx context.Context) ([]*model.Movie, error)
	Update(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.Movie, error)
	DecrementStock(ctx context.Context, id string) error
	IncrementStock(ctx context.Context, id string) error
}

type mongoMovieRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoMovieRepository(cfg *config.Config) MovieRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoMovieRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoMovieRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = oid.Hex()
	}
	return nil
}

func (r *mongoMovieRepository) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", movieserrors.ErrInvalidID, id)
	}

	var movie model.Movie
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, movieserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *mongoMovieRepository) FindAll(ctx context.Context) ([]*model.Movie, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []*model.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	return movies, nil
}

func (r *mongoMovieRepository) Update(ctx context.Context, id string, movie *model.Movie) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", movieserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{
		"$set": bson.M{
			"title":             movie.Title,
			"genre":             movie.Genre,
			"number_in_stock":   movie.NumberInStock,
			"daily_rental_rate": movie.DailyRentalRate,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, movieserrors.ErrNotFound
	}

	return result, nil
}

func (r *mongoMovieRepository) Delete(ctx context.Context, id string) (*model.Movie, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", movieserrors.ErrInvalidID, id)
	}

	var movie model.Movie
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, movieserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	return &movie, nil
}

// DecrementStock takes one unit of stock, but only while stock remains.
// The guard lives in the write filter so that check and decrement are one
// atomic operation: under concurrency, at most number_in_stock callers can
// ever succeed. A miss reports ErrNoStock; inside a transaction that
// aborts the whole unit, rolling back any rental insert.
func (r *mongoMovieRepository) DecrementStock(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", movieserrors.ErrInvalidID, id)
	}

	filter := bson.M{
		"_id":             objectID,
		"number_in_stock": bson.M{"$gt": 0},
	}
	update := bson.M{"$inc": bson.M{"number_in_stock": -1}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if result.MatchedCount == 0 {
		return movieserrors.ErrNoStock
	}

	return nil
}

func (r *mongoMovieRepository) IncrementStock(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", movieserrors.ErrInvalidID, id)
	}

	update := bson.M{"$inc": bson.M{"number_in_stock": 1}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}

	if result.MatchedCount == 0 {
		return movieserrors.ErrNotFound
	}

	return nil
}
