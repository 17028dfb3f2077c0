package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	genreserrors "github.com/LeQuyetTien/vidly/internal/genres/errors"
	"github.com/LeQuyetTien/vidly/pkg/config"
	"github.com/LeQuyetTien/vidly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "genres"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	FindByID(ctx context.Context, id string) (*model.Genre, error)
	FindAll(ctx context.Context) ([]*model.Genre, error)
	Update(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.Genre, error)
}

type mongoGenreRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoGenreRepository(cfg *config.Config) GenreRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoGenreRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoGenreRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoGenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, genre)
	if err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		genre.ID = oid.Hex()
	}
	return nil
}

func (r *mongoGenreRepository) FindByID(ctx context.Context, id string) (*model.Genre, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", genreserrors.ErrInvalidID, id)
	}

	var genre model.Genre
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, genreserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find genre: %w", err)
	}

	return &genre, nil
}

func (r *mongoGenreRepository) FindAll(ctx context.Context) ([]*model.Genre, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find genres: %w", err)
	}
	defer cursor.Close(ctx)

	var genres []*model.Genre
	if err = cursor.All(ctx, &genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}

	return genres, nil
}

func (r *mongoGenreRepository) Update(ctx context.Context, id string, genre *model.Genre) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", genreserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{
		"$set": bson.M{
			"name": genre.Name,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, genreserrors.ErrNotFound
	}

	return result, nil
}

func (r *mongoGenreRepository) Delete(ctx context.Context, id string) (*model.Genre, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", genreserrors.ErrInvalidID, id)
	}

	var genre model.Genre
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, genreserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete genre: %w", err)
	}

	return &genre, nil
}
