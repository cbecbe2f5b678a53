package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	boletaserrors "transcontrol/internal/boletas/errors"
	"transcontrol/pkg/config"
	"transcontrol/pkg/model"
)

const CollectionName = "boletas"

// BoletaRepository persists citations. Reads return raw documents so the
// service layer can sanitize legacy shapes instead of losing fields to a
// strict decode.
type BoletaRepository interface {
	Create(ctx context.Context, b *model.Boleta) error
	FindByIDRaw(ctx context.Context, id string) (bson.M, error)
	FindAllRaw(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error)
	Count(ctx context.Context) (int64, error)
}

type mongoBoletaRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBoletaRepository(cfg *config.Config) BoletaRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoBoletaRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBoletaRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBoletaRepository) Create(ctx context.Context, b *model.Boleta) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create boleta: %w", err)
	}
	return nil
}

// FindByIDRaw matches string ids as stored by this service and, for
// documents migrated with ObjectID keys, the hex form of the id.
func (r *mongoBoletaRepository) FindByIDRaw(ctx context.Context, id string) (bson.M, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if id == "" {
		return nil, boletaserrors.ErrInvalidID
	}

	filters := []bson.M{{"_id": id}}
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		filters = append(filters, bson.M{"_id": objectID})
	}

	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"$or": filters}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", boletaserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find boleta: %w", err)
	}
	return doc, nil
}

// FindAllRaw fetches every citation document, preferring descending fecha
// and falling back to an unordered fetch when the sort cannot be honored.
func (r *mongoBoletaRepository) FindAllRaw(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if ordenFechaDesc {
		docs, err := r.findAll(ctx, options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}}))
		if err == nil {
			return docs, nil
		}
		r.cfg.Log.Warn("Ordered boletas fetch failed, retrying unordered", "error", err)
	}

	return r.findAll(ctx, options.Find())
}

func (r *mongoBoletaRepository) findAll(ctx context.Context, opts *options.FindOptions) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query boletas: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode boletas: %w", err)
	}
	return docs, nil
}

func (r *mongoBoletaRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count boletas: %w", err)
	}
	return count, nil
}
