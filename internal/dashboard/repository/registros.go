package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"transcontrol/pkg/config"
)

const (
	BoletasCollection  = "boletas"
	UsuariosCollection = "usuarios"
)

// Orden is the preferred fetch ordering. The aggregation itself never
// relies on it; it only front-loads the likely-relevant documents.
type Orden string

const (
	OrdenFechaDesc Orden = "fechaDesc"
	OrdenNinguno   Orden = "ninguno"
)

// RegistroRepository supplies the raw citation and account collections the
// dashboard aggregates over. Documents are returned as-is (bson.M); all
// field interpretation happens in pkg/normalize.
type RegistroRepository interface {
	FindAllBoletas(ctx context.Context, orden Orden) ([]bson.M, error)
	FindAllUsuarios(ctx context.Context) ([]bson.M, error)
}

type mongoRegistroRepository struct {
	cfg      *config.Config
	boletas  *mongo.Collection
	usuarios *mongo.Collection
}

func NewMongoRegistroRepository(cfg *config.Config) RegistroRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoRegistroRepository{
		cfg:      cfg,
		boletas:  db.Collection(BoletasCollection),
		usuarios: db.Collection(UsuariosCollection),
	}
}

func (r *mongoRegistroRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// FindAllBoletas fetches every citation document. When the preferred
// ordering fails (heterogeneous fecha types can break index-backed sorts
// on legacy collections), it falls back to an unordered fetch instead of
// failing the whole dashboard.
func (r *mongoRegistroRepository) FindAllBoletas(ctx context.Context, orden Orden) ([]bson.M, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if orden == OrdenFechaDesc {
		docs, err := r.findAll(ctx, r.boletas, options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}}))
		if err == nil {
			return docs, nil
		}
		r.cfg.Log.Warn("Ordered boletas fetch failed, retrying unordered",
			"orden", string(orden),
			"error", err,
		)
	}

	return r.findAll(ctx, r.boletas, options.Find())
}

func (r *mongoRegistroRepository) FindAllUsuarios(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.findAll(ctx, r.usuarios, options.Find())
}

func (r *mongoRegistroRepository) findAll(ctx context.Context, coll *mongo.Collection, opts *options.FindOptions) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}
