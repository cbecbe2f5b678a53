package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	usuarioserrors "transcontrol/internal/inspectores/errors"
	"transcontrol/pkg/config"
	"transcontrol/pkg/model"
)

const CollectionName = "usuarios"

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error)
	Update(ctx context.Context, id string, updates bson.M) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoUsuarioRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoUsuarioRepository(cfg *config.Config) UsuarioRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoUsuarioRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoUsuarioRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoUsuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", usuarioserrors.ErrDuplicate, u.Email)
		}
		return fmt.Errorf("failed to create usuario: %w", err)
	}
	return nil
}

func (r *mongoUsuarioRepository) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	if id == "" {
		return nil, usuarioserrors.ErrInvalidID
	}

	var u model.Usuario
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", usuarioserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find usuario: %w", err)
	}
	return &u, nil
}

func (r *mongoUsuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var u model.Usuario
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", usuarioserrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}
	return &u, nil
}

func (r *mongoUsuarioRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(bson.D{{Key: "nombre", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	defer cursor.Close(ctx)

	var usuarios []*model.Usuario
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("failed to decode usuarios: %w", err)
	}
	return usuarios, nil
}

func (r *mongoUsuarioRepository) Update(ctx context.Context, id string, updates bson.M) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if id == "" {
		return usuarioserrors.ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", usuarioserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoUsuarioRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if id == "" {
		return usuarioserrors.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", usuarioserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoUsuarioRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count usuarios: %w", err)
	}
	return count, nil
}
