package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	usuarioserrors "transcontrol/internal/inspectores/errors"
	"transcontrol/internal/inspectores/repository"
	"transcontrol/internal/inspectores/validator"
	"transcontrol/pkg/config"
	apperrors "transcontrol/pkg/errors"
	"transcontrol/pkg/model"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type UsuarioService interface {
	Crear(ctx context.Context, u *model.Usuario) error
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Usuario, int64, error)
	Actualizar(ctx context.Context, id string, updates *model.UsuarioUpdate) error
	Eliminar(ctx context.Context, id string) error
}

type usuarioService struct {
	repo      repository.UsuarioRepository
	validator *validator.UsuarioValidator
	cfg       *config.Config
}

func NewUsuarioService(
	repo repository.UsuarioRepository,
	validator *validator.UsuarioValidator,
	cfg *config.Config,
) UsuarioService {
	return &usuarioService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *usuarioService) Crear(ctx context.Context, u *model.Usuario) error {
	s.sanitize(u)
	s.applyDefaults(u)

	if err := s.validator.Validate(u); err != nil {
		s.cfg.Log.Warn("Usuario validation failed",
			"email", u.Email,
			"error", err,
		)
		return apperrors.Validation("Usuario validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if _, err := s.repo.FindByEmail(ctx, u.Email); err == nil {
		return apperrors.Conflict("Usuario with this email already exists")
	} else if !errors.Is(err, usuarioserrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to check for duplicate usuario", "email", u.Email, "error", err)
		return apperrors.Internal("Failed to create usuario", err)
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, usuarioserrors.ErrDuplicate) {
			return apperrors.Conflict("Usuario with this email already exists")
		}
		s.cfg.Log.Error("Failed to create usuario", "email", u.Email, "error", err)
		return apperrors.Internal("Failed to create usuario", err)
	}

	s.cfg.Log.Info("Usuario created successfully",
		"id", u.ID,
		"email", u.Email,
		"rol", u.Rol,
	)
	return nil
}

func (s *usuarioService) sanitize(u *model.Usuario) {
	u.Nombre = strings.TrimSpace(u.Nombre)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Telefono = strings.TrimSpace(u.Telefono)
	u.Codigo = strings.TrimSpace(u.Codigo)
	u.Rol = strings.ToLower(strings.TrimSpace(u.Rol))
	u.Estado = strings.ToLower(strings.TrimSpace(u.Estado))
}

func (s *usuarioService) applyDefaults(u *model.Usuario) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Estado == "" {
		u.Estado = model.EstadoUsuarioActivo
	}
	if u.CreadoEn.IsZero() {
		u.CreadoEn = time.Now().UTC().Truncate(time.Millisecond)
	}
}

func (s *usuarioService) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Usuario ID cannot be empty")
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, usuarioserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Usuario", id)
		}
		s.cfg.Log.Error("Failed to get usuario by ID", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve usuario", err)
	}
	return u, nil
}

func (s *usuarioService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Usuario, int64, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	var (
		usuarios []*model.Usuario
		count    int64
		errFind  error
		errCount error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		usuarios, errFind = s.repo.FindAll(ctx, limit, offset)
	}()
	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
	}()
	wg.Wait()

	if errFind != nil {
		s.cfg.Log.Error("Failed to get usuarios", "limit", limit, "offset", offset, "error", errFind)
		return nil, 0, apperrors.Internal("Failed to retrieve usuarios", errFind)
	}
	if errCount != nil {
		s.cfg.Log.Error("Failed to count usuarios", "error", errCount)
		return nil, 0, apperrors.Internal("Failed to count usuarios", errCount)
	}

	return usuarios, count, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id string, updates *model.UsuarioUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Usuario ID cannot be empty")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		return apperrors.Validation("Usuario update validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	set := updatesDocument(updates)
	if len(set) == 0 {
		return apperrors.InvalidInput("No fields to update")
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		if errors.Is(err, usuarioserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Usuario", id)
		}
		s.cfg.Log.Error("Failed to update usuario", "id", id, "error", err)
		return apperrors.Internal("Failed to update usuario", err)
	}

	s.cfg.Log.Info("Usuario updated successfully", "id", id)
	return nil
}

func updatesDocument(updates *model.UsuarioUpdate) bson.M {
	set := bson.M{}
	if updates.Nombre != nil {
		set["nombre"] = strings.TrimSpace(*updates.Nombre)
	}
	if updates.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*updates.Email))
	}
	if updates.Telefono != nil {
		set["telefono"] = strings.TrimSpace(*updates.Telefono)
	}
	if updates.Codigo != nil {
		set["codigo"] = strings.TrimSpace(*updates.Codigo)
	}
	if updates.Rol != nil {
		set["rol"] = strings.ToLower(strings.TrimSpace(*updates.Rol))
	}
	if updates.Estado != nil {
		set["estado"] = strings.ToLower(strings.TrimSpace(*updates.Estado))
	}
	return set
}

func (s *usuarioService) Eliminar(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Usuario ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, usuarioserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Usuario", id)
		}
		s.cfg.Log.Error("Failed to delete usuario", "id", id, "error", err)
		return apperrors.Internal("Failed to delete usuario", err)
	}

	s.cfg.Log.Info("Usuario deleted successfully", "id", id)
	return nil
}
