package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	usuarioserrors "transcontrol/internal/inspectores/errors"
	"transcontrol/internal/inspectores/validator"
	"transcontrol/pkg/config"
	apperrors "transcontrol/pkg/errors"
	"transcontrol/pkg/logger"
	"transcontrol/pkg/model"
)

type mockUsuarioRepository struct {
	createFunc      func(ctx context.Context, u *model.Usuario) error
	findByIDFunc    func(ctx context.Context, id string) (*model.Usuario, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.Usuario, error)
	findAllFunc     func(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error)
	updateFunc      func(ctx context.Context, id string, updates bson.M) error
	deleteFunc      func(ctx context.Context, id string) error
	countFunc       func(ctx context.Context) (int64, error)
}

func (m *mockUsuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	return m.createFunc(ctx, u)
}

func (m *mockUsuarioRepository) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return m.findByEmailFunc(ctx, email)
}

func (m *mockUsuarioRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error) {
	return m.findAllFunc(ctx, limit, offset)
}

func (m *mockUsuarioRepository) Update(ctx context.Context, id string, updates bson.M) error {
	return m.updateFunc(ctx, id, updates)
}

func (m *mockUsuarioRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockUsuarioRepository) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Output: io.Discard}),
	}
}

func newTestService(repo *mockUsuarioRepository) UsuarioService {
	return NewUsuarioService(repo, validator.NewUsuarioValidator(), testConfig())
}

func validUsuario() *model.Usuario {
	return &model.Usuario{
		Nombre: "Carlos Quispe",
		Email:  "CARLOS@municipio.gob.pe",
		Codigo: "INS-017",
		Rol:    "Inspector",
	}
}

func TestCrearAplicaDefaults(t *testing.T) {
	var created *model.Usuario
	repo := &mockUsuarioRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Usuario, error) {
			return nil, usuarioserrors.ErrNotFound
		},
		createFunc: func(ctx context.Context, u *model.Usuario) error {
			created = u
			return nil
		},
	}

	err := newTestService(repo).Crear(context.Background(), validUsuario())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "carlos@municipio.gob.pe", created.Email)
	assert.Equal(t, model.RolInspector, created.Rol)
	assert.Equal(t, model.EstadoUsuarioActivo, created.Estado)
	assert.False(t, created.CreadoEn.IsZero())
}

func TestCrearEmailDuplicado(t *testing.T) {
	repo := &mockUsuarioRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Usuario, error) {
			return &model.Usuario{ID: "existente"}, nil
		},
		createFunc: func(ctx context.Context, u *model.Usuario) error {
			t.Fatal("repository create must not be reached for a duplicate email")
			return nil
		},
	}

	err := newTestService(repo).Crear(context.Background(), validUsuario())

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestCrearValidacionFalla(t *testing.T) {
	repo := &mockUsuarioRepository{}

	u := validUsuario()
	u.Email = "no-es-un-email"

	err := newTestService(repo).Crear(context.Background(), u)

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestCrearCarreraDuplicado(t *testing.T) {
	repo := &mockUsuarioRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Usuario, error) {
			return nil, usuarioserrors.ErrNotFound
		},
		createFunc: func(ctx context.Context, u *model.Usuario) error {
			return usuarioserrors.ErrDuplicate
		},
	}

	err := newTestService(repo).Crear(context.Background(), validUsuario())

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestGetByID(t *testing.T) {
	repo := &mockUsuarioRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Usuario, error) {
			return &model.Usuario{ID: id, Nombre: "Rosa Mamani"}, nil
		},
	}

	u, err := newTestService(repo).GetByID(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "Rosa Mamani", u.Nombre)
}

func TestGetByIDNoExiste(t *testing.T) {
	repo := &mockUsuarioRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Usuario, error) {
			return nil, usuarioserrors.ErrNotFound
		},
	}

	_, err := newTestService(repo).GetByID(context.Background(), "no-existe")

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetAllClampaLimite(t *testing.T) {
	var gotLimit int
	repo := &mockUsuarioRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error) {
			gotLimit = limit
			return []*model.Usuario{}, nil
		},
		countFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
	}
	svc := newTestService(repo)

	_, _, err := svc.GetAll(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, gotLimit)

	_, _, err = svc.GetAll(context.Background(), 9999, 0)
	require.NoError(t, err)
	assert.Equal(t, maxLimit, gotLimit)
}

func TestGetAll(t *testing.T) {
	repo := &mockUsuarioRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error) {
			return []*model.Usuario{{ID: "u-1"}, {ID: "u-2"}}, nil
		},
		countFunc: func(ctx context.Context) (int64, error) {
			return 12, nil
		},
	}

	usuarios, total, err := newTestService(repo).GetAll(context.Background(), 2, 0)

	require.NoError(t, err)
	assert.Len(t, usuarios, 2)
	assert.Equal(t, int64(12), total)
}

func TestGetAllFallaCount(t *testing.T) {
	repo := &mockUsuarioRepository{
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Usuario, error) {
			return []*model.Usuario{}, nil
		},
		countFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("count failed")
		},
	}

	_, _, err := newTestService(repo).GetAll(context.Background(), 10, 0)

	require.Error(t, err)
}

func TestActualizar(t *testing.T) {
	var gotSet bson.M
	repo := &mockUsuarioRepository{
		updateFunc: func(ctx context.Context, id string, updates bson.M) error {
			gotSet = updates
			return nil
		},
	}

	nombre := "  Nuevo Nombre  "
	estado := "inactivo"
	err := newTestService(repo).Actualizar(context.Background(), "u-1", &model.UsuarioUpdate{
		Nombre: &nombre,
		Estado: &estado,
	})

	require.NoError(t, err)
	assert.Equal(t, "Nuevo Nombre", gotSet["nombre"])
	assert.Equal(t, "inactivo", gotSet["estado"])
	assert.NotContains(t, gotSet, "email")
}

func TestActualizarSinCampos(t *testing.T) {
	err := newTestService(&mockUsuarioRepository{}).Actualizar(context.Background(), "u-1", &model.UsuarioUpdate{})

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
}

func TestEliminar(t *testing.T) {
	var deleted string
	repo := &mockUsuarioRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	require.NoError(t, newTestService(repo).Eliminar(context.Background(), "u-1"))
	assert.Equal(t, "u-1", deleted)
}

func TestEliminarNoExiste(t *testing.T) {
	repo := &mockUsuarioRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return usuarioserrors.ErrNotFound
		},
	}

	err := newTestService(repo).Eliminar(context.Background(), "no-existe")

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
