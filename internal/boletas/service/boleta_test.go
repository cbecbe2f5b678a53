package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	boletaserrors "transcontrol/internal/boletas/errors"
	"transcontrol/internal/boletas/validator"
	"transcontrol/pkg/config"
	apperrors "transcontrol/pkg/errors"
	"transcontrol/pkg/kafka"
	"transcontrol/pkg/logger"
	"transcontrol/pkg/model"
	"transcontrol/pkg/sanitizer"
)

type mockBoletaRepository struct {
	createFunc      func(ctx context.Context, b *model.Boleta) error
	findByIDRawFunc func(ctx context.Context, id string) (bson.M, error)
	findAllRawFunc  func(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error)
	countFunc       func(ctx context.Context) (int64, error)
}

func (m *mockBoletaRepository) Create(ctx context.Context, b *model.Boleta) error {
	return m.createFunc(ctx, b)
}

func (m *mockBoletaRepository) FindByIDRaw(ctx context.Context, id string) (bson.M, error) {
	return m.findByIDRawFunc(ctx, id)
}

func (m *mockBoletaRepository) FindAllRaw(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error) {
	return m.findAllRawFunc(ctx, ordenFechaDesc)
}

func (m *mockBoletaRepository) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

type mockPublisher struct {
	published []kafka.Message
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Output: io.Discard}),
	}
}

func validBoleta() *model.Boleta {
	return &model.Boleta{
		Placa:       "abc-123",
		InspectorID: "U1",
		Multa:       100,
		Conforme:    "No",
		Motivo:      "Exceso de velocidad",
	}
}

func newTestService(repo *mockBoletaRepository, pub Publisher) BoletaService {
	return NewBoletaService(repo, validator.NewBoletaValidator(), pub, testConfig())
}

func TestCrearAplicaDefaults(t *testing.T) {
	var created *model.Boleta
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error {
			created = b
			return nil
		},
	}
	pub := &mockPublisher{}
	svc := newTestService(repo, pub)

	err := svc.Crear(context.Background(), validBoleta())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ABC-123", created.Placa)
	assert.Equal(t, "activa", created.Estado)
	assert.False(t, created.Fecha.IsZero())
}

func TestCrearPublicaEvento(t *testing.T) {
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error { return nil },
	}
	pub := &mockPublisher{}
	svc := newTestService(repo, pub)

	require.NoError(t, svc.Crear(context.Background(), validBoleta()))

	require.Len(t, pub.published, 1)
	msg := pub.published[0]
	assert.Equal(t, EventoBoletaCreada, msg.Headers[kafka.HeaderEventType])
	assert.Equal(t, "boletas", msg.Headers[kafka.HeaderSource])
	assert.NotEmpty(t, msg.Headers[kafka.HeaderEventID])

	var evt BoletaCreadaEvent
	require.NoError(t, msg.DecodeValue(&evt))
	assert.Equal(t, "ABC-123", evt.Placa)
	assert.Equal(t, float64(100), evt.Multa)
}

// A broker failure after a successful insert must not fail the create.
func TestCrearPublisherFallaNoPropaga(t *testing.T) {
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error { return nil },
	}
	pub := &mockPublisher{err: errors.New("broker unreachable")}
	svc := newTestService(repo, pub)

	assert.NoError(t, svc.Crear(context.Background(), validBoleta()))
}

func TestCrearSinPublisher(t *testing.T) {
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error { return nil },
	}
	svc := newTestService(repo, nil)

	assert.NoError(t, svc.Crear(context.Background(), validBoleta()))
}

func TestCrearValidacionFalla(t *testing.T) {
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error {
			t.Fatal("repository must not be reached on validation failure")
			return nil
		},
	}
	svc := newTestService(repo, nil)

	b := validBoleta()
	b.Placa = "x"

	err := svc.Crear(context.Background(), b)

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestCrearRepositorioFalla(t *testing.T) {
	repo := &mockBoletaRepository{
		createFunc: func(ctx context.Context, b *model.Boleta) error {
			return errors.New("write concern error")
		},
	}
	svc := newTestService(repo, nil)

	err := svc.Crear(context.Background(), validBoleta())

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInternal, appErr.Code)
}

func TestObtener(t *testing.T) {
	repo := &mockBoletaRepository{
		findByIDRawFunc: func(ctx context.Context, id string) (bson.M, error) {
			return bson.M{"_id": id, "placa": "ABC-123", "nombreConductor": "Juan"}, nil
		},
	}
	svc := newTestService(repo, nil)

	got, err := svc.Obtener(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, "ABC-123", got.Placa)
	assert.Equal(t, "Juan", got.Conductor)
}

func TestObtenerNoExiste(t *testing.T) {
	repo := &mockBoletaRepository{
		findByIDRawFunc: func(ctx context.Context, id string) (bson.M, error) {
			return nil, boletaserrors.ErrNotFound
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.Obtener(context.Background(), "no-existe")

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestObtenerIDVacio(t *testing.T) {
	svc := newTestService(&mockBoletaRepository{}, nil)

	_, err := svc.Obtener(context.Background(), "")

	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
}

func TestVerificarDefaults(t *testing.T) {
	repo := &mockBoletaRepository{
		findByIDRawFunc: func(ctx context.Context, id string) (bson.M, error) {
			return bson.M{"_id": id, "placa": "ABC-123"}, nil
		},
	}
	svc := newTestService(repo, nil)

	v, err := svc.Verificar(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "No especificado.", v.Conforme)
	assert.Equal(t, "Ninguna.", v.Observaciones)
	assert.Equal(t, "", v.Fecha)
	assert.Nil(t, v.FechaEpoch)
}

func TestVerificarConDatos(t *testing.T) {
	repo := &mockBoletaRepository{
		findByIDRawFunc: func(ctx context.Context, id string) (bson.M, error) {
			return bson.M{
				"_id":           id,
				"placa":         "ABC-123",
				"empresa":       "Transportes Andinos",
				"conforme":      "Sí",
				"observaciones": "sin novedad",
				"fecha":         "2024-01-10T10:00:00Z",
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	v, err := svc.Verificar(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "Sí", v.Conforme)
	assert.Equal(t, "sin novedad", v.Observaciones)
	require.NotNil(t, v.FechaEpoch)
	assert.Equal(t, int64(1704880800000), *v.FechaEpoch)
	assert.NotEmpty(t, v.Fecha)
}

func TestListarResumen(t *testing.T) {
	repo := &mockBoletaRepository{
		findAllRawFunc: func(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error) {
			return []bson.M{
				{"_id": "b-1", "fecha": "2024-01-01T00:00:00Z"},
				{"_id": "b-2", "fecha": "2024-02-01T00:00:00Z"},
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	items, err := svc.ListarResumen(context.Background(), sanitizer.ListOptions{})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b-2", items[0].ID)
}

func TestExportarCSV(t *testing.T) {
	repo := &mockBoletaRepository{
		findAllRawFunc: func(ctx context.Context, ordenFechaDesc bool) ([]bson.M, error) {
			return []bson.M{
				{"_id": "b-1", "placa": "ABC-123", "multa": float64(100)},
			}, nil
		},
	}
	svc := newTestService(repo, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportarCSV(context.Background(), sanitizer.ListOptions{}, &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "ABC-123")
}
