package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	boletaserrors "transcontrol/internal/boletas/errors"
	"transcontrol/internal/boletas/repository"
	"transcontrol/internal/boletas/validator"
	"transcontrol/pkg/config"
	apperrors "transcontrol/pkg/errors"
	"transcontrol/pkg/kafka"
	"transcontrol/pkg/model"
	"transcontrol/pkg/normalize"
	"transcontrol/pkg/sanitizer"
)

const (
	EventoBoletaCreada = "boleta_creada"

	sinConformidad   = "No especificado."
	sinObservaciones = "Ninguna."
)

// Publisher is the event sink for boleta lifecycle events. A nil publisher
// disables publishing.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// BoletaCreadaEvent is the payload published when a citation is created.
type BoletaCreadaEvent struct {
	BoletaID    string    `json:"boletaId"`
	InspectorID string    `json:"inspectorId"`
	Placa       string    `json:"placa"`
	Multa       float64   `json:"multa"`
	Fecha       time.Time `json:"fecha"`
}

type BoletaService interface {
	Crear(ctx context.Context, b *model.Boleta) error
	Obtener(ctx context.Context, id string) (model.BoletaResumen, error)
	Verificar(ctx context.Context, id string) (*model.Verificacion, error)
	ListarResumen(ctx context.Context, opts sanitizer.ListOptions) ([]model.BoletaResumen, error)
	ExportarCSV(ctx context.Context, opts sanitizer.ListOptions, w io.Writer) error
}

type boletaService struct {
	repo      repository.BoletaRepository
	validator *validator.BoletaValidator
	publisher Publisher
	cfg       *config.Config
}

func NewBoletaService(
	repo repository.BoletaRepository,
	validator *validator.BoletaValidator,
	publisher Publisher,
	cfg *config.Config,
) BoletaService {
	return &boletaService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *boletaService) Crear(ctx context.Context, b *model.Boleta) error {
	s.sanitize(b)
	s.applyDefaults(b)

	if err := s.validator.Validate(b); err != nil {
		s.cfg.Log.Warn("Boleta validation failed",
			"placa", b.Placa,
			"inspector_id", b.InspectorID,
			"error", err,
		)
		return apperrors.Validation("Boleta validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.cfg.Log.Error("Failed to create boleta",
			"placa", b.Placa,
			"inspector_id", b.InspectorID,
			"error", err,
		)
		return apperrors.Internal("Failed to create boleta", err)
	}

	s.publicarCreada(ctx, b)

	s.cfg.Log.Info("Boleta created successfully",
		"id", b.ID,
		"placa", b.Placa,
		"inspector_id", b.InspectorID,
	)
	return nil
}

func (s *boletaService) sanitize(b *model.Boleta) {
	b.Placa = strings.ToUpper(strings.TrimSpace(b.Placa))
	b.Empresa = strings.TrimSpace(b.Empresa)
	b.Conductor = strings.TrimSpace(b.Conductor)
	b.Licencia = strings.TrimSpace(b.Licencia)
	b.InspectorID = strings.TrimSpace(b.InspectorID)
	b.InspectorNombre = strings.TrimSpace(b.InspectorNombre)
	b.InspectorEmail = strings.TrimSpace(b.InspectorEmail)
	b.Conforme = strings.TrimSpace(b.Conforme)
	b.Estado = strings.TrimSpace(b.Estado)
	b.Motivo = strings.TrimSpace(b.Motivo)
	b.Observaciones = strings.TrimSpace(b.Observaciones)
	b.FotoURL = strings.TrimSpace(b.FotoURL)
}

func (s *boletaService) applyDefaults(b *model.Boleta) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Fecha.IsZero() {
		b.Fecha = time.Now().UTC().Truncate(time.Millisecond)
	}
	if b.Estado == "" {
		b.Estado = "activa"
	}
}

// publicarCreada is best-effort: a broken broker must not fail the write
// that already happened.
func (s *boletaService) publicarCreada(ctx context.Context, b *model.Boleta) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(b.ID).
		WithEventType(EventoBoletaCreada).
		WithSource("boletas").
		WithValue(BoletaCreadaEvent{
			BoletaID:    b.ID,
			InspectorID: b.InspectorID,
			Placa:       b.Placa,
			Multa:       b.Multa,
			Fecha:       b.Fecha,
		}).
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish boleta event",
			"event", EventoBoletaCreada,
			"boleta_id", b.ID,
			"error", err,
		)
	}
}

func (s *boletaService) Obtener(ctx context.Context, id string) (model.BoletaResumen, error) {
	doc, err := s.buscarRaw(ctx, id, "Obtener")
	if err != nil {
		return model.BoletaResumen{}, err
	}
	return sanitizer.Boleta(doc), nil
}

// Verificar builds the public verification payload for a citation, with
// the same display defaults the printed acta uses.
func (s *boletaService) Verificar(ctx context.Context, id string) (*model.Verificacion, error) {
	doc, err := s.buscarRaw(ctx, id, "Verificar")
	if err != nil {
		return nil, err
	}

	resumen := sanitizer.Boleta(doc)

	conforme := normalize.Texto(doc["conforme"])
	if conforme == "" {
		conforme = sinConformidad
	}
	observaciones := resumen.Observaciones
	if observaciones == "" {
		observaciones = sinObservaciones
	}

	return &model.Verificacion{
		ID:            resumen.ID,
		Fecha:         formatearFecha(resumen.FechaEpoch),
		FechaEpoch:    resumen.FechaEpoch,
		Placa:         resumen.Placa,
		Empresa:       resumen.Empresa,
		Inspector:     resumen.InspectorNombre,
		Motivo:        resumen.Motivo,
		Conforme:      conforme,
		Observaciones: observaciones,
	}, nil
}

func (s *boletaService) buscarRaw(ctx context.Context, id, op string) (bson.M, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Boleta ID cannot be empty")
	}

	doc, err := s.repo.FindByIDRaw(ctx, id)
	if err != nil {
		if errors.Is(err, boletaserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Boleta", id)
		}
		if errors.Is(err, boletaserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid boleta ID format")
		}
		s.cfg.Log.Error("Failed to find boleta", "operation", op, "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve boleta", err)
	}
	return doc, nil
}

func (s *boletaService) ListarResumen(ctx context.Context, opts sanitizer.ListOptions) ([]model.BoletaResumen, error) {
	docs, err := s.repo.FindAllRaw(ctx, true)
	if err != nil {
		s.cfg.Log.Error("Failed to list boletas", "error", err)
		return nil, apperrors.Internal("Failed to retrieve boletas", err)
	}
	return sanitizer.BoletaList(docs, opts), nil
}

func (s *boletaService) ExportarCSV(ctx context.Context, opts sanitizer.ListOptions, w io.Writer) error {
	items, err := s.ListarResumen(ctx, opts)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(&items, w); err != nil {
		s.cfg.Log.Error("Failed to encode boletas CSV", "error", err)
		return apperrors.Internal("Failed to export boletas", err)
	}
	return nil
}

// Lima is the municipality's civil time; fall back to UTC when tzdata is
// unavailable in the runtime image.
var limaLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		return time.UTC
	}
	return loc
}()

func formatearFecha(ms *int64) string {
	if ms == nil {
		return ""
	}
	return time.UnixMilli(*ms).In(limaLocation).Format("02/01/2006 15:04:05")
}
