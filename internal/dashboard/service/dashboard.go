package service

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"transcontrol/internal/dashboard/repository"
	"transcontrol/pkg/config"
	apperrors "transcontrol/pkg/errors"
	"transcontrol/pkg/model"
	"transcontrol/pkg/normalize"
)

// VentanaRecientes is the size of the recent-activity window.
const VentanaRecientes = 5

type DashboardService interface {
	Resumen(ctx context.Context) (*model.DashboardSnapshot, error)
}

type dashboardService struct {
	repo repository.RegistroRepository
	cfg  *config.Config
}

func NewDashboardService(repo repository.RegistroRepository, cfg *config.Config) DashboardService {
	return &dashboardService{repo: repo, cfg: cfg}
}

// Resumen loads both collections concurrently and aggregates them. Either
// fetch failing fails the whole snapshot; a partially-populated dashboard
// is never returned.
func (s *dashboardService) Resumen(ctx context.Context) (*model.DashboardSnapshot, error) {
	var (
		boletas  []bson.M
		usuarios []bson.M
		errB     error
		errU     error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		boletas, errB = s.repo.FindAllBoletas(ctx, repository.OrdenFechaDesc)
	}()
	go func() {
		defer wg.Done()
		usuarios, errU = s.repo.FindAllUsuarios(ctx)
	}()
	wg.Wait()

	if errB != nil {
		s.cfg.Log.Error("Failed to load boletas for dashboard", "error", errB)
		return nil, apperrors.Internal("Failed to load citation records", errB)
	}
	if errU != nil {
		s.cfg.Log.Error("Failed to load usuarios for dashboard", "error", errU)
		return nil, apperrors.Internal("Failed to load account records", errU)
	}

	return Compute(boletas, usuarios), nil
}

// Compute aggregates the already-loaded collections into a snapshot. It is
// pure and deterministic, performs no I/O, and does not assume any input
// ordering: the recent window and per-inspector last-activity are derived
// by sorting and max-scanning, never by trusting fetch order.
func Compute(boletas, usuarios []bson.M) *model.DashboardSnapshot {
	snap := &model.DashboardSnapshot{
		Inspectores:      []model.InspectorResumen{},
		BoletasRecientes: []model.BoletaReciente{},
	}

	snap.TotalBoletas = len(boletas)
	for _, b := range boletas {
		if multa, ok := normalize.Numero(b["multa"]); ok {
			snap.TotalMultas += multa
			if multa > 0 {
				snap.BoletasConMulta++
			}
		}

		switch normalize.ClasificarConformidad(b["conforme"]) {
		case normalize.ConformidadConforme:
			snap.TotalConformes++
		case normalize.ConformidadNoConforme:
			snap.TotalNoConformes++
		case normalize.ConformidadParcial:
			snap.TotalParciales++
		}

		switch normalize.ClasificarEstado(b["estado"]) {
		case normalize.EstadoActiva:
			snap.BoletasActivas++
		case normalize.EstadoPagada:
			snap.BoletasPagadas++
		case normalize.EstadoAnulada:
			snap.BoletasAnuladas++
		}
	}

	if snap.BoletasConMulta > 0 {
		snap.PromedioMulta = snap.TotalMultas / float64(snap.BoletasConMulta)
	}

	for _, u := range usuarios {
		if rolUsuario(u) != model.RolInspector {
			continue
		}
		if normalize.ClasificarEstado(u["estado"]) == normalize.EstadoActiva {
			snap.InspectoresActivos++
		}
		snap.Inspectores = append(snap.Inspectores, rollupInspector(u, boletas))
	}

	snap.BoletasRecientes = recientes(boletas, VentanaRecientes)

	return snap
}

// rolUsuario reads the account role; historical documents carry it under
// "rol" or "tipo".
func rolUsuario(u bson.M) string {
	if rol := normalize.Token(u["rol"]); rol != "" {
		return rol
	}
	return normalize.Token(u["tipo"])
}

// rollupInspector joins the inspector's citations by full scan. The join
// key is the uid when present, the primary id otherwise, because both
// appear as inspectorId across historical citations.
func rollupInspector(u bson.M, boletas []bson.M) model.InspectorResumen {
	id := normalize.Identificador(u["_id"])
	joinKey := normalize.Texto(u["uid"])
	if joinKey == "" {
		joinKey = id
	}

	r := model.InspectorResumen{
		ID:          id,
		UID:         joinKey,
		Nombre:      normalize.Texto(u["nombre"]),
		Email:       normalize.Texto(u["email"]),
		Codigo:      normalize.Texto(u["codigo"]),
		Telefono:    normalize.Texto(u["telefono"]),
		Estado:      normalize.Texto(u["estado"]),
		Rol:         rolUsuario(u),
		CreadoEpoch: creadoEpoch(u),
	}

	for _, b := range boletas {
		if normalize.Texto(b["inspectorId"]) != joinKey || joinKey == "" {
			continue
		}
		r.TotalBoletas++

		switch normalize.ClasificarConformidad(b["conforme"]) {
		case normalize.ConformidadConforme:
			r.Conformes++
		case normalize.ConformidadNoConforme:
			r.NoConformes++
		case normalize.ConformidadParcial:
			r.Parciales++
		}

		// Max-scan: the most recent activity must not depend on the
		// order the collection happened to be fetched in.
		if ms := fechaEpoch(b); ms != nil {
			if r.UltimaActividad == nil || *ms > *r.UltimaActividad {
				r.UltimaActividad = ms
			}
		}
	}

	return r
}

func recientes(boletas []bson.M, ventana int) []model.BoletaReciente {
	ordenadas := make([]bson.M, len(boletas))
	copy(ordenadas, boletas)

	sort.SliceStable(ordenadas, func(i, j int) bool {
		return epochOrZero(fechaEpoch(ordenadas[i])) > epochOrZero(fechaEpoch(ordenadas[j]))
	})

	if len(ordenadas) > ventana {
		ordenadas = ordenadas[:ventana]
	}

	out := make([]model.BoletaReciente, 0, len(ordenadas))
	for _, b := range ordenadas {
		out = append(out, model.BoletaReciente{
			ID:         normalize.Identificador(b["_id"]),
			Placa:      normalize.Texto(b["placa"]),
			Empresa:    normalize.Texto(b["empresa"]),
			Conductor:  primerTexto(b, "conductor", "nombreConductor"),
			Inspector:  primerTexto(b, "inspectorNombre", "inspectorEmail"),
			Estado:     normalize.Texto(b["estado"]),
			Multa:      multaOrZero(b),
			FechaEpoch: fechaEpoch(b),
		})
	}
	return out
}

func fechaEpoch(b bson.M) *int64 {
	if ms := normalize.EpochMillis(b["fecha"]); ms != nil {
		return ms
	}
	return normalize.EpochMillis(b["fechaEpoch"])
}

func creadoEpoch(u bson.M) *int64 {
	if ms := normalize.EpochMillis(u["creadoEn"]); ms != nil {
		return ms
	}
	return normalize.EpochMillis(u["fechaCreacion"])
}

func primerTexto(doc bson.M, keys ...string) string {
	for _, k := range keys {
		if s := normalize.Texto(doc[k]); s != "" {
			return s
		}
	}
	return ""
}

func multaOrZero(b bson.M) float64 {
	multa, ok := normalize.Numero(b["multa"])
	if !ok {
		return 0
	}
	return multa
}

func epochOrZero(ms *int64) int64 {
	if ms == nil {
		return 0
	}
	return *ms
}
