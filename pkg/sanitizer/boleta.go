package sanitizer

import (
	"go.mongodb.org/mongo-driver/bson"

	"transcontrol/pkg/model"
	"transcontrol/pkg/normalize"
)

// Alias priority lists per logical field; first populated wins. The
// primary alias matches the sanitized JSON field name so the projection
// is idempotent over its own output.
var (
	aliasConductor = []string{"conductor", "nombreConductor"}
	aliasLicencia  = []string{"licencia", "numeroLicencia"}
	aliasMotivo    = []string{"motivo", "motivoIntervencion"}
	aliasInspector = []string{"inspectorNombre", "inspectorEmail"}
	aliasFoto      = []string{"fotoUrl", "foto"}
	aliasFecha     = []string{"fechaEpoch", "fecha"}
)

// Boleta projects a raw citation document onto the stable BoletaResumen
// shape. Missing strings become ""; a non-numeric multa becomes 0; an
// uninterpretable fecha becomes a null epoch.
func Boleta(raw bson.M) model.BoletaResumen {
	multa, ok := normalize.Numero(raw["multa"])
	if !ok {
		multa = 0
	}

	return model.BoletaResumen{
		ID:              identificador(raw),
		Placa:           texto(raw, "placa"),
		Empresa:         texto(raw, "empresa"),
		Conductor:       texto(raw, aliasConductor...),
		Licencia:        texto(raw, aliasLicencia...),
		Motivo:          texto(raw, aliasMotivo...),
		InspectorNombre: texto(raw, aliasInspector...),
		Estado:          texto(raw, "estado"),
		Multa:           multa,
		FotoURL:         texto(raw, aliasFoto...),
		FechaEpoch:      fechaEpoch(raw),
		Observaciones:   texto(raw, "observaciones"),
		Descripcion:     texto(raw, "descripcion"),
	}
}

func identificador(raw bson.M) string {
	if id := normalize.Identificador(raw["_id"]); id != "" {
		return id
	}
	return normalize.Identificador(raw["id"])
}

func texto(raw bson.M, aliases ...string) string {
	for _, key := range aliases {
		if s := normalize.Texto(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

func fechaEpoch(raw bson.M) *int64 {
	for _, key := range aliasFecha {
		if ms := normalize.EpochMillis(raw[key]); ms != nil {
			return ms
		}
	}
	return nil
}
