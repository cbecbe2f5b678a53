package sanitizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBoletaAliasPriority(t *testing.T) {
	raw := bson.M{
		"_id":             "b-1",
		"placa":           "ABC-123",
		"nombreConductor": "Juan Pérez",
		"foto":            "https://fotos/legacy.jpg",
		"motivoIntervencion": "Exceso de velocidad",
		"inspectorEmail":  "inspector@municipio.gob.pe",
	}

	got := Boleta(raw)

	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, "ABC-123", got.Placa)
	assert.Equal(t, "Juan Pérez", got.Conductor)
	assert.Equal(t, "https://fotos/legacy.jpg", got.FotoURL)
	assert.Equal(t, "Exceso de velocidad", got.Motivo)
	assert.Equal(t, "inspector@municipio.gob.pe", got.InspectorNombre)
}

func TestBoletaPrimaryAliasWins(t *testing.T) {
	raw := bson.M{
		"conductor":       "Primario",
		"nombreConductor": "Legado",
		"fotoUrl":         "https://fotos/nueva.jpg",
		"foto":            "https://fotos/vieja.jpg",
	}

	got := Boleta(raw)

	assert.Equal(t, "Primario", got.Conductor)
	assert.Equal(t, "https://fotos/nueva.jpg", got.FotoURL)
}

func TestBoletaDefaults(t *testing.T) {
	got := Boleta(bson.M{})

	assert.Equal(t, "", got.ID)
	assert.Equal(t, "", got.Placa)
	assert.Equal(t, "", got.Conductor)
	assert.Equal(t, float64(0), got.Multa)
	assert.Nil(t, got.FechaEpoch)
	assert.Equal(t, "", got.Observaciones)
}

func TestBoletaMultaCoercion(t *testing.T) {
	assert.Equal(t, float64(150), Boleta(bson.M{"multa": int32(150)}).Multa)
	assert.Equal(t, 99.5, Boleta(bson.M{"multa": 99.5}).Multa)
	// Non-numeric stored values normalize to 0 rather than propagating.
	assert.Equal(t, float64(0), Boleta(bson.M{"multa": "150"}).Multa)
	assert.Equal(t, float64(0), Boleta(bson.M{"multa": nil}).Multa)
}

func TestBoletaObjectIDIdentity(t *testing.T) {
	oid := primitive.NewObjectID()
	got := Boleta(bson.M{"_id": oid})
	assert.Equal(t, oid.Hex(), got.ID)
}

func TestBoletaFechaEpoch(t *testing.T) {
	got := Boleta(bson.M{"fecha": "2024-01-10T10:00:00Z"})
	require.NotNil(t, got.FechaEpoch)
	assert.Equal(t, int64(1704880800000), *got.FechaEpoch)

	got = Boleta(bson.M{"fecha": "corrupta"})
	assert.Nil(t, got.FechaEpoch)
}

// Sanitizing an already-sanitized shape must be a fixed point.
func TestBoletaIdempotence(t *testing.T) {
	first := Boleta(bson.M{
		"_id":           "b-9",
		"placa":         "XYZ-999",
		"conductor":     "María",
		"multa":         float64(80),
		"fecha":         "2024-03-01T08:30:00Z",
		"observaciones": "vehículo sin SOAT",
	})

	data, err := json.Marshal(first)
	require.NoError(t, err)

	var roundTrip bson.M
	require.NoError(t, json.Unmarshal(data, &roundTrip))

	second := Boleta(roundTrip)
	assert.Equal(t, first, second)
}
