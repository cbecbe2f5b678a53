package model

// BoletaResumen is the sanitized, allow-list projection of a raw boleta
// document. Every string field defaults to "" (never null); multa defaults
// to 0; observaciones and descripcion are omitted entirely when absent.
// FechaEpoch is milliseconds since epoch, null when the document carries
// no interpretable date.
type BoletaResumen struct {
	ID              string  `json:"id" csv:"id"`
	Placa           string  `json:"placa" csv:"placa"`
	Empresa         string  `json:"empresa" csv:"empresa"`
	Conductor       string  `json:"conductor" csv:"conductor"`
	Licencia        string  `json:"licencia" csv:"licencia"`
	Motivo          string  `json:"motivo" csv:"motivo"`
	InspectorNombre string  `json:"inspectorNombre" csv:"inspectorNombre"`
	Estado          string  `json:"estado" csv:"estado"`
	Multa           float64 `json:"multa" csv:"multa"`
	FotoURL         string  `json:"fotoUrl" csv:"fotoUrl"`
	FechaEpoch      *int64  `json:"fechaEpoch" csv:"fechaEpoch"`
	Observaciones   string  `json:"observaciones,omitempty" csv:"observaciones"`
	Descripcion     string  `json:"descripcion,omitempty" csv:"descripcion"`
}
