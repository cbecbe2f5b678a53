package model

// InspectorResumen is a per-inspector rollup: a minimal projection of the
// account plus aggregates over the citations that join to it.
type InspectorResumen struct {
	ID              string `json:"id"`
	UID             string `json:"uid"`
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	Codigo          string `json:"codigo"`
	Telefono        string `json:"telefono"`
	Estado          string `json:"estado"`
	Rol             string `json:"rol"`
	CreadoEpoch     *int64 `json:"creadoEpoch"`
	TotalBoletas    int    `json:"totalBoletas"`
	Conformes       int    `json:"conformes"`
	NoConformes     int    `json:"noConformes"`
	Parciales       int    `json:"parciales"`
	UltimaActividad *int64 `json:"ultimaActividad"`
}

// BoletaReciente is the minimal projection used in the recent-activity window.
type BoletaReciente struct {
	ID         string  `json:"id"`
	Placa      string  `json:"placa"`
	Empresa    string  `json:"empresa"`
	Conductor  string  `json:"conductor"`
	Inspector  string  `json:"inspector"`
	Estado     string  `json:"estado"`
	Multa      float64 `json:"multa"`
	FechaEpoch *int64  `json:"fechaEpoch"`
}

// DashboardSnapshot is the complete aggregate view. All fields are
// JSON-safe: nullable epochs are *int64, slices are never nil.
type DashboardSnapshot struct {
	TotalBoletas       int                `json:"totalBoletas"`
	TotalMultas        float64            `json:"totalMultas"`
	TotalConformes     int                `json:"totalConformes"`
	TotalNoConformes   int                `json:"totalNoConformes"`
	TotalParciales     int                `json:"totalParciales"`
	BoletasConMulta    int                `json:"boletasConMulta"`
	PromedioMulta      float64            `json:"promedioMulta"`
	BoletasActivas     int                `json:"boletasActivas"`
	BoletasPagadas     int                `json:"boletasPagadas"`
	BoletasAnuladas    int                `json:"boletasAnuladas"`
	InspectoresActivos int                `json:"inspectoresActivos"`
	Inspectores        []InspectorResumen `json:"inspectores"`
	BoletasRecientes   []BoletaReciente   `json:"boletasRecientes"`
}
