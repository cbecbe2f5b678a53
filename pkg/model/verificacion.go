package model

// Verificacion is the payload behind the public citation-verification
// endpoint: the same fields the printed acta carries.
type Verificacion struct {
	ID            string `json:"id"`
	Fecha         string `json:"fecha"`
	FechaEpoch    *int64 `json:"fechaEpoch"`
	Placa         string `json:"placa"`
	Empresa       string `json:"empresa"`
	Inspector     string `json:"inspector"`
	Motivo        string `json:"motivo"`
	Conforme      string `json:"conforme"`
	Observaciones string `json:"observaciones"`
}
