package model

import "time"

// Boleta is the write model for a fiscalization citation. Historical
// documents in the boletas collection do not all conform to this shape;
// read paths that must tolerate legacy documents work on raw bson.M and
// go through pkg/sanitizer instead.
type Boleta struct {
	ID              string    `bson:"_id,omitempty" json:"id" validate:"omitempty"`
	Fecha           time.Time `bson:"fecha" json:"fecha" validate:"omitempty"`
	Placa           string    `bson:"placa" json:"placa" validate:"required,min=5,max=10"`
	Empresa         string    `bson:"empresa" json:"empresa" validate:"omitempty,max=120"`
	Conductor       string    `bson:"conductor" json:"conductor" validate:"omitempty,max=120"`
	Licencia        string    `bson:"licencia" json:"licencia" validate:"omitempty,max=20"`
	InspectorID     string    `bson:"inspectorId" json:"inspectorId" validate:"required"`
	InspectorNombre string    `bson:"inspectorNombre" json:"inspectorNombre" validate:"omitempty,max=120"`
	InspectorEmail  string    `bson:"inspectorEmail" json:"inspectorEmail" validate:"omitempty,email"`
	Multa           float64   `bson:"multa" json:"multa" validate:"gte=0"`
	Conforme        string    `bson:"conforme" json:"conforme" validate:"omitempty,max=30"`
	Estado          string    `bson:"estado" json:"estado" validate:"omitempty,max=30"`
	Motivo          string    `bson:"motivo" json:"motivo" validate:"omitempty,max=500"`
	Observaciones   string    `bson:"observaciones,omitempty" json:"observaciones,omitempty" validate:"omitempty,max=1000"`
	FotoURL         string    `bson:"fotoUrl,omitempty" json:"fotoUrl,omitempty" validate:"omitempty,url"`
}
