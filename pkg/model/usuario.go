package model

import "time"

const (
	RolInspector = "inspector"
	RolGerente   = "gerente"

	EstadoUsuarioActivo   = "activo"
	EstadoUsuarioInactivo = "inactivo"
)

// Usuario is an inspector or manager account. UID is the identity-provider
// id older citations reference; newer ones reference the primary id, so
// joins must accept either.
type Usuario struct {
	ID       string    `bson:"_id,omitempty" json:"id"`
	UID      string    `bson:"uid,omitempty" json:"uid,omitempty"`
	Nombre   string    `bson:"nombre" json:"nombre" validate:"required,min=2,max=120"`
	Email    string    `bson:"email" json:"email" validate:"required,email"`
	Telefono string    `bson:"telefono,omitempty" json:"telefono,omitempty" validate:"omitempty,max=20"`
	Codigo   string    `bson:"codigo,omitempty" json:"codigo,omitempty" validate:"omitempty,max=30"`
	Rol      string    `bson:"rol" json:"rol" validate:"required,oneof=inspector gerente"`
	Estado   string    `bson:"estado" json:"estado" validate:"omitempty,oneof=activo inactivo"`
	CreadoEn time.Time `bson:"creadoEn" json:"creadoEn"`
}

// UsuarioUpdate carries partial updates; nil fields are left untouched.
type UsuarioUpdate struct {
	Nombre   *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=120"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Codigo   *string `json:"codigo,omitempty" validate:"omitempty,max=30"`
	Rol      *string `json:"rol,omitempty" validate:"omitempty,oneof=inspector gerente"`
	Estado   *string `json:"estado,omitempty" validate:"omitempty,oneof=activo inactivo"`
}
