package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "accented upper", input: "SÍ", want: "si"},
		{name: "mixed case", input: "Parcialmente", want: "parcialmente"},
		{name: "surrounding whitespace", input: "  Activa  ", want: "activa"},
		{name: "empty", input: "", want: ""},
		{name: "nil", input: nil, want: ""},
		{name: "non-string", input: 42, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.input))
		})
	}
}

func TestClasificarConformidad(t *testing.T) {
	tests := []struct {
		input any
		want  Conformidad
	}{
		{"Sí", ConformidadConforme},
		{"Si", ConformidadConforme},
		{"SÍ", ConformidadConforme},
		{"si", ConformidadConforme},
		{"no", ConformidadNoConforme},
		{"No", ConformidadNoConforme},
		{"Parcial", ConformidadParcial},
		{"Parcialmente", ConformidadParcial},
		{"", ConformidadNinguna},
		{"Desconocido", ConformidadNinguna},
		{nil, ConformidadNinguna},
		{"sin respuesta", ConformidadNinguna},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClasificarConformidad(tt.input), "input %v", tt.input)
	}
}

func TestClasificarEstado(t *testing.T) {
	tests := []struct {
		input any
		want  Estado
	}{
		{"Activa", EstadoActiva},
		{"ACTIVO", EstadoActiva},
		{"pagada", EstadoPagada},
		{"Pagado", EstadoPagada},
		{"Anulada", EstadoAnulada},
		{"anulado", EstadoAnulada},
		{"", EstadoNinguno},
		{"pendiente", EstadoNinguno},
		{nil, EstadoNinguno},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClasificarEstado(tt.input), "input %v", tt.input)
	}
}

func TestNumero(t *testing.T) {
	n, ok := Numero(float64(100.5))
	assert.True(t, ok)
	assert.Equal(t, 100.5, n)

	n, ok = Numero(int32(40))
	assert.True(t, ok)
	assert.Equal(t, float64(40), n)

	_, ok = Numero("100")
	assert.False(t, ok)

	_, ok = Numero(nil)
	assert.False(t, ok)
}
