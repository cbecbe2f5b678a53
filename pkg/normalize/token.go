package normalize

import (
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token reduces an enum-like value to a trimmed, lowercased,
// accent-stripped string. Non-string and absent values yield "".
func Token(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}

// Texto extracts a plain display string, "" when absent or not a string.
func Texto(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Identificador canonicalizes a document id that may be stored as an
// ObjectID or as a plain string.
func Identificador(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return strings.TrimSpace(id)
	default:
		return ""
	}
}

// Numero coerces the numeric types the driver can decode. The bool result
// reports whether the value was numeric at all.
func Numero(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

type Conformidad int

const (
	ConformidadNinguna Conformidad = iota
	ConformidadConforme
	ConformidadNoConforme
	ConformidadParcial
)

// ClasificarConformidad buckets an inspector's conformity judgement.
// "Parcialmente" and similar variants classify as parcial via the prefix
// rule. Unrecognized values match no bucket.
func ClasificarConformidad(v any) Conformidad {
	token := Token(v)
	switch {
	case token == "si":
		return ConformidadConforme
	case token == "no":
		return ConformidadNoConforme
	case token != "" && strings.HasPrefix(token, "parcial"):
		return ConformidadParcial
	default:
		return ConformidadNinguna
	}
}

type Estado int

const (
	EstadoNinguno Estado = iota
	EstadoActiva
	EstadoPagada
	EstadoAnulada
)

// ClasificarEstado buckets a lifecycle status. Both grammatical genders
// occur in stored data.
func ClasificarEstado(v any) Estado {
	switch Token(v) {
	case "activa", "activo":
		return EstadoActiva
	case "pagada", "pagado":
		return EstadoPagada
	case "anulada", "anulado":
		return EstadoAnulada
	default:
		return EstadoNinguno
	}
}
