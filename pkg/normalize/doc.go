// Package normalize converts the heterogeneous field representations found
// in historical boleta and usuario documents into canonical forms.
//
// All functions are pure, idempotent and total: a value that cannot be
// interpreted degrades to its safe default (nil instant, empty token,
// unmatched bucket) instead of returning an error. One malformed field must
// never abort an aggregation over the rest of the collection.
//
// Normalization includes:
//   - Dates: BSON datetimes, native times, ISO-like strings and numeric
//     epochs (seconds or milliseconds) all map to a UTC instant or nil.
//   - Enum tokens: trimmed, lowercased and accent-stripped before bucket
//     classification, so "SÍ", "Sí" and "si" classify identically.
//   - Buckets: conformity (conforme/no conforme/parcial) and lifecycle
//     status (activa/pagada/anulada). Unrecognized tokens match no bucket;
//     they are deliberately not coerced into a default so data-quality
//     problems stay observable downstream.
package normalize
