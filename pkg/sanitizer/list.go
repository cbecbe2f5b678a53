package sanitizer

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"transcontrol/pkg/model"
)

const (
	MinListLimit     = 1
	MaxListLimit     = 1000
	DefaultListLimit = 200
)

// ListOptions controls BoletaList. A nil Limit means "not provided" and
// falls back to DefaultListLimit; provided values clamp to
// [MinListLimit, MaxListLimit].
type ListOptions struct {
	Limit       *int
	SoloConFoto bool
}

// ClampLimit resolves the effective list limit.
func ClampLimit(limit *int) int {
	if limit == nil {
		return DefaultListLimit
	}
	if *limit < MinListLimit {
		return MinListLimit
	}
	if *limit > MaxListLimit {
		return MaxListLimit
	}
	return *limit
}

// BoletaList sanitizes every document, optionally keeps only those with a
// photo reference, and orders by descending epoch. Records without an
// interpretable date sort as epoch 0. The sort is stable so records with
// equal (or absent) epochs keep their original relative order.
func BoletaList(raw []bson.M, opts ListOptions) []model.BoletaResumen {
	out := make([]model.BoletaResumen, 0, len(raw))
	for _, doc := range raw {
		b := Boleta(doc)
		if opts.SoloConFoto && b.FotoURL == "" {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return epochOrZero(out[i].FechaEpoch) > epochOrZero(out[j].FechaEpoch)
	})

	if limit := ClampLimit(opts.Limit); len(out) > limit {
		out = out[:limit]
	}
	return out
}

func epochOrZero(ms *int64) int64 {
	if ms == nil {
		return 0
	}
	return *ms
}
