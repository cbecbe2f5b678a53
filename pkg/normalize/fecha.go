package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layouts seen across historical documents, most specific first.
var fechaLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// Numeric epochs at or above this magnitude are milliseconds; below,
// seconds. 1e12 ms is Sep 2001, 1e12 s is the year 33658.
const epochMillisThreshold = 1e12

// Fecha interprets any of the date representations that occur in stored
// documents and returns the instant in UTC, or nil when the value is
// absent or cannot be interpreted. It never panics.
func Fecha(v any) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return validInstant(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return validInstant(*t)
	case primitive.DateTime:
		return validInstant(t.Time())
	case primitive.Timestamp:
		return validInstant(time.Unix(int64(t.T), 0))
	case string:
		return fechaFromString(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return fechaFromEpoch(f)
		}
		return nil
	case int:
		return fechaFromEpoch(float64(t))
	case int32:
		return fechaFromEpoch(float64(t))
	case int64:
		return fechaFromEpoch(float64(t))
	case float64:
		return fechaFromEpoch(t)
	default:
		return nil
	}
}

// EpochMillis is Fecha projected to milliseconds since epoch.
func EpochMillis(v any) *int64 {
	t := Fecha(v)
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func validInstant(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func fechaFromString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return validInstant(t)
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fechaFromEpoch(f)
	}
	return nil
}

func fechaFromEpoch(f float64) *time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return nil
	}
	var t time.Time
	if f >= epochMillisThreshold {
		t = time.UnixMilli(int64(f))
	} else {
		t = time.Unix(int64(f), 0)
	}
	return validInstant(t)
}
