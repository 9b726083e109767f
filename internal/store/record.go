package store

import (
	"encoding/json"
	"math"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// TimestampLayout is ISO-8601 local time without zone, six fractional digits.
// Timestamp drops the fraction entirely when it is zero.
const (
	TimestampLayout       = "2006-01-02T15:04:05.000000"
	timestampLayoutSecond = "2006-01-02T15:04:05"
)

// Record is one free-form entry of a collection. Keys the client omitted stay
// absent; unknown keys are kept.
type Record map[string]any

// ID returns the record's id when it is an integral number. Strings,
// fractional numbers and booleans are not ids.
func (r Record) ID() (int64, bool) {
	switch v := r["id"].(type) {
	case json.Number:
		if id, err := v.Int64(); err == nil {
			return id, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case float64:
		return integral(v)
	case float32:
		return integral(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		id, err := cast.ToInt64E(v)
		return id, err == nil
	default:
		return 0, false
	}
}

func integral(f float64) (int64, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func (r Record) Type() string {
	s, _ := r["type"].(string)
	return s
}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r)+4)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NextID returns max(existing ids, default 0) + 1.
func NextID(records []Record) int64 {
	var top int64
	for _, r := range records {
		if id, ok := r.ID(); ok && id > top {
			top = id
		}
	}
	return top + 1
}

// OfType keeps the records whose "type" equals typ, in stored order.
func OfType(records []Record, typ string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Type() == typ {
			out = append(out, r)
		}
	}
	return out
}

// OrEmpty turns a nil list into an empty one so it encodes as [].
func OrEmpty(records []Record) []Record {
	if records == nil {
		return []Record{}
	}
	return records
}

func Timestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayoutSecond)
	}
	return t.Format(TimestampLayout)
}

// Decode fills out (a pointer to a struct) from a record, matching json tags.
func Decode(r Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(r))
}

// DecodeAll decodes every record into a typed view.
func DecodeAll[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := Decode(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
