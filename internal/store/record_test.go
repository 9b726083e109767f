package store

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordID(t *testing.T) {
	cases := []struct {
		in   Record
		want int64
		ok   bool
	}{
		{Record{"id": float64(3)}, 3, true},
		{Record{"id": int64(7)}, 7, true},
		{Record{"id": json.Number("12")}, 12, true},
		{Record{"id": json.Number("12.0")}, 12, true},
		{Record{"id": float64(2)}, 2, true},
		{Record{"id": "12"}, 0, false},
		{Record{"id": "1"}, 0, false},
		{Record{"id": 1.5}, 0, false},
		{Record{"id": json.Number("1.5")}, 0, false},
		{Record{"id": true}, 0, false},
		{Record{"id": nil}, 0, false},
		{Record{"name": "x"}, 0, false},
		{Record{"id": "abc"}, 0, false},
	}
	for _, c := range cases {
		got, ok := c.in.ID()
		if got != c.want || ok != c.ok {
			t.Fatalf("ID(%v)=(%d,%v), want (%d,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("empty: got %d, want 1", got)
	}
	list := []Record{{"id": float64(1)}, {"id": float64(5)}, {"name": "no id"}, {"id": float64(2)}}
	if got := NextID(list); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestOfType_KeepsOrder(t *testing.T) {
	list := []Record{
		{"id": 1, "type": "service"},
		{"id": 2, "type": "product"},
		{"id": 3, "type": "service"},
		{"id": 4},
	}
	got := OfType(list, "service")
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if id, _ := got[1].ID(); id != 3 {
		t.Fatalf("order not kept: %+v", got)
	}
}

func TestTimestampLayout(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 123456000, time.Local)
	if got := Timestamp(ts); got != "2024-03-09T14:05:06.123456" {
		t.Fatalf("got %q", got)
	}
}

func TestTimestamp_KeepsTrailingZeros(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 500000000, time.Local)
	if got := Timestamp(ts); got != "2024-03-09T14:05:06.500000" {
		t.Fatalf("got %q", got)
	}
}

func TestTimestamp_WholeSecondHasNoFraction(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 999, time.Local)
	if got := Timestamp(ts); got != "2024-03-09T14:05:06" {
		t.Fatalf("got %q", got)
	}
}

func TestDecode_JSONTags(t *testing.T) {
	var v struct {
		ID       int64             `json:"id"`
		Price    float64           `json:"price"`
		Specs    map[string]string `json:"specs"`
		Features []string          `json:"features"`
	}
	r := Record{
		"id":       float64(4),
		"price":    189.99,
		"specs":    map[string]any{"material": "Carbide"},
		"features": []any{"Long lasting"},
		"extra":    "ignored",
	}
	if err := Decode(r, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.ID != 4 || v.Price != 189.99 || v.Specs["material"] != "Carbide" || len(v.Features) != 1 {
		t.Fatalf("unexpected: %+v", v)
	}
}
