package decoder

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorisvr/tomlrand"
)

func TestTaggedScalars(t *testing.T) {
	cases := []struct {
		name string
		in   tomlrand.Value
		want map[string]string
	}{
		{"string", tomlrand.String("hi"), map[string]string{"type": "string", "value": "hi"}},
		{"bool", tomlrand.Bool(true), map[string]string{"type": "bool", "value": "true"}},
		{"integer", tomlrand.NewInteger(-1, big.NewInt(42)), map[string]string{"type": "integer", "value": "-42"}},
		{"float", tomlrand.Float(1.5), map[string]string{"type": "float", "value": "1.5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tagged(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Tagged(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestFormatFloatSpecialValues(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
		{math.Copysign(math.NaN(), -1), "-nan"},
		{1.0, "1.0"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.v); got != tc.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestTaggedArray(t *testing.T) {
	arr := tomlrand.Array{tomlrand.String("a"), tomlrand.Bool(false)}
	got, ok := Tagged(arr).([]any)
	if !ok {
		t.Fatalf("Tagged(array) returned %T, want []any", Tagged(arr))
	}
	if len(got) != 2 {
		t.Fatalf("Tagged(array) has %d elements, want 2", len(got))
	}
}

func TestTaggedInlineTablePreservesKeys(t *testing.T) {
	tbl := tomlrand.NewInlineTable()
	tbl.Set("b", tomlrand.Bool(true))
	tbl.Set("a", tomlrand.String("x"))

	got, ok := Tagged(tbl).(map[string]any)
	if !ok {
		t.Fatalf("Tagged(inline table) returned %T, want map[string]any", Tagged(tbl))
	}
	if len(got) != 2 {
		t.Fatalf("Tagged(inline table) has %d keys, want 2", len(got))
	}
}

func TestFormatTimeFractionalDigits(t *testing.T) {
	cases := []struct {
		t    tomlrand.LocalTime
		want string
	}{
		{tomlrand.LocalTime{Hour: 1, Minute: 2, Second: 3}, "01:02:03"},
		{tomlrand.LocalTime{Hour: 1, Minute: 2, Second: 3, Nanosecond: 500000000}, "01:02:03.500"},
		{tomlrand.LocalTime{Hour: 1, Minute: 2, Second: 3, Nanosecond: 123456000}, "01:02:03.123456"},
	}
	for _, tc := range cases {
		if got := formatTime(tc.t); got != tc.want {
			t.Errorf("formatTime(%+v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestFormatOffsetUTCAndExplicit(t *testing.T) {
	utc := tomlrand.OffsetDateTime{UTC: true}
	if got := formatOffset(utc); got != "Z" {
		t.Errorf("formatOffset(UTC) = %q, want Z", got)
	}
	explicit := tomlrand.OffsetDateTime{OffsetMinutes: -90}
	if got := formatOffset(explicit); got != "-01:30" {
		t.Errorf("formatOffset(-90min) = %q, want -01:30", got)
	}
}
