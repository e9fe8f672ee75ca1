// Package decoder tags a tomlrand.Value tree as the same "{type, value}"
// JSON shape a TOML-test harness expects from a parser's native result.
// It is a supplement, not part of the generator's core API: the generator
// stays a pure library, and any caller that wants a quick textual look at
// a generated model — this package's own tests, or the gentoml CLI's
// --json flag — calls through here instead.
package decoder

import (
	"fmt"
	"math"
	"strings"

	"github.com/jorisvr/tomlrand"
)

// Tagged renders v in the harness's tagged-JSON shape: scalars become
// {"type": T, "value": S} maps, arrays become JSON arrays, and inline
// tables become JSON objects whose values are themselves tagged.
func Tagged(v tomlrand.Value) any {
	switch n := v.(type) {
	case tomlrand.String:
		return tagged("string", string(n))
	case tomlrand.Bool:
		return tagged("bool", fmt.Sprintf("%t", bool(n)))
	case tomlrand.Integer:
		return tagged("integer", n.BigInt().String())
	case tomlrand.Float:
		return tagged("float", formatFloat(float64(n)))
	case tomlrand.LocalDate:
		return tagged("date-local", fmt.Sprintf("%04d-%02d-%02d", n.Year, n.Month, n.Day))
	case tomlrand.LocalTime:
		return tagged("time-local", formatTime(n))
	case tomlrand.LocalDateTime:
		return tagged("datetime-local", formatDate(n.Date)+"T"+formatTime(n.Time))
	case tomlrand.OffsetDateTime:
		return tagged("datetime", formatDate(n.Date)+"T"+formatTime(n.Time)+formatOffset(n))
	case tomlrand.Array:
		out := make([]any, 0, len(n))
		for _, elem := range n {
			out = append(out, Tagged(elem))
		}
		return out
	case *tomlrand.InlineTable:
		out := make(map[string]any, len(n.Keys))
		for _, k := range n.Keys {
			out[k] = Tagged(n.Values[k])
		}
		return out
	default:
		panic(fmt.Sprintf("decoder: unrecognized value type %T", v))
	}
}

func tagged(typ, value string) map[string]string {
	return map[string]string{"type": typ, "value": value}
}

// formatFloat renders a float64 the way the harness's equality contract
// expects: signed "inf"/"nan" preserving the sign bit, otherwise a decimal
// form that always carries a "." or an exponent.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"
	}
	s := fmt.Sprintf("%v", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatDate(d tomlrand.LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatTime(t tomlrand.LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	switch {
	case t.Nanosecond == 0:
		return s
	case t.Nanosecond%1000000 == 0:
		return fmt.Sprintf("%s.%03d", s, t.Nanosecond/1000000)
	default:
		return fmt.Sprintf("%s.%06d", s, t.Nanosecond/1000)
	}
}

func formatOffset(dt tomlrand.OffsetDateTime) string {
	if dt.UTC {
		return "Z"
	}
	sign := "+"
	abs := dt.OffsetMinutes
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, abs/60, abs%60)
}
