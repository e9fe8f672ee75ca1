package tomlrand

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// genVal samples val = string / boolean / array / inline-table
// / date-time / float / integer, uniformly.
func (gen *Generator) genVal() (string, Value) {
	switch gen.g.intRange(0, 6) {
	case 0:
		s, v := gen.genString()
		return s, String(v)
	case 1:
		return gen.genBoolean()
	case 2:
		return gen.genInteger()
	case 3:
		return gen.genFloat()
	case 4:
		return gen.genArray()
	case 5:
		return gen.genInlineTable()
	default:
		return gen.genDateTime()
	}
}

// genBoolean samples boolean = "true" / "false".
func (gen *Generator) genBoolean() (string, Value) {
	if gen.g.intRange(0, 1) == 0 {
		return "true", Bool(true)
	}
	return "false", Bool(false)
}

// intFormat is one entry of the six integer surface forms: a prefix, a
// formatter over the sampled magnitude, whether zero-padding is allowed,
// and the sign it contributes. Kept as an explicit table rather than
// ad-hoc branches, per the format-variant re-architecture note.
type intFormat struct {
	prefix        string
	format        func(*rng, *big.Int) string
	allowZeroPad  bool
	signMultiplier int
}

var intFormats = []intFormat{
	{"", formatDecimal, false, 1},
	{"+", formatDecimal, false, 1},
	{"-", formatDecimal, false, -1},
	{"0x", formatHexBig, true, 1},
	{"0o", formatOctalBig, true, 1},
	{"0b", formatBinaryBig, true, 1},
}

func formatDecimal(_ *rng, v *big.Int) string { return v.String() }

func formatHexBig(g *rng, v *big.Int) string {
	s := v.Text(16)
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
			continue
		}
		digit := int(c-'a') + 10
		if g.intRange(0, 1) == 0 {
			b.WriteRune(rune('a' + digit - 10))
		} else {
			b.WriteRune(rune('A' + digit - 10))
		}
	}
	return b.String()
}

func formatOctalBig(_ *rng, v *big.Int) string { return v.Text(8) }
func formatBinaryBig(_ *rng, v *big.Int) string { return v.Text(2) }

// genInteger samples integer = dec-int / hex-int / oct-int / bin-int. The
// magnitude is biased toward small values via exp(U^2 * ln(max+1)) - 1 so
// that it still reaches the full 2^80 range occasionally.
func (gen *Generator) genInteger() (string, Value) {
	u := gen.g.uniform()
	limit := new(big.Float).SetInt(gen.cfg.MaxIntValue)
	limit.Add(limit, big.NewFloat(1))
	logLimit, _ := limit.Float64()
	exponent := u * u * math.Log(logLimit)
	magF := math.Exp(exponent) - 1
	if magF < 0 {
		magF = 0
	}
	mag, _ := big.NewFloat(math.Round(magF)).Int(nil)

	f := choice(gen.g, intFormats)
	s := f.format(gen.g, mag)
	if f.allowZeroPad {
		n := gen.g.intRange(0, 3)
		s = strings.Repeat("0", n) + s
	}
	s = gen.g.spliceNumber(s)
	s = f.prefix + s

	return s, NewInteger(f.signMultiplier, mag)
}

// genDecInt samples a shared decimal-integer shape reused by the three
// parts of a float: a magnitude in [0,maxVal], optionally signed,
// optionally zero-padded, with underscores spliced in afterward.
func (gen *Generator) genDecInt(maxVal int64, signed, zeroPrefixable bool) (string, int64) {
	v := int64(gen.g.intRange(0, int(maxVal)))
	sign := ""
	if signed {
		sign = choice(gen.g, []string{"", "+", "-"})
	}
	prefix := ""
	if zeroPrefixable {
		prefix = strings.Repeat("0", gen.g.intRange(0, 3))
	}
	s := sign + gen.g.spliceNumber(prefix+strconv.FormatInt(v, 10))
	if sign == "-" {
		v = -v
	}
	return s, v
}

// genFloat samples float = float-int-part ( exp / frac [ exp ] )
// / special-float.
func (gen *Generator) genFloat() (string, Value) {
	if gen.g.uniform() < gen.cfg.ProbSpecialFloat {
		prefix := choice(gen.g, []string{"", "+", "-"})
		sym := choice(gen.g, []string{"inf", "nan"})
		s := prefix + sym
		var v float64
		switch sym {
		case "inf":
			v = math.Inf(1)
		default:
			v = math.NaN()
		}
		if prefix == "-" {
			v = math.Copysign(v, -1)
		} else {
			v = math.Copysign(v, 1)
		}
		return s, Float(v)
	}

	intStr, _ := gen.genDecInt(999999, true, false)

	r := gen.g.intRange(0, 2)
	expStr := ""
	if r == 0 || r == 2 {
		e, _ := gen.genDecInt(100, true, true)
		expStr = string(choice(gen.g, []rune("eE"))) + e
	}
	fracStr := ""
	if r == 1 || r == 2 {
		f, _ := gen.genDecInt(99999, false, true)
		fracStr = "." + f
	}

	s := intStr + fracStr + expStr
	clean := strings.ReplaceAll(s, "_", "")
	v, _ := strconv.ParseFloat(clean, 64)
	return s, Float(v)
}
