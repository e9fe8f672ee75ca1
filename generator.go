// Package tomlrand generates random, structurally valid TOML v1.0.0
// documents paired with the exact value tree a conforming parser must
// recover from them, for differential and fuzz testing of TOML parsers.
package tomlrand

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Config carries every tunable constant the generator samples from. The
// zero value is not ready to use; call DefaultConfig for the values this
// package has always shipped with.
type Config struct {
	MaxExpressions  int
	MeanWsLen       float64
	MaxWsLen        int
	MeanCommentLen  float64
	MaxCommentLen   int
	MeanKeyLen      float64
	MaxKeyLen       int
	MeanStringLen   float64
	MaxStringLen    int
	MeanMLStringLen float64
	MaxMLStringLen  int
	MeanArrayElems  float64
	MaxArrayElems   int
	MaxDottedLen    int
	MaxIntValue     *big.Int

	ProbComment          float64
	ProbExprKeyval       float64
	ProbExprTable        float64
	ProbCommentWs        float64
	ProbCommentNasty     float64
	ProbCommentNonASCII  float64
	ProbQuotedKey        float64
	ProbExistingKey      float64
	ProbEscapeChar       float64
	ProbMLNewline        float64
	ProbMLEscapedNewline float64
	ProbMLQuote          float64
	ProbSpecialFloat     float64

	// MaxKeyRetries bounds the key sampler's reject-and-retry loop before
	// it starts widening keys with an extra segment. The other loops run
	// a sampled count of times, except genMLBasicString's redraw of a
	// character that must not be a space or tab, which has no cap.
	MaxKeyRetries int

	// Debug, when true, makes the generator write one-line traces of
	// every tree mutation to Trace (default io.Discard if Trace is nil).
	// This is the configuration-field realization of a module-level
	// debug flag: no process-wide state is read or written.
	Debug bool
	Trace io.Writer
}

// DefaultConfig returns the constants this generator has always used.
func DefaultConfig() Config {
	maxInt := new(big.Int).Lsh(big.NewInt(1), 80)
	return Config{
		MaxExpressions:  200,
		MeanWsLen:       2,
		MaxWsLen:        100,
		MeanCommentLen:  8,
		MaxCommentLen:   100,
		MeanKeyLen:      5,
		MaxKeyLen:       100,
		MeanStringLen:   10,
		MaxStringLen:    100,
		MeanMLStringLen: 25,
		MaxMLStringLen:  200,
		MeanArrayElems:  2,
		MaxArrayElems:   10,
		MaxDottedLen:    3,
		MaxIntValue:     maxInt,

		ProbComment:          0.5,
		ProbExprKeyval:       0.7,
		ProbExprTable:        0.1,
		ProbCommentWs:        0.1,
		ProbCommentNasty:     0.1,
		ProbCommentNonASCII:  0.1,
		ProbQuotedKey:        0.4,
		ProbExistingKey:      0.5,
		ProbEscapeChar:       0.1,
		ProbMLNewline:        0.1,
		ProbMLEscapedNewline: 0.05,
		ProbMLQuote:          0.1,
		ProbSpecialFloat:     0.1,

		MaxKeyRetries: 256,
	}
}

// Generator produces random TOML documents. It holds only its Config and a
// PRNG; each Generate call builds a fresh Context of its own, so two
// Generators never interact through any other state.
type Generator struct {
	cfg Config
	g   *rng
}

// NewGenerator returns a Generator configured by cfg, seeded with seed.
func NewGenerator(seed uint64, cfg Config) *Generator {
	if cfg.MaxIntValue == nil {
		panic("tomlrand: Config.MaxIntValue must be set (see DefaultConfig)")
	}
	return &Generator{cfg: cfg, g: newRNG(seed)}
}

// Generate is the package's single library entry point: given a seed it
// deterministically produces a UTF-8 document and the Value a conforming
// parser must recover from it.
func Generate(seed uint64) (document []byte, model Value) {
	gen := NewGenerator(seed, DefaultConfig())
	return gen.Generate()
}

// Generate runs one generation using g's configuration and PRNG state.
// Calling it twice on the same Generator does not repeat the document:
// the PRNG state advances, matching the façade's documented behavior that
// only a fresh Generator with the same seed reproduces a prior run.
func (gen *Generator) Generate() ([]byte, Value) {
	ctx := NewContext()
	var doc strings.Builder

	n := gen.g.intRange(1, gen.cfg.MaxExpressions)
	for i := 0; i < n; i++ {
		if i > 0 {
			doc.WriteString(gen.genNewline())
		}
		doc.WriteString(gen.genExpression(ctx))
	}

	return []byte(doc.String()), ctx.Finalize()
}

func (gen *Generator) trace(format string, args ...any) {
	if !gen.cfg.Debug {
		return
	}
	w := gen.cfg.Trace
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// genNewline samples newline = %x0A / %x0D %x0A.
func (gen *Generator) genNewline() string {
	return choice(gen.g, []string{"\n", "\r\n"})
}

// genWS samples ws = *wschar, wschar = %x20 / %x09, spaces four times as
// likely as tabs.
func (gen *Generator) genWS() string {
	n := gen.g.randExp(gen.cfg.MeanWsLen, 0, gen.cfg.MaxWsLen)
	if n == 0 {
		return ""
	}
	chars := choicesWeighted(gen.g, []rune{'\t', ' '}, []float64{1, 4}, n)
	return string(chars)
}

// genExpression samples one expression: whitespace-only, a key/value
// assignment, or a table/table-array header, with an optional trailing
// comment.
func (gen *Generator) genExpression(ctx *Context) string {
	var doc strings.Builder
	doc.WriteString(gen.genWS())

	r := gen.g.uniform()
	switch {
	case r < gen.cfg.ProbExprKeyval:
		doc.WriteString(gen.genKeyval(ctx))
		doc.WriteString(gen.genWS())
	case r < gen.cfg.ProbExprKeyval+gen.cfg.ProbExprTable:
		doc.WriteString(gen.genTable(ctx))
		doc.WriteString(gen.genWS())
	}

	if gen.g.uniform() < gen.cfg.ProbComment {
		doc.WriteString(gen.genComment())
	}
	return doc.String()
}

// genComment samples comment = "#" *non-eol from five weighted character
// classes.
func (gen *Generator) genComment() string {
	n := gen.g.randExp(gen.cfg.MeanCommentLen, 0, gen.cfg.MaxCommentLen)
	weights := []float64{
		gen.cfg.ProbCommentWs,
		gen.cfg.ProbCommentNasty,
		0.5 * gen.cfg.ProbCommentNonASCII,
		0.5 * gen.cfg.ProbCommentNonASCII,
	}
	last := 1.0
	for _, w := range weights {
		last -= w
	}
	weights = append(weights, last)

	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < n; i++ {
		switch gen.g.weightedChoice(weights) {
		case 0:
			b.WriteRune(choice(gen.g, []rune{'\t', ' ', ' ', ' ', ' '}))
		case 1:
			b.WriteRune(choice(gen.g, []rune{'#', '"', '\'', '\\'}))
		case 2:
			b.WriteRune(rune(gen.g.intRange(0x80, 0xd7ff)))
		case 3:
			b.WriteRune(rune(gen.g.intRange(0xe000, 0x10ffff)))
		default:
			b.WriteRune(rune(gen.g.intRange(0x21, 0x7e)))
		}
	}
	return b.String()
}

// genWSCommentNewline samples ws-comment-newline, the run used inside
// array syntax to separate elements across lines.
func (gen *Generator) genWSCommentNewline() string {
	n := gen.g.randExp(2, 0, 5)
	var b strings.Builder
	for i := 0; i < n; i++ {
		r := gen.g.intRange(0, 5)
		if r < 4 {
			b.WriteString(gen.genWS())
		}
		if r == 2 || r == 4 {
			b.WriteString(gen.genComment())
		}
		if r >= 2 {
			b.WriteString(gen.genNewline())
		}
	}
	return b.String()
}
