package tomlrand

import "strings"

// genString samples string = ml-basic-string / basic-string
// / ml-literal-string / literal-string, uniformly.
func (gen *Generator) genString() (string, string) {
	switch gen.g.intRange(0, 3) {
	case 0:
		return gen.genMLBasicString()
	case 1:
		return gen.genBasicString()
	case 2:
		return gen.genMLLiteralString()
	default:
		return gen.genLiteralString()
	}
}

// genBasicString samples basic-string = %x22 *basic-char %x22.
func (gen *Generator) genBasicString() (string, string) {
	n := gen.g.randExp(gen.cfg.MeanStringLen, 0, gen.cfg.MaxStringLen)
	var doc, val strings.Builder
	for i := 0; i < n; i++ {
		d, v := gen.genBasicChar()
		doc.WriteString(d)
		val.WriteRune(v)
	}
	return `"` + doc.String() + `"`, val.String()
}

// genBasicChar samples basic-char = basic-unescaped / escaped.
func (gen *Generator) genBasicChar() (string, rune) {
	r := gen.g.uniform()
	switch {
	case r < 0.5*gen.cfg.ProbEscapeChar:
		c := choice(gen.g, escapeOrder)
		return `\` + escapeChars[c], c
	case r < gen.cfg.ProbEscapeChar:
		return gen.genUnicodeEscape()
	default:
		return gen.genBasicUnescaped()
	}
}

// genUnicodeEscape samples a \uXXXX or \UXXXXXXXX escape of a random
// scalar value, excluding the surrogate range.
func (gen *Generator) genUnicodeEscape() (string, rune) {
	r := gen.g.uniform()
	var c int
	if r < 0.5 {
		c = gen.g.intRange(0, 0xd7ff)
	} else {
		c = gen.g.intRange(0xe000, 0x10ffff)
	}
	if c < 0x10000 && r < 0.9 {
		h := gen.g.formatHex(uint64(c), 4)
		return `\u` + h, rune(c)
	}
	h := gen.g.formatHex(uint64(c), 8)
	return `\U` + h, rune(c)
}

// genBasicUnescaped samples a raw basic-unescaped character, biased
// toward printable ASCII.
func (gen *Generator) genBasicUnescaped() (string, rune) {
	r := gen.g.uniform()
	var c int
	switch {
	case r < 0.1:
		c = gen.g.intRange(0x20, 0x2f)
		if c == 0x22 {
			c = 0x09
		}
	case r < 0.8:
		c = gen.g.intRange(0x30, 0x7e)
		if c == 0x5c {
			c = 0x41
		}
	case r < 0.9:
		c = gen.g.intRange(0x80, 0xd7ff)
	default:
		c = gen.g.intRange(0xe000, 0x10ffff)
	}
	return string(rune(c)), rune(c)
}

// genLiteralString samples literal-string = %x27 *literal-char %x27.
func (gen *Generator) genLiteralString() (string, string) {
	n := gen.g.randExp(gen.cfg.MeanStringLen, 0, gen.cfg.MaxStringLen)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(gen.genLiteralChar())
	}
	return "'" + b.String() + "'", b.String()
}

// genLiteralChar samples literal-char.
func (gen *Generator) genLiteralChar() rune {
	r := gen.g.uniform()
	var c int
	switch {
	case r < 0.1:
		c = gen.g.intRange(0x20, 0x2f)
		if c == 0x27 {
			c = 0x09
		}
	case r < 0.8:
		c = gen.g.intRange(0x30, 0x7e)
	case r < 0.9:
		c = gen.g.intRange(0x80, 0xd7ff)
	default:
		c = gen.g.intRange(0xe000, 0x10ffff)
	}
	return rune(c)
}

// genMLBasicString samples a multiline basic string, guarding against a
// literal triple-quote appearing in the body and against whitespace right
// after a line-continuation.
func (gen *Generator) genMLBasicString() (string, string) {
	n := gen.g.randExp(gen.cfg.MeanMLStringLen, 0, gen.cfg.MaxMLStringLen)
	var doc, val strings.Builder
	if gen.g.intRange(0, 1) > 0 {
		doc.WriteString(gen.genNewline())
	}
	allowQuote := true
	allowWhitespace := true
	haveVal := false
	for i := 0; i < n; i++ {
		r := gen.g.uniform()
		if allowQuote && r < gen.cfg.ProbMLQuote {
			doc.WriteByte('"')
			val.WriteByte('"')
			if r < 0.5*gen.cfg.ProbMLQuote {
				doc.WriteByte('"')
				val.WriteByte('"')
			}
			allowQuote = false
			allowWhitespace = true
			continue
		}
		allowQuote = true

		r = gen.g.uniform()
		switch {
		case r < gen.cfg.ProbMLNewline && haveVal && allowWhitespace:
			doc.WriteString(gen.genNewline())
			val.WriteByte('\n')
		case r < gen.cfg.ProbMLNewline+gen.cfg.ProbMLEscapedNewline:
			doc.WriteByte('\\')
			doc.WriteString(gen.genWS())
			doc.WriteString(gen.genNewline())
			for k := gen.g.intRange(0, 2); k > 0; k-- {
				doc.WriteString(gen.genWS())
				doc.WriteString(gen.genNewline())
			}
			doc.WriteString(gen.genWS())
			allowWhitespace = false
		default:
			var d string
			var v rune
			for {
				d, v = gen.genBasicChar()
				if allowWhitespace || (d != "\t" && d != " ") {
					break
				}
			}
			doc.WriteString(d)
			val.WriteRune(v)
			allowWhitespace = true
			// An escaped quote still puts a '"' in the body text, so it
			// must not be followed by raw quotes either.
			allowQuote = d != `\"`
		}
		haveVal = true
	}
	return `"""` + doc.String() + `"""`, val.String()
}

// genMLLiteralString samples a multiline literal string with the same
// triple-quote guard as genMLBasicString.
func (gen *Generator) genMLLiteralString() (string, string) {
	n := gen.g.randExp(gen.cfg.MeanMLStringLen, 0, gen.cfg.MaxMLStringLen)
	var doc, val strings.Builder
	if gen.g.intRange(0, 1) > 0 {
		doc.WriteString(gen.genNewline())
	}
	allowQuote := true
	haveVal := false
	for i := 0; i < n; i++ {
		r := gen.g.uniform()
		if allowQuote && r < gen.cfg.ProbMLQuote {
			doc.WriteByte('\'')
			val.WriteByte('\'')
			if r < 0.5*gen.cfg.ProbMLQuote {
				doc.WriteByte('\'')
				val.WriteByte('\'')
			}
			allowQuote = false
			continue
		}
		allowQuote = true

		r = gen.g.uniform()
		if r < gen.cfg.ProbMLNewline && haveVal {
			doc.WriteString(gen.genNewline())
			val.WriteByte('\n')
		} else {
			c := gen.genLiteralChar()
			doc.WriteRune(c)
			val.WriteRune(c)
		}
		haveVal = true
	}
	return "'''" + doc.String() + "'''", val.String()
}
