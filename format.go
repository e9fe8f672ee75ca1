package tomlrand

import "strings"

// escapeChars is the closed set of single-letter escape symbols TOML
// recognizes, keyed by codepoint.
var escapeChars = map[rune]string{
	0x08: "b",
	0x09: "t",
	0x0a: "n",
	0x0c: "f",
	0x0d: "r",
	0x22: `"`,
	0x5c: `\`,
}

// escapeOrder lists escapeChars' keys in a fixed order so a uniform pick
// over them is deterministic given the same draw.
var escapeOrder = []rune{0x08, 0x09, 0x0a, 0x0c, 0x0d, 0x22, 0x5c}

// spliceNumber randomly inserts underscores between adjacent digits of s,
// each gap independently at probability 0.1, matching the TOML grammar's
// digit ("_" digit)* rule: never at the start or end, never doubled.
func (g *rng) spliceNumber(s string) string {
	var b strings.Builder
	p := 0
	for i := 1; i < len(s); i++ {
		if g.uniform() < 0.1 {
			b.WriteString(s[p:i])
			b.WriteByte('_')
			p = i
		}
	}
	b.WriteString(s[p:])
	return b.String()
}

// isUnquotedKeyChar reports whether r may appear in a bare (unquoted) key.
func isUnquotedKeyChar(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// isLiteralStringSafe reports whether r is safe to place unescaped inside
// a literal string; the single quote is not.
func isLiteralStringSafe(r rune) bool {
	return r == 0x09 ||
		(r >= 0x20 && r <= 0x7e && r != '\'') ||
		(r >= 0x80 && r <= 0xd7ff) ||
		r >= 0xe000
}
