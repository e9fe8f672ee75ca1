package tomlrand

import (
	"strings"
	"testing"
)

func TestGenBasicStringIsQuoted(t *testing.T) {
	gen := NewGenerator(10, DefaultConfig())
	for i := 0; i < 100; i++ {
		doc, _ := gen.genBasicString()
		if !strings.HasPrefix(doc, `"`) || !strings.HasSuffix(doc, `"`) {
			t.Fatalf("genBasicString() = %q, want surrounded by double quotes", doc)
		}
	}
}

func TestGenLiteralStringNeverContainsRawQuote(t *testing.T) {
	gen := NewGenerator(11, DefaultConfig())
	for i := 0; i < 200; i++ {
		doc, _ := gen.genLiteralString()
		body := doc[1 : len(doc)-1]
		if strings.ContainsRune(body, '\'') {
			t.Fatalf("genLiteralString() body contains a literal quote: %q", doc)
		}
	}
}

func TestGenMLBasicStringNeverContainsTripleQuote(t *testing.T) {
	gen := NewGenerator(12, DefaultConfig())
	for i := 0; i < 100; i++ {
		doc, _ := gen.genMLBasicString()
		body := strings.TrimSuffix(strings.TrimPrefix(doc, `"""`), `"""`)
		if strings.Contains(body, `"""`) {
			t.Fatalf("genMLBasicString() body contains a triple quote: %q", doc)
		}
	}
}

func TestGenMLLiteralStringNeverContainsTripleQuote(t *testing.T) {
	gen := NewGenerator(13, DefaultConfig())
	for i := 0; i < 100; i++ {
		doc, _ := gen.genMLLiteralString()
		body := strings.TrimSuffix(strings.TrimPrefix(doc, `'''`), `'''`)
		if strings.Contains(body, `'''`) {
			t.Fatalf("genMLLiteralString() body contains a triple quote: %q", doc)
		}
	}
}

func TestGenUnicodeEscapeExcludesSurrogateRange(t *testing.T) {
	gen := NewGenerator(14, DefaultConfig())
	for i := 0; i < 500; i++ {
		_, r := gen.genUnicodeEscape()
		if r >= 0xd800 && r <= 0xdfff {
			t.Fatalf("genUnicodeEscape produced a surrogate codepoint %x", r)
		}
	}
}

func TestGenBasicCharEscapesAgreeWithEscapeTable(t *testing.T) {
	gen := NewGenerator(15, DefaultConfig())
	for i := 0; i < 500; i++ {
		doc, v := gen.genBasicChar()
		if strings.HasPrefix(doc, `\`) && len(doc) == 2 {
			sym, ok := escapeChars[v]
			if ok && doc[1:] != sym {
				t.Fatalf("genBasicChar escape %q does not match escapeChars[%q]=%q", doc, v, sym)
			}
		}
	}
}
