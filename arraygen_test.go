package tomlrand

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestGenArraySurfaceBracketsMatchValueLength(t *testing.T) {
	gen := NewGenerator(50, DefaultConfig())
	for i := 0; i < 100; i++ {
		doc, v := gen.genArray()
		arr := v.(Array)
		if doc[0] != '[' || doc[len(doc)-1] != ']' {
			t.Fatalf("genArray() = %q, want brackets", doc)
		}
		_ = arr
	}
}

func TestGenInlineTableSurfaceBracesMatchValue(t *testing.T) {
	gen := NewGenerator(51, DefaultConfig())
	for i := 0; i < 100; i++ {
		doc, v := gen.genInlineTable()
		_, ok := v.(*InlineTable)
		qt.Assert(t, qt.IsTrue(ok))
		if doc[0] != '{' || doc[len(doc)-1] != '}' {
			t.Fatalf("genInlineTable() = %q, want braces", doc)
		}
	}
}

func TestGenInlineTableKeysAreUnique(t *testing.T) {
	gen := NewGenerator(52, DefaultConfig())
	for i := 0; i < 200; i++ {
		_, v := gen.genInlineTable()
		tbl := v.(*InlineTable)
		seen := map[string]bool{}
		for _, k := range tbl.Keys {
			if seen[k] {
				t.Fatalf("genInlineTable produced duplicate top-level key %q", k)
			}
			seen[k] = true
		}
	}
}

func TestSetNestedInlineCreatesIntermediateTables(t *testing.T) {
	tbl := NewInlineTable()
	setNestedInline(tbl, Key{"a", "b", "c"}, Bool(true))

	a, ok := tbl.Values["a"].(*InlineTable)
	qt.Assert(t, qt.IsTrue(ok))
	b, ok := a.Values["b"].(*InlineTable)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b.Values["c"], Value(Bool(true))))
}

func TestSetNestedInlinePreservesEarlierSiblingAfterAppend(t *testing.T) {
	tbl := NewInlineTable()
	setNestedInline(tbl, Key{"a", "x"}, Bool(true))
	setNestedInline(tbl, Key{"a", "y"}, Bool(false))

	a := tbl.Values["a"].(*InlineTable)
	qt.Assert(t, qt.DeepEquals(a.Keys, []string{"x", "y"}))
	qt.Assert(t, qt.Equals(a.Values["x"], Value(Bool(true))))
	qt.Assert(t, qt.Equals(a.Values["y"], Value(Bool(false))))
}
