package tomlrand

import "strings"

// genArray samples array = "[" [ array-values ] ws-comment-newline "]".
// Element types need not be homogeneous.
func (gen *Generator) genArray() (string, Value) {
	n := gen.g.randExp(gen.cfg.MeanArrayElems, 0, gen.cfg.MaxArrayElems)
	var b strings.Builder
	val := make(Array, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(gen.genWSCommentNewline())
			b.WriteByte(',')
		}
		b.WriteString(gen.genWSCommentNewline())
		s, v := gen.genVal()
		b.WriteString(s)
		val = append(val, v)
	}
	if n > 0 && gen.g.uniform() < 0.5 {
		b.WriteString(gen.genWSCommentNewline())
		b.WriteByte(',')
	}
	b.WriteString(gen.genWSCommentNewline())
	return "[" + b.String() + "]", val
}

// genInlineTable samples inline-table = "{" ws [ inline-table-keyvals ] ws
// "}". Uniqueness is enforced locally: a scratch set of keys/prefixes
// tracks what this inline table has assigned so far, independent of the
// enclosing Context.
func (gen *Generator) genInlineTable() (string, Value) {
	n := gen.g.randExp(gen.cfg.MeanArrayElems, 0, gen.cfg.MaxArrayElems)
	var b strings.Builder
	tbl := NewInlineTable()

	var itemKeys, itemPrefixes keySet
	for i := 0; i < n; i++ {
		keyStr, key := gen.genKey(itemKeys, append(append(keySet{}, itemKeys...), itemPrefixes...), []Key(itemPrefixes), nil)
		valStr, v := gen.genVal()

		if i > 0 {
			b.WriteString(gen.genWS())
			b.WriteByte(',')
		}
		b.WriteString(gen.genWS())
		b.WriteString(keyStr)
		b.WriteString(gen.genWS())
		b.WriteByte('=')
		b.WriteString(gen.genWS())
		b.WriteString(valStr)

		itemKeys = append(itemKeys, key)
		for i := 1; i < len(key); i++ {
			if !itemPrefixes.contains(key[:i]) {
				itemPrefixes = append(itemPrefixes, key[:i])
			}
		}
		setNestedInline(tbl, key, v)
	}

	b.WriteString(gen.genWS())
	return "{" + b.String() + "}", tbl
}

// setNestedInline assigns value at key within tbl, materializing any
// missing intermediate inline tables.
func setNestedInline(tbl *InlineTable, key Key, value Value) {
	cur := tbl
	for _, seg := range key[:len(key)-1] {
		existing, ok := cur.Values[seg]
		if !ok {
			sub := NewInlineTable()
			cur.Set(seg, sub)
			cur = sub
			continue
		}
		sub, ok := existing.(*InlineTable)
		if !ok {
			panic("tomlrand: inline table key traverses a non-table value")
		}
		cur = sub
	}
	cur.Set(key[len(key)-1], value)
}
