package tomlrand

import "strings"

// genSimpleKey samples simple-key = quoted-key / unquoted-key.
func (gen *Generator) genSimpleKey() (string, string) {
	r := gen.g.uniform()
	if r < gen.cfg.ProbQuotedKey {
		if r < 0.5*gen.cfg.ProbQuotedKey {
			return gen.genBasicString()
		}
		return gen.genLiteralString()
	}
	return gen.genUnquotedKey()
}

// genUnquotedKey samples unquoted-key = 1*( ALPHA / DIGIT / "-" / "_" ).
func (gen *Generator) genUnquotedKey() (string, string) {
	n := gen.g.randExp(gen.cfg.MeanKeyLen, 1, gen.cfg.MaxKeyLen)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if gen.g.uniform() < 0.5 {
			b.WriteRune(choice(gen.g, []rune("0123456789-_")))
		} else {
			b.WriteRune(choice(gen.g, alphaChars))
		}
	}
	return b.String(), b.String()
}

var alphaChars = buildAlphaChars()

func buildAlphaChars() []rune {
	var out []rune
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, c)
	}
	return out
}

// formatSimpleKey re-renders a key segment whose text is already known
// (reused from elsewhere in the tree), making fresh randomized quoting
// decisions each time rather than caching a prior rendering.
func (gen *Generator) formatSimpleKey(key string) string {
	needQuote := len(key) == 0
	needBasic := false
	for _, c := range key {
		if !isUnquotedKeyChar(c) {
			needQuote = true
		}
		if !isLiteralStringSafe(c) {
			needBasic = true
		}
	}

	if !needQuote && gen.g.uniform() >= gen.cfg.ProbQuotedKey {
		return key
	}
	if !needBasic && gen.g.uniform() >= 0.5 {
		return "'" + key + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range key {
		needEscape := !(c == 0x09 || (c >= 0x20 && c <= 0x7e && c != '"' && c != '\\') ||
			(c >= 0x80 && c <= 0xd7ff) || c >= 0xe000)
		r := gen.g.uniform()
		if needEscape || r < gen.cfg.ProbEscapeChar {
			r = gen.g.uniform()
			if sym, ok := escapeChars[c]; ok && r < 0.5 {
				b.WriteByte('\\')
				b.WriteString(sym)
			} else if c < 0x10000 && r < 0.9 {
				b.WriteString(`\u` + gen.g.formatHex(uint64(c), 4))
			} else {
				b.WriteString(`\U` + gen.g.formatHex(uint64(c), 8))
			}
		} else {
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatKey renders every segment of key via formatSimpleKey, joined by
// freshly whitespace-padded dots.
func (gen *Generator) formatKey(key Key) string {
	var b strings.Builder
	for i, seg := range key {
		if i > 0 {
			b.WriteString(gen.genWS())
			b.WriteByte('.')
			b.WriteString(gen.genWS())
		}
		b.WriteString(gen.formatSimpleKey(seg))
	}
	return b.String()
}

// genDottedKey samples a key of one or more dot-separated simple-keys: it
// appends 1..MaxDottedLen fresh segments to prefix (rendered fresh), so
// with an empty prefix the result may be a single simple-key.
func (gen *Generator) genDottedKey(prefix Key) (string, Key) {
	key := prefix.clone()
	var b strings.Builder
	for i, seg := range prefix {
		if i > 0 {
			b.WriteString(gen.genWS())
			b.WriteByte('.')
			b.WriteString(gen.genWS())
		}
		b.WriteString(gen.formatSimpleKey(seg))
	}

	n := gen.g.intRange(1, gen.cfg.MaxDottedLen)
	for i := 0; i < n; i++ {
		if len(key) > 0 {
			b.WriteString(gen.genWS())
			b.WriteByte('.')
			b.WriteString(gen.genWS())
		}
		s, k := gen.genSimpleKey()
		b.WriteString(s)
		key = append(key, k)
	}

	return b.String(), key
}

// genKey samples key = simple-key / dotted-key subject to four constraint
// sets: exclude_prefix and exclude_key forbid the corresponding candidate
// keys outright; reuse_prefix and reuse_key bias toward extending or
// repeating an already-assigned path.
func (gen *Generator) genKey(excludePrefix, excludeKey keySet, reusePrefix, reuseKey []Key) (string, Key) {
	var prefix Key
	if (len(reusePrefix) > 0 || len(reuseKey) > 0) && gen.g.uniform() < gen.cfg.ProbExistingKey {
		n := len(reusePrefix) + len(reuseKey)
		r := gen.g.intRange(0, n-1)
		if r < len(reuseKey) {
			key := reuseKey[r]
			return gen.formatKey(key), key
		}
		prefix = reusePrefix[r-len(reuseKey)]
	}

	for attempt := 0; ; attempt++ {
		keyStr, key := gen.genDottedKey(prefix)
		blocked := excludeKey.contains(key) || excludePrefix.containsPrefixOf(key)
		if !blocked {
			return keyStr, key
		}
		if attempt < gen.cfg.MaxKeyRetries {
			continue
		}
		// Retry budget exhausted: widen with a guaranteed-fresh extra
		// segment so the loop is guaranteed to terminate.
		s, extra := gen.genSimpleKey()
		key = append(key, extra)
		keyStr += gen.genWS() + "." + gen.genWS() + s
		if !excludeKey.contains(key) && !excludePrefix.containsPrefixOf(key) {
			return keyStr, key
		}
	}
}

// genKeyval samples keyval = key keyval-sep val and assigns the sampled
// value into ctx's active table.
func (gen *Generator) genKeyval(ctx *Context) string {
	itemKeys := keySet(ctx.ActiveItemKeys())
	itemPrefixes := keySet(ctx.ActiveItemPrefixes())
	tableKeys := keySet(ctx.ActiveSubtableKeys())

	excludePrefix := append(append(keySet{}, itemKeys...), tableKeys...)
	excludeKey := append(append(append(keySet{}, itemKeys...), itemPrefixes...), tableKeys...)

	keyStr, key := gen.genKey(excludePrefix, excludeKey, []Key(itemPrefixes), nil)
	valStr, val := gen.genVal()
	ws1 := gen.genWS()
	ws2 := gen.genWS()
	gen.trace("ASSIGN %v %v", key, val)
	ctx.Assign(key, val)
	return keyStr + ws1 + "=" + ws2 + valStr
}

// genTable samples table = std-table / array-table.
func (gen *Generator) genTable(ctx *Context) string {
	if gen.g.intRange(0, 1) > 0 {
		return gen.genArrayTable(ctx)
	}
	return gen.genStdTable(ctx)
}

func (gen *Generator) genArrayTable(ctx *Context) string {
	itemKeys := keySet(ctx.AllItemKeys())
	falseVal := false
	tableKeys := keySet(ctx.AllTableKeys(TableKeyFilter{Array: &falseVal}))
	trueVal := true
	arrayKeys := keySet(ctx.AllTableKeys(TableKeyFilter{Array: &trueVal}))

	excludePrefix := itemKeys
	excludeKey := append(append(keySet{}, itemKeys...), tableKeys...)
	reusePrefix := append(append([]Key{}, tableKeys...), arrayKeys...)

	keyStr, key := gen.genKey(excludePrefix, excludeKey, reusePrefix, []Key(arrayKeys))
	gen.trace("OPEN ARRAY %v", key)
	ctx.OpenTableArray(key)
	return "[[" + gen.genWS() + keyStr + gen.genWS() + "]]"
}

func (gen *Generator) genStdTable(ctx *Context) string {
	itemKeys := keySet(ctx.AllItemKeys())
	definedFalse, definedTrue := false, true
	arrayFalse, arrayTrue := false, true
	implicitTableKeys := keySet(ctx.AllTableKeys(TableKeyFilter{Defined: &definedFalse, Array: &arrayFalse}))
	definedTableKeys := keySet(ctx.AllTableKeys(TableKeyFilter{Defined: &definedTrue, Array: &arrayFalse}))
	arrayKeys := keySet(ctx.AllTableKeys(TableKeyFilter{Array: &arrayTrue}))

	excludePrefix := itemKeys
	excludeKey := append(append(append(keySet{}, itemKeys...), definedTableKeys...), arrayKeys...)
	reusePrefix := append(append([]Key{}, implicitTableKeys...), definedTableKeys...)

	keyStr, key := gen.genKey(excludePrefix, excludeKey, reusePrefix, []Key(implicitTableKeys))
	gen.trace("OPEN TABLE %v", key)
	ctx.OpenTable(key)
	return "[" + gen.genWS() + keyStr + gen.genWS() + "]"
}
