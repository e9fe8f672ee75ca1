package tomlrand

import "sort"

// child is one of *tableNode, *tableArrayNode, or a Value, held by a
// tableNode keyed by segment. It is modeled as an interface over three
// concrete kinds rather than a class hierarchy, matching the tagged-variant
// approach called out for re-architecture: a walk only ever needs a type
// switch, never a virtual dispatch.
type child interface {
	isChild()
}

// tableNode is a mutable tree node: a mapping from key segment to child,
// plus the two flags that drive every tree-model invariant.
type tableNode struct {
	elems   map[string]child
	order   []string
	defined bool
	dotted  bool
}

func (*tableNode) isChild() {}

func newTableNode(defined, dotted bool) *tableNode {
	return &tableNode{elems: make(map[string]child), defined: defined, dotted: dotted}
}

func (t *tableNode) set(seg string, c child) {
	if _, exists := t.elems[seg]; !exists {
		t.order = append(t.order, seg)
	}
	t.elems[seg] = c
}

// tableArrayNode is a non-empty list of tableNode elements (the "array of
// tables"); descendants always target the last element.
type tableArrayNode struct {
	elems []*tableNode
}

func (*tableArrayNode) isChild() {}

func (a *tableArrayNode) active() *tableNode {
	return a.elems[len(a.elems)-1]
}

// leafChild wraps a Value so it satisfies child.
type leafChild struct{ v Value }

func (leafChild) isChild() {}

// Context holds the root table plus a reference to the currently active
// table (where subsequent key/value assignments land). It is the single
// owner of every tableNode/tableArrayNode created during generation; the
// active-table handle never outlives the Context that produced it.
type Context struct {
	root   *tableNode
	active *tableNode
}

// NewContext returns a fresh Context with an empty, defined root table.
func NewContext() *Context {
	root := newTableNode(true, false)
	return &Context{root: root, active: root}
}

// resolveContainer walks tbl through key, creating any missing ancestor as
// a Table with the given dotted flag, and panics if the path traverses a
// Value or a non-array Table collision. It never creates the terminal
// segment itself; callers handle that one specially.
func resolveContainer(tbl *tableNode, key Key, dotted bool) *tableNode {
	cur := tbl
	for _, seg := range key {
		existing, ok := cur.elems[seg]
		if !ok {
			next := newTableNode(dotted, dotted)
			cur.set(seg, next)
			cur = next
			continue
		}
		switch v := existing.(type) {
		case *tableNode:
			cur = v
		case *tableArrayNode:
			cur = v.active()
		case leafChild:
			panic("tomlrand: key path traverses a value at segment " + seg)
		default:
			panic("tomlrand: unreachable child kind")
		}
	}
	return cur
}

// OpenTable implements open_table: define and activate a table, creating
// missing ancestors along the way. Panics if key already names a defined
// table, a table-array, or traverses a value — the key sampler must never
// offer such a key.
func (c *Context) OpenTable(key Key) {
	if len(key) == 0 {
		panic("tomlrand: OpenTable requires a non-empty key")
	}
	parent := resolveContainer(c.root, key[:len(key)-1], false)
	last := key[len(key)-1]
	existing, ok := parent.elems[last]
	if !ok {
		next := newTableNode(false, false)
		parent.set(last, next)
		existing = next
	}
	tbl, ok := existing.(*tableNode)
	if !ok {
		panic("tomlrand: OpenTable target is not a table")
	}
	if tbl.defined {
		panic("tomlrand: OpenTable would redefine a defined table")
	}
	if tbl.dotted {
		panic("tomlrand: OpenTable target was created by a dotted key")
	}
	tbl.defined = true
	c.active = tbl
}

// OpenTableArray implements open_table_array: append a fresh table to the
// named array (creating the array if absent) and activate it.
func (c *Context) OpenTableArray(key Key) {
	if len(key) == 0 {
		panic("tomlrand: OpenTableArray requires a non-empty key")
	}
	parent := resolveContainer(c.root, key[:len(key)-1], false)
	last := key[len(key)-1]
	existing, ok := parent.elems[last]
	if !ok {
		arr := &tableArrayNode{}
		parent.set(last, arr)
		existing = arr
	}
	arr, ok := existing.(*tableArrayNode)
	if !ok {
		panic("tomlrand: OpenTableArray target is not a table array")
	}
	arr.elems = append(arr.elems, newTableNode(false, false))
	c.active = arr.active()
}

// Assign implements assign: insert a key-value element into the active
// table, materializing dotted-table ancestors along the way. Panics if the
// full key already names a child of the active table.
func (c *Context) Assign(key Key, value Value) {
	if len(key) == 0 {
		panic("tomlrand: Assign requires a non-empty key")
	}
	tbl := resolveContainer(c.active, key[:len(key)-1], true)
	last := key[len(key)-1]
	if _, exists := tbl.elems[last]; exists {
		panic("tomlrand: Assign would redefine key segment " + last)
	}
	tbl.set(last, leafChild{v: value})
}

// ActiveItemKeys returns every fully-assigned leaf path in the active
// table, sorted for reproducibility.
func (c *Context) ActiveItemKeys() []Key {
	var keys []Key
	collectItemKeys(c.active, nil, &keys)
	return sortedKeys(keys)
}

func collectItemKeys(tbl *tableNode, prefix Key, out *[]Key) {
	for _, seg := range tbl.order {
		path := append(prefix.clone(), seg)
		switch v := tbl.elems[seg].(type) {
		case *tableNode:
			collectItemKeys(v, path, out)
		case *tableArrayNode:
			collectItemKeys(v.active(), path, out)
		case leafChild:
			*out = append(*out, path)
		}
	}
}

// ActiveItemPrefixes returns every dotted-table prefix within the active
// table — candidates that may legally be reused as a dotted-key prefix.
func (c *Context) ActiveItemPrefixes() []Key {
	var keys []Key
	collectDottedPrefixes(c.active, nil, &keys)
	return sortedKeys(keys)
}

func collectDottedPrefixes(tbl *tableNode, prefix Key, out *[]Key) {
	for _, seg := range tbl.order {
		if v, ok := tbl.elems[seg].(*tableNode); ok && v.dotted {
			path := append(prefix.clone(), seg)
			*out = append(*out, path)
			collectDottedPrefixes(v, path, out)
		}
	}
}

// ActiveSubtableKeys returns the direct children of the active table that
// are non-dotted Tables or TableArrays.
func (c *Context) ActiveSubtableKeys() []Key {
	var keys []Key
	for _, seg := range c.active.order {
		switch v := c.active.elems[seg].(type) {
		case *tableNode:
			if !v.dotted {
				keys = append(keys, Key{seg})
			}
		case *tableArrayNode:
			keys = append(keys, Key{seg})
		}
	}
	return sortedKeys(keys)
}

// AllItemKeys returns every fully-assigned leaf path anywhere in the tree.
func (c *Context) AllItemKeys() []Key {
	var keys []Key
	collectItemKeys(c.root, nil, &keys)
	return sortedKeys(keys)
}

// TableKeyFilter selects which table keys AllTableKeys reports.
type TableKeyFilter struct {
	// Defined, when non-nil, restricts results to tables whose defined
	// flag equals *Defined.
	Defined *bool
	// Array, when non-nil, restricts results to table-arrays (*Array
	// true) or non-array tables (*Array false).
	Array *bool
}

// AllTableKeys returns every table-or-table-array key in the whole tree
// matching filter.
func (c *Context) AllTableKeys(filter TableKeyFilter) []Key {
	var keys []Key
	collectTableKeys(c.root, nil, filter, &keys)
	return sortedKeys(keys)
}

func collectTableKeys(tbl *tableNode, prefix Key, filter TableKeyFilter, out *[]Key) {
	for _, seg := range tbl.order {
		path := append(prefix.clone(), seg)
		switch v := tbl.elems[seg].(type) {
		case *tableNode:
			if (filter.Array == nil || !*filter.Array) &&
				(filter.Defined == nil || *filter.Defined == v.defined) {
				*out = append(*out, path)
			}
			collectTableKeys(v, path, filter, out)
		case *tableArrayNode:
			if filter.Array == nil || *filter.Array {
				*out = append(*out, path)
			}
			collectTableKeys(v.active(), path, filter, out)
		}
	}
}

func sortedKeys(keys []Key) []Key {
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return keys
}

// Finalize recursively converts the tree into a plain Value: tableNodes
// become InlineTables, tableArrayNodes become Arrays of InlineTables.
// Calling Finalize twice yields equal values since it only reads the tree.
func (c *Context) Finalize() Value {
	return finalizeTable(c.root)
}

func finalizeTable(tbl *tableNode) Value {
	out := NewInlineTable()
	for _, seg := range tbl.order {
		switch v := tbl.elems[seg].(type) {
		case *tableNode:
			out.Set(seg, finalizeTable(v))
		case *tableArrayNode:
			arr := make(Array, 0, len(v.elems))
			for _, e := range v.elems {
				arr = append(arr, finalizeTable(e))
			}
			out.Set(seg, arr)
		case leafChild:
			out.Set(seg, v.v)
		}
	}
	return out
}
