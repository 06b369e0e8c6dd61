package container

import "strconv"

func indexKey(i int) string { return strconv.Itoa(i) }

// HasIndex reports whether i addresses a live element. This is an O(1)
// range check against the array length, not a map lookup.
func (c *Container) HasIndex(i int) bool {
	return c.variant == Array && i >= 0 && i < c.length
}

// TypeAt returns the kind of element i, or KindInvalid when out of range.
func (c *Container) TypeAt(i int) Kind {
	if !c.HasIndex(i) {
		return KindInvalid
	}
	return c.Type(indexKey(i))
}

// StringAt returns element i as a string, or def.
func (c *Container) StringAt(i int, def string) string {
	return c.String(indexKey(i), def)
}

// IntAt returns element i as an integer, or def.
func (c *Container) IntAt(i int, def int64) int64 {
	return c.Int(indexKey(i), def)
}

// FloatAt returns element i as a float, or def.
func (c *Container) FloatAt(i int, def float64) float64 {
	return c.Float(indexKey(i), def)
}

// BoolAt returns element i as a boolean, or def.
func (c *Container) BoolAt(i int, def bool) bool {
	return c.Bool(indexKey(i), def)
}

// ObjectAt returns the container referenced by element i, or nil.
func (c *Container) ObjectAt(i int) *Container {
	return c.Object(indexKey(i))
}

// IsNullAt reports whether element i is an explicit null.
func (c *Container) IsNullAt(i int) bool {
	return c.IsNull(indexKey(i))
}

// ElemKind returns the enforced element kind, or KindInvalid when the
// array is heterogeneous.
func (c *Container) ElemKind() Kind { return c.elem }

// CanUseElemKind reports whether enforcement of k could be applied now,
// i.e. every current element already holds kind k.
func (c *Container) CanUseElemKind(k Kind) bool {
	if c.variant != Array {
		return false
	}
	for i := 0; i < c.length; i++ {
		if c.entries[indexKey(i)].kind != k {
			return false
		}
	}
	return true
}

// SetElemKind enforces element kind k for all current and future
// elements. Enforcement is rejected, leaving the array unchanged, unless
// every existing element already matches. Passing KindInvalid clears
// enforcement.
func (c *Container) SetElemKind(k Kind) error {
	if c.variant != Array {
		return ErrNotArray
	}
	if k == KindInvalid {
		c.elem = KindInvalid
		return nil
	}
	if !c.CanUseElemKind(k) {
		return ErrKindEnforced
	}
	c.elem = k
	return nil
}

func (c *Container) checkElem(k Kind) error {
	if c.elem != KindInvalid && k != c.elem {
		return ErrKindEnforced
	}
	return nil
}

func (c *Container) setEntryAt(i int, e *entry) error {
	if c.variant != Array {
		return ErrNotArray
	}
	if !c.HasIndex(i) {
		return ErrIndexOutOfRange
	}
	if err := c.checkElem(e.kind); err != nil {
		return err
	}
	c.entries[indexKey(i)] = e
	return nil
}

// SetStringAt replaces element i with a string.
func (c *Container) SetStringAt(i int, v string) error {
	return c.setEntryAt(i, &entry{kind: KindString, s: v})
}

// SetIntAt replaces element i with an integer.
func (c *Container) SetIntAt(i int, v int64) error {
	return c.setEntryAt(i, &entry{kind: KindInt, i64: v})
}

// SetFloatAt replaces element i with a float.
func (c *Container) SetFloatAt(i int, v float64) error {
	return c.setEntryAt(i, &entry{kind: KindFloat, f64: v})
}

// SetBoolAt replaces element i with a boolean.
func (c *Container) SetBoolAt(i int, v bool) error {
	return c.setEntryAt(i, &entry{kind: KindBool, b: v})
}

// SetNullAt replaces element i with an explicit null.
func (c *Container) SetNullAt(i int) error {
	return c.setEntryAt(i, &entry{kind: KindNull})
}

// SetObjectAt replaces element i with a reference to child (aliased, see
// SetObject).
func (c *Container) SetObjectAt(i int, child *Container) error {
	return c.setEntryAt(i, &entry{kind: KindObject, obj: child})
}

// IsHiddenAt reports whether element i carries the hidden flag.
func (c *Container) IsHiddenAt(i int) bool {
	return c.IsHidden(indexKey(i))
}

// SetHiddenAt sets or clears the hidden flag on element i.
func (c *Container) SetHiddenAt(i int, hidden bool) error {
	if !c.HasIndex(i) {
		return ErrIndexOutOfRange
	}
	return c.SetHidden(indexKey(i), hidden)
}

// push appends the entry at the current length. On an enforcement
// rejection nothing grows: no index is reserved for a failed append.
func (c *Container) push(e *entry) (int, error) {
	if c.variant != Array {
		return -1, ErrNotArray
	}
	if err := c.checkElem(e.kind); err != nil {
		return -1, err
	}

	i := c.length
	c.put(indexKey(i), e)
	c.length++
	return i, nil
}

// PushString appends a string and returns its index.
func (c *Container) PushString(v string) (int, error) {
	return c.push(&entry{kind: KindString, s: v})
}

// PushInt appends an integer and returns its index.
func (c *Container) PushInt(v int64) (int, error) {
	return c.push(&entry{kind: KindInt, i64: v})
}

// PushFloat appends a float and returns its index.
func (c *Container) PushFloat(v float64) (int, error) {
	return c.push(&entry{kind: KindFloat, f64: v})
}

// PushBool appends a boolean and returns its index.
func (c *Container) PushBool(v bool) (int, error) {
	return c.push(&entry{kind: KindBool, b: v})
}

// PushNull appends an explicit null and returns its index.
func (c *Container) PushNull() (int, error) {
	return c.push(&entry{kind: KindNull})
}

// PushObject appends a reference to child (aliased, see SetObject) and
// returns its index.
func (c *Container) PushObject(child *Container) (int, error) {
	return c.push(&entry{kind: KindObject, obj: child})
}

// RemoveIndex deletes element i, shifts every following element down by
// one and decrements the length. The shift makes this O(n) in the number
// of trailing elements.
func (c *Container) RemoveIndex(i int) bool {
	if !c.HasIndex(i) {
		return false
	}

	for j := i + 1; j < c.length; j++ {
		c.entries[indexKey(j-1)] = c.entries[indexKey(j)]
	}
	delete(c.entries, indexKey(c.length-1))
	c.order = c.order[:c.length-1]
	c.length--
	return true
}

// IndexOf returns the index of the first element equal to v, or -1.
// Accepted value types are string, int, int64, float64, bool, nil and
// *Container (matched by reference).
func (c *Container) IndexOf(v any) int {
	if c.variant != Array {
		return -1
	}
	for i := 0; i < c.length; i++ {
		if c.entries[indexKey(i)].matches(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether the array holds an element equal to v.
func (c *Container) Contains(v any) bool {
	return c.IndexOf(v) >= 0
}

// IndexOfString returns the index of the first string element equal to s,
// or -1. Linear scan, first match wins.
func (c *Container) IndexOfString(s string) int {
	if c.variant != Array {
		return -1
	}
	for i := 0; i < c.length; i++ {
		e := c.entries[indexKey(i)]
		if e.kind == KindString && e.s == s {
			return i
		}
	}
	return -1
}

// ContainsString reports whether the array holds the string s.
func (c *Container) ContainsString(s string) bool {
	return c.IndexOfString(s) >= 0
}
