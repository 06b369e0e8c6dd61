package container

import "strconv"

// Container is a typed value store. The variant (Object or Array) is fixed
// at construction and never probed or coerced by any operation.
//
// Array elements are addressed by contiguous indexes 0..Len()-1 and stored
// under their decimal string keys, so shared machinery (iteration, merge,
// copy) works identically for both variants.
type Container struct {
	variant Variant
	entries map[string]*entry
	order   []string
	length  int  // Array element count.
	elem    Kind // Enforced element kind; KindInvalid means none.
}

// NewObject creates an empty object container.
func NewObject() *Container {
	return &Container{variant: Object, entries: make(map[string]*entry)}
}

// NewArray creates an empty array container with length zero.
func NewArray() *Container {
	return &Container{variant: Array, entries: make(map[string]*entry)}
}

// Variant returns the container shape.
func (c *Container) Variant() Variant { return c.variant }

// IsArray reports whether the container is an array.
func (c *Container) IsArray() bool { return c.variant == Array }

// IsObject reports whether the container is an object.
func (c *Container) IsObject() bool { return c.variant == Object }

// Len returns the number of live entries: the element count for arrays,
// the key count for objects. Hidden entries are included.
func (c *Container) Len() int {
	if c.variant == Array {
		return c.length
	}
	return len(c.order)
}

// Keys returns the entry keys in insertion order. For arrays these are the
// decimal index strings "0".."Len()-1".
func (c *Container) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Type returns the kind stored under key, or KindInvalid if the key holds
// no live entry.
func (c *Container) Type(key string) Kind {
	e, ok := c.entries[key]
	if !ok {
		return KindInvalid
	}
	return e.kind
}

// Has reports whether key holds a live, typed entry.
func (c *Container) Has(key string) bool {
	return c.Type(key) != KindInvalid
}

// String returns the string stored under key, or def if the key is absent
// or holds another kind.
func (c *Container) String(key, def string) string {
	if e, ok := c.entries[key]; ok && e.kind == KindString {
		return e.s
	}
	return def
}

// Int returns the integer stored under key, or def.
func (c *Container) Int(key string, def int64) int64 {
	if e, ok := c.entries[key]; ok && e.kind == KindInt {
		return e.i64
	}
	return def
}

// Float returns the float stored under key, or def.
func (c *Container) Float(key string, def float64) float64 {
	if e, ok := c.entries[key]; ok && e.kind == KindFloat {
		return e.f64
	}
	return def
}

// Bool returns the boolean stored under key, or def.
func (c *Container) Bool(key string, def bool) bool {
	if e, ok := c.entries[key]; ok && e.kind == KindBool {
		return e.b
	}
	return def
}

// Object returns the container referenced under key, or nil if the key is
// absent, holds another kind, or holds a nil reference.
func (c *Container) Object(key string) *Container {
	if e, ok := c.entries[key]; ok && e.kind == KindObject {
		return e.obj
	}
	return nil
}

// IsNull reports whether key holds an explicit null.
func (c *Container) IsNull(key string) bool {
	return c.Type(key) == KindNull
}

// IsHidden reports whether the entry under key carries the hidden flag.
// Hidden entries are skipped by the encoder but survive merge and copy.
func (c *Container) IsHidden(key string) bool {
	e, ok := c.entries[key]
	return ok && e.hidden
}

// SetHidden sets or clears the hidden flag on an existing entry.
func (c *Container) SetHidden(key string, hidden bool) error {
	e, ok := c.entries[key]
	if !ok {
		return ErrKeyNotFound
	}
	e.hidden = hidden
	return nil
}

// put installs an entry under key, preserving the position of an existing
// entry and appending new keys to the order.
func (c *Container) put(key string, e *entry) {
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = e
}

func (c *Container) setEntry(key string, e *entry) error {
	if c.variant != Object {
		return ErrNotObject
	}
	c.put(key, e)
	return nil
}

// SetString stores a string under key.
func (c *Container) SetString(key, v string) error {
	return c.setEntry(key, &entry{kind: KindString, s: v})
}

// SetInt stores an integer under key.
func (c *Container) SetInt(key string, v int64) error {
	return c.setEntry(key, &entry{kind: KindInt, i64: v})
}

// SetFloat stores a float under key.
func (c *Container) SetFloat(key string, v float64) error {
	return c.setEntry(key, &entry{kind: KindFloat, f64: v})
}

// SetBool stores a boolean under key.
func (c *Container) SetBool(key string, v bool) error {
	return c.setEntry(key, &entry{kind: KindBool, b: v})
}

// SetNull stores an explicit null under key.
func (c *Container) SetNull(key string) error {
	return c.setEntry(key, &entry{kind: KindNull})
}

// SetObject stores a reference to child under key. The child is aliased,
// not copied: attaching the same child to two parents is legal, and the
// caller is responsible for not cleaning it up through both. A nil child
// encodes as null.
func (c *Container) SetObject(key string, child *Container) error {
	return c.setEntry(key, &entry{kind: KindObject, obj: child})
}

// Remove deletes the entry under key together with its metadata and
// reports whether it existed. Removing from an array must go through
// RemoveIndex so the contiguity invariant holds.
func (c *Container) Remove(key string) bool {
	if c.variant == Array {
		i, err := strconv.Atoi(key)
		if err != nil {
			return false
		}
		return c.RemoveIndex(i)
	}

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the entry under key to toKey, overwriting any entry already
// stored there. The value, kind and hidden flag are preserved.
func (c *Container) Rename(key, toKey string) error {
	if c.variant != Object {
		return ErrNotObject
	}
	if key == toKey {
		return ErrSameKey
	}

	e, ok := c.entries[key]
	if !ok || e.kind == KindInvalid {
		return ErrKeyNotFound
	}

	c.put(toKey, e)
	c.Remove(key)
	return nil
}

// Equal reports structural equality: same variant, same entry count, and
// per-key equal kinds and values (recursively for nested containers).
// Object key order is not significant.
func (c *Container) Equal(other *Container) bool {
	if c == other {
		return true
	}
	if other == nil || c.variant != other.variant || len(c.order) != len(other.order) {
		return false
	}

	for key, e := range c.entries {
		oe, ok := other.entries[key]
		if !ok || !e.equal(oe) {
			return false
		}
	}
	return true
}
