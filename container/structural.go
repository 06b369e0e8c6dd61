package container

// MergeOptions controls Merge behavior.
type MergeOptions struct {
	// Replace overwrites keys that already exist in the destination.
	// Enabled by default; when disabled, existing keys are skipped.
	Replace bool

	// Cleanup recursively destroys a replaced nested container before the
	// overwrite, so repeated merges into the same destination do not
	// accumulate detached subtrees. Only meaningful together with Replace,
	// and only when old and new values are distinct container references.
	Cleanup bool
}

// DefaultMergeOptions are the options used when Merge is called without
// mutators.
var DefaultMergeOptions = MergeOptions{
	Replace: true,
	Cleanup: false,
}

// Merge copies every entry of src into c. Arrays append, objects insert
// or overwrite per the Replace option. Nested containers are aliased, not
// duplicated, and the hidden flag travels with each entry.
//
// Merging an object into an array (or vice versa) fails up front with
// ErrVariantMismatch and leaves c untouched. A failure on an individual
// element write (array kind enforcement) aborts the merge but does not
// roll back entries already applied.
func (c *Container) Merge(src *Container, optFns ...func(o *MergeOptions)) error {
	opts := DefaultMergeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if src == nil {
		return nil
	}
	if c.variant != src.variant {
		return ErrVariantMismatch
	}

	if c.variant == Array {
		for _, key := range src.order {
			if _, err := c.push(src.entries[key].clone()); err != nil {
				return err
			}
		}
		return nil
	}

	for _, key := range src.order {
		old, exists := c.entries[key]
		if exists && !opts.Replace {
			continue
		}
		if exists && opts.Cleanup && old.kind == KindObject && old.obj != nil && old.obj != src.entries[key].obj {
			old.obj.Cleanup()
		}
		c.put(key, src.entries[key].clone())
	}
	return nil
}

// ShallowCopy returns a new container of the same variant holding copies
// of every entry. Nested container references are shared with the source:
// mutating a nested object through the copy mutates the source's child.
func (c *Container) ShallowCopy() *Container {
	var dst *Container
	if c.variant == Array {
		dst = NewArray()
		dst.elem = c.elem
	} else {
		dst = NewObject()
	}

	// Cannot fail: variants match and enforcement is inherited from a
	// source that already satisfies it.
	_ = dst.Merge(c)
	return dst
}

// DeepCopy returns a fully independent duplicate: every nested container
// reachable from c is itself deep-copied, recursively.
func (c *Container) DeepCopy() *Container {
	dst := c.ShallowCopy()
	for _, key := range dst.order {
		e := dst.entries[key]
		if e.kind == KindObject && e.obj != nil {
			e.obj = e.obj.DeepCopy()
		}
	}
	return dst
}

// Cleanup recursively clears every nested container reachable from c,
// children before parents, then clears c's own entries. The container
// handle itself stays valid (and empty) afterwards.
//
// A child attached to two parents must not be cleaned up through both.
func (c *Container) Cleanup() {
	for _, key := range c.order {
		e := c.entries[key]
		if e.kind == KindObject && e.obj != nil {
			e.obj.Cleanup()
			e.obj = nil
		}
	}

	clear(c.entries)
	c.order = nil
	c.length = 0
}
