// Package container implements the typed document tree the codec operates
// on: a string-keyed value store with two variants (Object and Array),
// typed accessors, and the structural operations Merge, ShallowCopy,
// DeepCopy, Cleanup and Rename.
//
// A Container is not safe for concurrent mutation. Attaching a child via
// SetObject or PushObject aliases the child rather than copying it; use
// DeepCopy when independent trees are required.
package container
