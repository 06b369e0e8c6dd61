package smjson

import "github.com/alexevladgabriel/sm-json/container"

// Container is the document tree type produced by Decode and consumed by
// Encode. See the container package for the typed accessors and the
// structural operations (Merge, ShallowCopy, DeepCopy, Cleanup, Rename).
type Container = container.Container

// Kind identifies the concrete type stored under a container key.
type Kind = container.Kind

// NewObject creates an empty object container.
func NewObject() *Container { return container.NewObject() }

// NewArray creates an empty array container.
func NewArray() *Container { return container.NewArray() }
