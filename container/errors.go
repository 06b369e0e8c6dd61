package container

import "errors"

var (
	// ErrNotObject is returned when an object-only operation is applied
	// to an array.
	ErrNotObject = errors.New("container is not an object")

	// ErrNotArray is returned when an array-only operation is applied
	// to an object.
	ErrNotArray = errors.New("container is not an array")

	// ErrVariantMismatch is returned by Merge when one side is an object
	// and the other an array.
	ErrVariantMismatch = errors.New("container variant mismatch")

	// ErrKindEnforced is returned when an insert violates an array's
	// enforced element kind.
	ErrKindEnforced = errors.New("array element kind is enforced")

	// ErrIndexOutOfRange is returned for an index outside 0..Len()-1.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound is returned when a key holds no live entry.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSameKey is returned by Rename when source and target keys are
	// identical.
	ErrSameKey = errors.New("rename to identical key")
)
