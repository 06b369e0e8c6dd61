package container

// Kind identifies the concrete type stored under a key.
type Kind uint8

const (
	// KindInvalid marks an absent or untyped entry.
	KindInvalid Kind = iota
	// KindNull represents a JSON null.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindObject represents a reference to a nested Container
	// (object or array).
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Variant discriminates the two container shapes.
type Variant uint8

const (
	// Object is a string-keyed container.
	Object Variant = iota
	// Array is an index-addressed container with contiguous elements.
	Array
)

// String returns the variant name.
func (v Variant) String() string {
	if v == Array {
		return "array"
	}
	return "object"
}
