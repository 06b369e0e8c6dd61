package container

// entry is one live key/value pair. The kind tag, the payload and the
// hidden flag live together in a single record; there are no synthesized
// metadata keys in the map.
type entry struct {
	kind   Kind
	s      string
	i64    int64
	f64    float64
	b      bool
	obj    *Container
	hidden bool
}

// clone copies the entry record. The child reference is aliased, not
// duplicated; deep duplication is DeepCopy's job.
func (e *entry) clone() *entry {
	cp := *e
	return &cp
}

func (e *entry) equal(other *entry) bool {
	if e.kind != other.kind || e.hidden != other.hidden {
		return false
	}

	switch e.kind {
	case KindString:
		return e.s == other.s
	case KindInt:
		return e.i64 == other.i64
	case KindFloat:
		return e.f64 == other.f64
	case KindBool:
		return e.b == other.b
	case KindObject:
		if e.obj == nil || other.obj == nil {
			return e.obj == other.obj
		}
		return e.obj.Equal(other.obj)
	default:
		return true
	}
}

// matches reports whether the entry value equals v under the generic
// equality used by IndexOf/Contains. Integer comparisons accept int,
// int64 and float64 inputs for convenience.
func (e *entry) matches(v any) bool {
	switch want := v.(type) {
	case nil:
		return e.kind == KindNull
	case string:
		return e.kind == KindString && e.s == want
	case int:
		return e.kind == KindInt && e.i64 == int64(want)
	case int64:
		return e.kind == KindInt && e.i64 == want
	case float64:
		return e.kind == KindFloat && e.f64 == want
	case bool:
		return e.kind == KindBool && e.b == want
	case *Container:
		return e.kind == KindObject && e.obj == want
	default:
		return false
	}
}
