package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeObjects(t *testing.T) {
	to := NewObject()
	require.NoError(t, to.SetInt("x", 1))
	require.NoError(t, to.SetString("keep", "me"))

	from := NewObject()
	require.NoError(t, from.SetInt("x", 2))
	require.NoError(t, from.SetBool("new", true))

	require.NoError(t, to.Merge(from))
	assert.Equal(t, int64(2), to.Int("x", -1))
	assert.Equal(t, "me", to.String("keep", ""))
	assert.Equal(t, true, to.Bool("new", false))
}

func TestMergeWithoutReplace(t *testing.T) {
	to := NewObject()
	require.NoError(t, to.SetInt("x", 1))

	from := NewObject()
	require.NoError(t, from.SetInt("x", 2))
	require.NoError(t, from.SetInt("y", 3))

	require.NoError(t, to.Merge(from, func(o *MergeOptions) {
		o.Replace = false
	}))
	assert.Equal(t, int64(1), to.Int("x", -1))
	assert.Equal(t, int64(3), to.Int("y", -1))
}

func TestMergeVariantMismatch(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.SetInt("x", 1))
	arr := NewArray()
	_, _ = arr.PushInt(2)

	assert.ErrorIs(t, obj.Merge(arr), ErrVariantMismatch)
	assert.ErrorIs(t, arr.Merge(obj), ErrVariantMismatch)

	// Destination untouched on the precondition failure.
	assert.Equal(t, 1, obj.Len())
	assert.Equal(t, int64(1), obj.Int("x", -1))
	assert.Equal(t, 1, arr.Len())
}

func TestMergeArraysAppend(t *testing.T) {
	to := NewArray()
	_, _ = to.PushString("a")

	from := NewArray()
	_, _ = from.PushString("b")
	_, _ = from.PushString("c")

	require.NoError(t, to.Merge(from))
	assert.Equal(t, 3, to.Len())
	assert.Equal(t, "a", to.StringAt(0, ""))
	assert.Equal(t, "b", to.StringAt(1, ""))
	assert.Equal(t, "c", to.StringAt(2, ""))
}

func TestMergeArrayEnforcementNonAtomic(t *testing.T) {
	to := NewArray()
	require.NoError(t, to.SetElemKind(KindString))

	from := NewArray()
	_, _ = from.PushString("ok")
	_, _ = from.PushInt(1)
	_, _ = from.PushString("never reached")

	// The first element lands before the enforcement failure aborts the
	// merge; applied entries are not rolled back.
	assert.ErrorIs(t, to.Merge(from), ErrKindEnforced)
	assert.Equal(t, 1, to.Len())
	assert.Equal(t, "ok", to.StringAt(0, ""))
}

func TestMergeCopiesHiddenFlag(t *testing.T) {
	from := NewObject()
	require.NoError(t, from.SetString("secret", "v"))
	require.NoError(t, from.SetHidden("secret", true))

	to := NewObject()
	require.NoError(t, to.Merge(from))
	assert.True(t, to.IsHidden("secret"))
}

func TestMergeCleanupDestroysReplacedChild(t *testing.T) {
	oldChild := NewObject()
	require.NoError(t, oldChild.SetString("deep", "value"))

	to := NewObject()
	require.NoError(t, to.SetObject("child", oldChild))

	from := NewObject()
	require.NoError(t, from.SetObject("child", NewObject()))

	require.NoError(t, to.Merge(from, func(o *MergeOptions) {
		o.Cleanup = true
	}))

	// The replaced child was recursively cleaned up.
	assert.Equal(t, 0, oldChild.Len())
	assert.NotSame(t, oldChild, to.Object("child"))
}

func TestMergeCleanupSkipsSameReference(t *testing.T) {
	shared := NewObject()
	require.NoError(t, shared.SetString("deep", "value"))

	to := NewObject()
	require.NoError(t, to.SetObject("child", shared))
	from := NewObject()
	require.NoError(t, from.SetObject("child", shared))

	require.NoError(t, to.Merge(from, func(o *MergeOptions) {
		o.Cleanup = true
	}))

	// Same reference on both sides: nothing to destroy.
	assert.Equal(t, 1, shared.Len())
	assert.Same(t, shared, to.Object("child"))
}

func TestShallowCopyAliasesChildren(t *testing.T) {
	src := NewObject()
	require.NoError(t, src.SetInt("n", 1))
	child := NewObject()
	require.NoError(t, child.SetString("inner", "before"))
	require.NoError(t, src.SetObject("child", child))

	cp := src.ShallowCopy()
	require.True(t, cp.Equal(src))

	// Scalar entries are independent.
	require.NoError(t, cp.SetInt("n", 99))
	assert.Equal(t, int64(1), src.Int("n", -1))

	// Nested containers are shared: mutating through the copy mutates the
	// source's child.
	require.NoError(t, cp.Object("child").SetString("inner", "after"))
	assert.Equal(t, "after", src.Object("child").String("inner", ""))
}

func TestShallowCopyArrayKeepsEnforcement(t *testing.T) {
	src := NewArray()
	require.NoError(t, src.SetElemKind(KindInt))
	_, _ = src.PushInt(1)

	cp := src.ShallowCopy()
	assert.Equal(t, KindInt, cp.ElemKind())

	_, err := cp.PushString("nope")
	assert.ErrorIs(t, err, ErrKindEnforced)
}

func TestDeepCopyIndependence(t *testing.T) {
	src := NewObject()
	child := NewObject()
	grandchild := NewArray()
	_, _ = grandchild.PushString("deep")
	require.NoError(t, child.SetObject("g", grandchild))
	require.NoError(t, src.SetObject("child", child))

	cp := src.DeepCopy()
	require.True(t, cp.Equal(src))

	require.NoError(t, cp.Object("child").SetString("extra", "copy only"))
	_, err := cp.Object("child").Object("g").PushString("copy only")
	require.NoError(t, err)

	assert.False(t, src.Object("child").Has("extra"))
	assert.Equal(t, 1, src.Object("child").Object("g").Len())
}

func TestCleanup(t *testing.T) {
	root := NewObject()
	child := NewObject()
	grandchild := NewArray()
	_, _ = grandchild.PushInt(1)
	require.NoError(t, child.SetObject("g", grandchild))
	require.NoError(t, root.SetObject("child", child))
	require.NoError(t, root.SetString("s", "v"))

	root.Cleanup()

	assert.Equal(t, 0, root.Len())
	assert.Empty(t, root.Keys())
	assert.Equal(t, 0, child.Len())
	assert.Equal(t, 0, grandchild.Len())

	// The handle stays usable after Cleanup.
	require.NoError(t, root.SetString("again", "ok"))
	assert.Equal(t, 1, root.Len())
}

func TestMergeNilSource(t *testing.T) {
	to := NewObject()
	require.NoError(t, to.SetInt("x", 1))
	require.NoError(t, to.Merge(nil))
	assert.Equal(t, 1, to.Len())
}
