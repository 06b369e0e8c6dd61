package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSetGet(t *testing.T) {
	c := NewObject()

	require.NoError(t, c.SetString("name", "widget"))
	require.NoError(t, c.SetInt("count", 42))
	require.NoError(t, c.SetFloat("ratio", 1.5))
	require.NoError(t, c.SetBool("active", true))
	require.NoError(t, c.SetNull("note"))

	child := NewObject()
	require.NoError(t, c.SetObject("meta", child))

	assert.Equal(t, "widget", c.String("name", ""))
	assert.Equal(t, int64(42), c.Int("count", -1))
	assert.Equal(t, 1.5, c.Float("ratio", 0))
	assert.Equal(t, true, c.Bool("active", false))
	assert.True(t, c.IsNull("note"))
	assert.Same(t, child, c.Object("meta"))

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []string{"name", "count", "ratio", "active", "note", "meta"}, c.Keys())
}

func TestObjectDefaults(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetInt("n", 7))

	// Absent key.
	assert.Equal(t, "fallback", c.String("missing", "fallback"))
	assert.Equal(t, int64(-1), c.Int("missing", -1))

	// Wrong kind.
	assert.Equal(t, "fallback", c.String("n", "fallback"))
	assert.Nil(t, c.Object("n"))
}

func TestType(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetString("s", "x"))
	require.NoError(t, c.SetNull("z"))

	assert.Equal(t, KindString, c.Type("s"))
	assert.Equal(t, KindNull, c.Type("z"))
	assert.Equal(t, KindInvalid, c.Type("missing"))
	assert.True(t, c.Has("s"))
	assert.False(t, c.Has("missing"))
}

func TestObjectSettersRejectArray(t *testing.T) {
	a := NewArray()

	assert.ErrorIs(t, a.SetString("k", "v"), ErrNotObject)
	assert.ErrorIs(t, a.SetInt("k", 1), ErrNotObject)
	assert.ErrorIs(t, a.SetObject("k", NewObject()), ErrNotObject)
}

func TestReplaceKeepsPosition(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetString("a", "1"))
	require.NoError(t, c.SetString("b", "2"))
	require.NoError(t, c.SetInt("a", 3))

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, KindInt, c.Type("a"))
}

func TestRemove(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetString("a", "1"))
	require.NoError(t, c.SetString("b", "2"))

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.False(t, c.Remove("never"))
	assert.Equal(t, []string{"b"}, c.Keys())
	assert.Equal(t, 1, c.Len())
}

func TestRename(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetInt("old", 9))
	require.NoError(t, c.SetHidden("old", true))

	require.NoError(t, c.Rename("old", "new"))
	assert.False(t, c.Has("old"))
	assert.Equal(t, int64(9), c.Int("new", -1))
	assert.True(t, c.IsHidden("new"))

	assert.ErrorIs(t, c.Rename("missing", "x"), ErrKeyNotFound)
	assert.ErrorIs(t, c.Rename("new", "new"), ErrSameKey)
	assert.ErrorIs(t, NewArray().Rename("0", "1"), ErrNotObject)
}

func TestRenameOverwrites(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetInt("a", 1))
	require.NoError(t, c.SetString("b", "gone"))

	require.NoError(t, c.Rename("a", "b"))
	assert.Equal(t, KindInt, c.Type("b"))
	assert.Equal(t, int64(1), c.Int("b", -1))
	assert.Equal(t, 1, c.Len())
}

func TestHidden(t *testing.T) {
	c := NewObject()
	require.NoError(t, c.SetString("s", "v"))

	assert.False(t, c.IsHidden("s"))
	require.NoError(t, c.SetHidden("s", true))
	assert.True(t, c.IsHidden("s"))
	require.NoError(t, c.SetHidden("s", false))
	assert.False(t, c.IsHidden("s"))

	assert.ErrorIs(t, c.SetHidden("missing", true), ErrKeyNotFound)
}

func TestEqual(t *testing.T) {
	build := func() *Container {
		c := NewObject()
		_ = c.SetString("s", "x")
		_ = c.SetInt("i", 1)
		inner := NewArray()
		_, _ = inner.PushBool(true)
		_ = c.SetObject("a", inner)
		return c
	}

	a := build()
	b := build()
	assert.True(t, a.Equal(b))

	// Object key order is not significant.
	reordered := NewObject()
	_ = reordered.SetInt("i", 1)
	_ = reordered.SetString("s", "x")
	inner := NewArray()
	_, _ = inner.PushBool(true)
	_ = reordered.SetObject("a", inner)
	assert.True(t, a.Equal(reordered))

	require.NoError(t, b.SetInt("i", 2))
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(nil))
	assert.False(t, NewObject().Equal(NewArray()))
}
