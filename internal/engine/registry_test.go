package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InsertGetUpdateRemove(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Insert("a", rectAt(0, 50, 20, 20)))
	require.NoError(t, reg.Insert("b", rectAt(100, 50, 20, 20)))
	assert.ErrorIs(t, reg.Insert("a", rectAt(0, 0, 1, 1)), ErrDuplicateFrame)
	assert.Equal(t, 2, reg.Len())

	require.NoError(t, reg.Update("a", rectAt(-50, 60, 20, 20)))
	got, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, -50.0, got.CenterX)
	assert.ErrorIs(t, reg.Update("missing", rectAt(0, 0, 1, 1)), ErrUnknownFrame)

	assert.True(t, reg.Remove("a"))
	assert.False(t, reg.Remove("a"))
	_, ok = reg.Get("a")
	assert.False(t, ok)
	got, ok = reg.Get("b")
	require.True(t, ok, "remaining entries stay reachable after a removal")
	assert.Equal(t, 100.0, got.CenterX)
}

func TestRegistry_UpdateKeepsIterationSlot(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Insert(id, rectAt(0, 0, 1, 1)))
	}
	require.NoError(t, reg.Update("b", rectAt(9, 9, 1, 1)))

	all := reg.All("")
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[1].FrameID)
	assert.Equal(t, 9.0, all[1].Rect.CenterX)
}

func TestRegistry_AllExcludesSelf(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Insert("a", rectAt(0, 0, 1, 1)))
	require.NoError(t, reg.Insert("b", rectAt(5, 0, 1, 1)))

	others := reg.All("a")
	require.Len(t, others, 1)
	assert.Equal(t, "b", others[0].FrameID)
}

func TestRegistry_ConflictsIgnoresExcluded(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Insert("a", rectAt(0, 50, 20, 20)))

	candidate := rectAt(5, 50, 20, 20)
	assert.True(t, reg.Conflicts(candidate, "", 2))
	assert.False(t, reg.Conflicts(candidate, "a", 2), "a frame never collides with itself")
}
