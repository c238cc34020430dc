package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childIDs(o GameObject) []string {
	ids := make([]string, 0)
	for _, child := range o.GetChildren() {
		ids = append(ids, child.GetID())
	}
	return ids
}

func TestSortedZIndexObject(t *testing.T) {
	root := NewSortedZIndexObject("root")
	for _, c := range []struct {
		id     string
		zIndex int
	}{
		{id: "overlay", zIndex: 10},
		{id: "board", zIndex: 0},
		{id: "effect-1", zIndex: 5},
		{id: "hud", zIndex: 0},
		{id: "effect-2", zIndex: 5},
	} {
		require.NoError(t, root.AddChild(c.id, NewBaseObject(c.id, &NewBaseObjectOpts{ZIndex: c.zIndex})))
	}

	assert.Equal(t, []string{"board", "hud", "effect-1", "effect-2", "overlay"}, childIDs(root))
	assert.Error(t, root.AddChild("hud", NewBaseObject("hud", nil)))

	require.NoError(t, root.RemoveChild("effect-1"))
	assert.Equal(t, []string{"board", "hud", "effect-2", "overlay"}, childIDs(root))
	assert.Error(t, root.RemoveChild("effect-1"))
}

func TestUpdateTree_removesFlaggedChildren(t *testing.T) {
	root := NewSortedZIndexObject("root")
	keep := NewBaseObject("keep", nil)
	gone := NewBaseObject("gone", &NewBaseObjectOpts{ZIndex: 1})
	require.NoError(t, root.AddChild("keep", keep))
	require.NoError(t, root.AddChild("gone", gone))
	assert.Same(t, root, gone.GetParent())

	require.NoError(t, gone.RemoveFromParent())
	require.NoError(t, UpdateTree(root))

	assert.Equal(t, []string{"keep"}, childIDs(root))
	assert.Nil(t, gone.GetParent())
}
