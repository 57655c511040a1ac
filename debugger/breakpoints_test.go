package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndHitBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.Add(10)
	assert.True(t, bm.Hit(10))
	assert.Equal(t, 1, bp.HitCount)
	assert.False(t, bm.Hit(12))
}

func TestDeleteBreakpoint(t *testing.T) {
	bm := NewBreakpointManager()
	bp := bm.Add(4)
	require.NoError(t, bm.Delete(bp.ID))
	assert.False(t, bm.Hit(4))
	assert.Error(t, bm.Delete(bp.ID))
}

func TestListOrderedByID(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(100)
	bm.Add(10)
	bm.Add(50)
	list := bm.List()
	require.Len(t, list, 3)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
	assert.Equal(t, 3, list[2].ID)
}
