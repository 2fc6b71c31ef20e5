package toast

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/happyclass/core"
)

func TestFeed(t *testing.T) {
	clk := clock.NewMock()
	f := NewFeed(clk, 2)

	_, ok := f.Last()
	assert.False(t, ok)
	assert.Equal(t, []core.Notification{}, f.Drain())

	f.Notify(core.NotifySuccess, "one")
	clk.Add(time.Second)
	f.Notify(core.NotifyError, "two")
	clk.Add(time.Second)
	f.Notify(core.NotifyInfo, "three")

	last, ok := f.Last()
	require.True(t, ok)
	assert.Equal(t, "three", last.Message)
	assert.Equal(t, 2, f.Len())

	items := f.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, core.Notification{Kind: core.NotifyError, Message: "two", At: clk.Now().UTC().Add(-time.Second)}, items[0])
	assert.Equal(t, "three", items[1].Message)
	assert.Equal(t, 0, f.Len())
}
