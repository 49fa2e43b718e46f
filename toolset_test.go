package proompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolset_AddAndGet(t *testing.T) {
	ts := NewToolset().
		Add("calc", bareTool{name: "calc", desc: "computes"}).
		Add("lookup", bareTool{name: "lookup", desc: "finds"})
	assert.Equal(t, 2, ts.Len())

	got, ok := ts.Get("calc")
	require.True(t, ok)
	assert.Equal(t, bareTool{name: "calc", desc: "computes"}, got)

	_, ok = ts.Get("missing")
	assert.False(t, ok)
}

func TestToolset_NamesInInsertionOrder(t *testing.T) {
	ts := NewToolset().
		Add("zulu", 1).
		Add("alpha", 2).
		Add("mike", 3)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, ts.Names())
}

func TestToolset_ReplaceKeepsPosition(t *testing.T) {
	ts := NewToolset().
		Add("first", 1).
		Add("second", 2)
	ts.Add("first", 10)
	assert.Equal(t, []string{"first", "second"}, ts.Names())
	got, ok := ts.Get("first")
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestToolset_Range(t *testing.T) {
	ts := NewToolset().
		Add("a", 1).
		Add("b", 2)
	var names []string
	ts.Range(func(name string, _ any) {
		names = append(names, name)
	})
	assert.Equal(t, []string{"a", "b"}, names)
}
