package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct{ label string }

func TestMap(t *testing.T) {
	m := New[*item]()
	assert.Equal(t, 0, m.Len())

	a := &item{label: "a"}
	m.Put(2, a)
	m.Put(1, &item{label: "b"})

	got, ok := m.Get(2)
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, []int64{1, 2}, m.IDs())

	m.Evict(2)
	m.Evict(99)
	_, ok = m.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.IDs())
}

func TestMapsAreIndependent(t *testing.T) {
	first, second := New[string](), New[string]()
	first.Put(1, "x")

	_, ok := second.Get(1)
	assert.False(t, ok)
}
