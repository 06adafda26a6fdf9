package skiplist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_NewPanicsOnInvalidMaxLevels(t *testing.T) {
	assert.Panics(t, func() {
		NewOrderedMap[int, string](0)
	})
}

func TestMap_EmptyByDefault(t *testing.T) {
	m := NewOrderedMap[int, string](4)
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Contains(1))
	_, found := m.Get(1)
	assert.False(t, found)
}

func TestMap_InsertOverwritesPreviousValue(t *testing.T) {
	m := NewOrderedMap[int, string](4)

	for _, kv := range []struct {
		key   int
		value string
	}{{1, "a"}, {2, "b"}, {3, "c"}} {
		_, replaced := m.Insert(kv.key, kv.value)
		assert.False(t, replaced)
	}

	old, replaced := m.Insert(2, "B")
	assert.True(t, replaced)
	assert.Equal(t, "b", old)

	value, found := m.Get(2)
	assert.True(t, found)
	assert.Equal(t, "B", value)

	removed, found := m.Remove(2)
	assert.True(t, found)
	assert.Equal(t, "B", removed)

	_, found = m.Get(2)
	assert.False(t, found)
}

func TestMap_InsertGetRemoveRoundTrip(t *testing.T) {
	m := NewOrderedMap[string, int](4)

	_, replaced := m.Insert("k", 1)
	assert.False(t, replaced)

	value, found := m.Get("k")
	assert.True(t, found)
	assert.Equal(t, 1, value)

	removed, found := m.Remove("k")
	assert.True(t, found)
	assert.Equal(t, 1, removed)

	_, found = m.Remove("k")
	assert.False(t, found, "a second remove of the same key reports absent")
}

func TestMap_Clear(t *testing.T) {
	m := NewOrderedMap[int, int](4)
	for i := 0; i < 5; i++ {
		m.Insert(i, i*i)
	}
	m.Clear()
	assert.True(t, m.IsEmpty())
	_, found := m.Get(0)
	assert.False(t, found)
}

// Randomized check: the most recent insert for a key always wins.
func TestMap_LastValueWinsPerKey(t *testing.T) {
	const seed = 99
	r := rand.New(rand.NewSource(seed))
	const n = 1000

	want := make(map[int]int, n)
	m := NewOrderedMap[int, int](32, WithMapSeed[int, int](seed))

	const keySpace = 250
	for i := 0; i < n; i++ {
		key := r.Intn(keySpace)
		value := r.Int()
		want[key] = value
		m.Insert(key, value)
	}

	for key, expected := range want {
		got, found := m.Get(key)
		require.True(t, found)
		assert.Equal(t, expected, got, "the most recent insert for a key must win")
	}

	for key := range want {
		_, found := m.Remove(key)
		assert.True(t, found)
	}
	assert.True(t, m.IsEmpty(), "removing every key must empty the map")
}
