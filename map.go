package skiplist

import "cmp"

// Entry is a (key, value) pair whose ordering and equality are derived
// solely from Key; Value is carried along but opaque to ordering. Entry is
// the stored unit inside a Map's underlying storage.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered associative container from unique-by-comparator keys to
// values, backed by a skip list over Entry. The zero value is not usable;
// construct one with NewMap or NewOrderedMap.
type Map[K, V any] struct {
	storage   *storage[Entry[K, V]]
	entryCmp  CompareFunc[Entry[K, V]]
	maxLevels int
	seed      *int64
}

// MapOption configures a Map at construction time.
type MapOption[K, V any] func(*Map[K, V])

// WithMapSeed fixes the skip list's level-assignment random source to a
// deterministic seed, for reproducible tests.
func WithMapSeed[K, V any](seed int64) MapOption[K, V] {
	return func(m *Map[K, V]) {
		v := seed
		m.seed = &v
	}
}

// NewMap creates an empty Map with the given maximum level count and key
// comparator. maxLevels must be at least 1.
func NewMap[K, V any](maxLevels int, keyCmp CompareFunc[K], opts ...MapOption[K, V]) *Map[K, V] {
	if maxLevels < 1 {
		panic("skiplist: maxLevels must be at least 1")
	}
	m := &Map[K, V]{
		maxLevels: maxLevels,
		entryCmp: func(a, b Entry[K, V]) int {
			return keyCmp(a.Key, b.Key)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewOrderedMap creates an empty Map over a key type with a natural order.
func NewOrderedMap[K cmp.Ordered, V any](maxLevels int, opts ...MapOption[K, V]) *Map[K, V] {
	return NewMap[K, V](maxLevels, Natural[K](), opts...)
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	if m.storage == nil {
		return false
	}
	_, found := m.storage.get(m.probe(key))
	return found
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.storage == nil {
		var zero V
		return zero, false
	}
	entry, found := m.storage.get(m.probe(key))
	if !found {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

// Insert stores value under key. If key was already present, its previous
// value is returned and replaced (duplicate-key insertion replaces in
// place, unlike Set's raw-insert semantics, since a Map has no use for two
// entries sharing a key).
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	entry := Entry[K, V]{Key: key, Value: value}
	if m.storage == nil {
		m.storage = m.newStorage(entry)
		var zero V
		return zero, false
	}
	old, replaced := m.storage.upsert(entry)
	if !replaced {
		var zero V
		return zero, false
	}
	return old.Value, true
}

// Remove deletes the entry stored under key, if any, and returns its value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	if m.storage == nil {
		var zero V
		return zero, false
	}
	removed, found, becameEmpty := m.storage.remove(m.probe(key))
	if becameEmpty {
		m.storage = nil
	}
	if !found {
		var zero V
		return zero, false
	}
	return removed.Value, true
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.storage == nil
}

// Clear removes every entry from the map, releasing every node.
func (m *Map[K, V]) Clear() {
	if m.storage == nil {
		return
	}
	m.storage.destroy()
	m.storage = nil
}

// probe wraps a bare key into an Entry suitable for comparison against
// stored entries; Value is left zero since entryCmp never inspects it.
func (m *Map[K, V]) probe(key K) Entry[K, V] {
	var zero V
	return Entry[K, V]{Key: key, Value: zero}
}

func (m *Map[K, V]) newStorage(entry Entry[K, V]) *storage[Entry[K, V]] {
	if m.seed != nil {
		return newStorageWithRNG(entry, m.maxLevels, m.entryCmp, newSeededRNG(*m.seed))
	}
	return newStorage(entry, m.maxLevels, m.entryCmp)
}
