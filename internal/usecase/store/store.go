package store

// Store is the ordered in-memory collection behind one list view. Entries are
// addressed by the key function given at construction; order is arrival order.
// A Store is not safe for concurrent use; callers serialize access.
type Store[K comparable, V any] struct {
	key   func(V) K
	items []V
	index map[K]int // key -> position of its first entry
}

func New[K comparable, V any](key func(V) K) *Store[K, V] {
	return &Store[K, V]{key: key, index: make(map[K]int)}
}

// ReplaceAll swaps the whole collection, as after a refresh.
func (s *Store[K, V]) ReplaceAll(items []V) {
	s.items = append(make([]V, 0, len(items)), items...)
	s.reindex()
}

func (s *Store[K, V]) Append(v V) {
	k := s.key(v)
	if _, ok := s.index[k]; !ok {
		s.index[k] = len(s.items)
	}
	s.items = append(s.items, v)
}

// Replace overwrites the entry with v's key. It reports false when none exists.
func (s *Store[K, V]) Replace(v V) bool {
	i, ok := s.index[s.key(v)]
	if !ok {
		return false
	}
	s.items[i] = v
	return true
}

func (s *Store[K, V]) Remove(k K) bool {
	if _, ok := s.index[k]; !ok {
		return false
	}
	return s.RemoveWhere(func(v V) bool { return s.key(v) == k }) > 0
}

// RemoveWhere drops every entry matching pred and returns how many went.
func (s *Store[K, V]) RemoveWhere(pred func(V) bool) int {
	kept := s.items[:0]
	removed := 0
	for _, v := range s.items {
		if pred(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	var zero V
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	if removed > 0 {
		s.reindex()
	}
	return removed
}

func (s *Store[K, V]) Get(k K) (V, bool) {
	if i, ok := s.index[k]; ok {
		return s.items[i], true
	}
	var zero V
	return zero, false
}

// List returns a copy in store order.
func (s *Store[K, V]) List() []V {
	return append(make([]V, 0, len(s.items)), s.items...)
}

func (s *Store[K, V]) Len() int {
	return len(s.items)
}

func (s *Store[K, V]) reindex() {
	clear(s.index)
	for i, v := range s.items {
		if _, ok := s.index[s.key(v)]; !ok {
			s.index[s.key(v)] = i
		}
	}
}
