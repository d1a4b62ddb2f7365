// Package dsu provides a generic disjoint-set (union-find) store.
//
// A [Set] partitions keys into equivalence classes. Keys are registered
// lazily: the first [Set.Find] or [Set.Union] that mentions a key adds it as
// a singleton. Paths are compressed on every lookup.
//
// Representative identity is an implementation detail. Callers should only
// rely on which keys share a representative, never on which key it is.
//
// A Set is not safe for concurrent use.
package dsu

// Set is a disjoint-set forest over comparable keys.
// The zero value is not usable - use [New].
type Set[K comparable] struct {
	parent map[K]K
}

// New creates an empty disjoint-set store.
func New[K comparable]() *Set[K] {
	return &Set[K]{parent: make(map[K]K)}
}

// Find returns the representative of the set containing k, registering k as
// a singleton if it has not been seen before.
func (s *Set[K]) Find(k K) K {
	p, ok := s.parent[k]
	if !ok {
		s.parent[k] = k
		return k
	}
	root := k
	for p != root {
		root = p
		p = s.parent[root]
	}
	for k != root {
		next := s.parent[k]
		s.parent[k] = root
		k = next
	}
	return root
}

// Union merges the sets containing a and b. The representative of b's set
// is re-rooted under a's. Merging a set with itself is a no-op.
func (s *Set[K]) Union(a, b K) {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return
	}
	s.parent[rb] = ra
}

// Connected reports whether a and b belong to the same set.
func (s *Set[K]) Connected(a, b K) bool {
	return s.Find(a) == s.Find(b)
}

// Len returns the number of registered keys.
func (s *Set[K]) Len() int { return len(s.parent) }
