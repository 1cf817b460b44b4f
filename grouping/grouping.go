// Package grouping provides an order-preserving group-by.
package grouping

// Group is one bucket of items sharing Key, in input order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// By buckets items by key. Buckets appear in order of first appearance and
// items keep their input order within a bucket; nothing is re-sorted.
func By[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Count returns the bucket sizes in first-appearance order.
func Count[T any, K comparable](items []T, key func(T) K) []Tally[K] {
	groups := By(items, key)
	out := make([]Tally[K], len(groups))
	for i, g := range groups {
		out[i] = Tally[K]{Key: g.Key, Count: len(g.Items)}
	}
	return out
}

type Tally[K comparable] struct {
	Key   K
	Count int
}
