// Copyright 2025 uzqw
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lru implements a bounded, recency-ordered approximate-match
// cache: the least-recently-used entry (by insertion or successful Find)
// is evicted once capacity is exceeded, and every successful Find promotes
// its entry to most-recently used.
package lru

import (
	"github.com/uzqw/proximity/caching/internal/list"
	"github.com/uzqw/proximity/numerics"
)

// Cache is a bounded LRU approximate-match cache. The zero value is not
// usable; construct with New.
type Cache[K numerics.ApproxComparable[K], V any] struct {
	capacity int
	nodes    *list.List[K, V]
	// index maps a (key, tolerance) digest to the slab index of the node
	// that currently owns it. Reinsertion of an identical (key, tolerance)
	// pair overwrites the mapping; the superseded node stays reachable
	// through the recency list until it is naturally evicted from the
	// tail (see package lru's reinsertion semantics in DESIGN.md).
	index map[string]int
}

// New returns an empty LRU cache holding at most capacity entries. It
// panics if capacity is not positive.
func New[K numerics.ApproxComparable[K], V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic(&numerics.ConfigError{Field: "capacity", Value: capacity, Want: "> 0"})
	}
	return &Cache[K, V]{
		capacity: capacity,
		nodes:    list.New[K, V](capacity),
		index:    make(map[string]int, capacity),
	}
}

// Find scans the recency list head (most recent) to tail (least recent),
// computing query.Fuzziness against each stored key using that entry's own
// tolerance. The closest match wins; ties favor the entry nearer the head.
// On a hit the matching node is promoted to head. On a miss, no mutation
// occurs.
func (c *Cache[K, V]) Find(query K) (V, bool) {
	bestIdx := -1
	var bestFuzz float32

	c.nodes.Each(func(idx int, key K, tolerance float32, _ V) bool {
		if !key.Matches(query, tolerance) {
			return true
		}
		f := query.Fuzziness(key)
		if bestIdx == -1 || f < bestFuzz {
			bestIdx = idx
			bestFuzz = f
		}
		return true
	})

	if bestIdx == -1 {
		var zero V
		return zero, false
	}

	value := c.nodes.Value(bestIdx)
	c.nodes.MoveToHead(bestIdx)
	return value, true
}

// Insert adds (key, value, tolerance) as the new most-recently-used entry,
// evicting the least-recently-used entry if the cache is already at
// capacity. Reinserting a key already present creates a new logical entry
// at head rather than replacing the old one in place; the superseded entry
// remains reachable via Find until it is evicted. tolerance must be
// positive.
func (c *Cache[K, V]) Insert(key K, value V, tolerance float32) {
	if tolerance <= 0 {
		panic(&numerics.ConfigError{Field: "tolerance", Value: tolerance, Want: "> 0"})
	}

	if c.nodes.Len() == c.capacity {
		tailIdx, ok := c.nodes.Tail()
		if ok {
			tailKey := c.nodes.Key(tailIdx)
			tailTol := c.nodes.Tolerance(tailIdx)
			digest := tailKey.IndexKey(tailTol)
			if cur, present := c.index[digest]; present && cur == tailIdx {
				delete(c.index, digest)
			}
			c.nodes.Remove(tailIdx)
		}
	}

	idx := c.nodes.PushHead(key, tolerance, value)
	c.index[key.IndexKey(tolerance)] = idx
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	return c.nodes.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}
