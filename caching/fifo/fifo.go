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

// Package fifo implements a bounded, insertion-ordered approximate-match
// cache: the oldest entry is evicted once capacity is exceeded.
package fifo

import "github.com/uzqw/proximity/numerics"

type entry[K any, V any] struct {
	key       K
	tolerance float32
	value     V
}

// Cache is a bounded FIFO approximate-match cache. The zero value is not
// usable; construct with New.
type Cache[K numerics.ApproxComparable[K], V any] struct {
	capacity int
	items    []entry[K, V]
}

// New returns an empty FIFO cache holding at most capacity entries. It
// panics if capacity is not positive.
func New[K numerics.ApproxComparable[K], V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		panic(&numerics.ConfigError{Field: "capacity", Value: capacity, Want: "> 0"})
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make([]entry[K, V], 0, capacity),
	}
}

// Find scans every entry, computing query.Fuzziness against each stored
// key using that entry's own tolerance, and returns the value of the
// closest match. Ties are broken toward the older insertion. Find does not
// mutate cache state.
func (c *Cache[K, V]) Find(query K) (V, bool) {
	bestIdx := -1
	var bestFuzz float32

	for i := range c.items {
		e := &c.items[i]
		if !e.key.Matches(query, e.tolerance) {
			continue
		}
		f := query.Fuzziness(e.key)
		if bestIdx == -1 || f < bestFuzz {
			bestIdx = i
			bestFuzz = f
		}
	}

	if bestIdx == -1 {
		var zero V
		return zero, false
	}
	return c.items[bestIdx].value, true
}

// Insert appends (key, value, tolerance) as the newest entry, evicting the
// oldest entry if the cache is now over capacity. tolerance must be
// positive.
func (c *Cache[K, V]) Insert(key K, value V, tolerance float32) {
	if tolerance <= 0 {
		panic(&numerics.ConfigError{Field: "tolerance", Value: tolerance, Want: "> 0"})
	}
	c.items = append(c.items, entry[K, V]{key: key, tolerance: tolerance, value: value})
	if len(c.items) > c.capacity {
		c.items = c.items[1:]
	}
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}
