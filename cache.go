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

package proximity

import (
	"github.com/google/uuid"

	"github.com/uzqw/proximity/caching/fifo"
	"github.com/uzqw/proximity/caching/lru"
	"github.com/uzqw/proximity/caching/lsh"
	"github.com/uzqw/proximity/internal/plog"
	"github.com/uzqw/proximity/numerics"
)

// Cache is the uniform operation surface every cache family presents.
type Cache[K numerics.ApproxComparable[K], V any] interface {
	// Find returns a previously inserted value whose key is within its
	// own stored tolerance of query, or reports a miss.
	Find(query K) (V, bool)
	// Insert records (key, value) with the given per-entry tolerance.
	// tolerance must be positive.
	Insert(key K, value V, tolerance float32)
	// Len returns the number of entries currently held.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// NewFIFO returns a bounded, insertion-ordered cache of the given
// capacity. It panics if capacity is not positive.
func NewFIFO[K numerics.ApproxComparable[K], V any](capacity int) Cache[K, V] {
	id := uuid.New()
	plog.Default().WithCacheID(id).Debug("cache constructed", "kind", "fifo", "capacity", capacity)
	return fifo.New[K, V](capacity)
}

// NewLRU returns a bounded, recency-ordered cache of the given capacity.
// It panics if capacity is not positive.
func NewLRU[K numerics.ApproxComparable[K], V any](capacity int) Cache[K, V] {
	id := uuid.New()
	plog.Default().WithCacheID(id).Debug("cache constructed", "kind", "lru", "capacity", capacity)
	return lru.New[K, V](capacity)
}

// LSHConfig configures an LSH dispatcher: the number of random hyperplanes
// (Planes), the vector dimension (Dim, a positive multiple of
// numerics.Lanes), the capacity of each bucket (BucketCapacity), and an
// optional deterministic seed.
type LSHConfig struct {
	Planes         int
	Dim            int
	BucketCapacity int
	Seed           *uint64
}

// NewLSHFIFO returns an LSH dispatcher whose per-bucket policy is FIFO.
func NewLSHFIFO[V any](cfg LSHConfig) Cache[numerics.VectorKey, V] {
	id := uuid.New()
	plog.Default().WithCacheID(id).Debug("cache constructed", "kind", "lsh-fifo",
		"planes", cfg.Planes, "dim", cfg.Dim, "bucket_capacity", cfg.BucketCapacity)
	return lsh.NewFIFO[V](cfg.Planes, cfg.Dim, cfg.BucketCapacity, cfg.Seed)
}

// NewLSHLRU returns an LSH dispatcher whose per-bucket policy is LRU.
func NewLSHLRU[V any](cfg LSHConfig) Cache[numerics.VectorKey, V] {
	id := uuid.New()
	plog.Default().WithCacheID(id).Debug("cache constructed", "kind", "lsh-lru",
		"planes", cfg.Planes, "dim", cfg.Dim, "bucket_capacity", cfg.BucketCapacity)
	return lsh.NewLRU[V](cfg.Planes, cfg.Dim, cfg.BucketCapacity, cfg.Seed)
}

// FindAll runs Find over every query in turn, returning a same-length
// slice of results. It is a convenience for embedders (e.g. a managed
// runtime binding) that pay a per-call transition cost and would rather
// batch the whole sequence in one call.
func FindAll[K numerics.ApproxComparable[K], V any](c Cache[K, V], queries []K) []Result[V] {
	out := make([]Result[V], len(queries))
	for i, q := range queries {
		v, ok := c.Find(q)
		out[i] = Result[V]{Value: v, Hit: ok}
	}
	return out
}

// Result is one Find outcome from FindAll.
type Result[V any] struct {
	Value V
	Hit   bool
}
