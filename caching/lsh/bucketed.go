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

package lsh

import (
	"github.com/uzqw/proximity/caching/fifo"
	"github.com/uzqw/proximity/caching/lru"
	"github.com/uzqw/proximity/numerics"
)

// innerCache is the capability the dispatcher needs from its bucket
// policy: construct-with-capacity, find, insert, len. FIFO and LRU buckets
// both satisfy it, so Bucketed is parameterized once and instantiated as
// LSH-FIFO or LSH-LRU without duplicating the dispatch logic.
type innerCache[V any] interface {
	Find(numerics.VectorKey) (V, bool)
	Insert(numerics.VectorKey, V, float32)
	Len() int
}

// Bucketed routes vector keys to an inner bounded cache selected by their
// SimHash signature. Keys whose normalized directions coincide always
// route to the same bucket; keys that merely collide in signature rely on
// the inner cache's own Matches check to reject false positives.
type Bucketed[V any] struct {
	projector *Projector
	bucketCap int
	newBucket func(capacity int) innerCache[V]
	buckets   map[Signature]innerCache[V]
}

// NewFIFO returns an LSH dispatcher whose buckets are FIFO caches.
func NewFIFO[V any](planes, dim, bucketCapacity int, seed *uint64) *Bucketed[V] {
	return newBucketed[V](planes, dim, bucketCapacity, seed, func(capacity int) innerCache[V] {
		return fifo.New[numerics.VectorKey, V](capacity)
	})
}

// NewLRU returns an LSH dispatcher whose buckets are LRU caches.
func NewLRU[V any](planes, dim, bucketCapacity int, seed *uint64) *Bucketed[V] {
	return newBucketed[V](planes, dim, bucketCapacity, seed, func(capacity int) innerCache[V] {
		return lru.New[numerics.VectorKey, V](capacity)
	})
}

func newBucketed[V any](planes, dim, bucketCapacity int, seed *uint64, newBucket func(int) innerCache[V]) *Bucketed[V] {
	if bucketCapacity <= 0 {
		panic(&numerics.ConfigError{Field: "bucketCapacity", Value: bucketCapacity, Want: "> 0"})
	}
	return &Bucketed[V]{
		projector: NewProjector(planes, dim, seed),
		bucketCap: bucketCapacity,
		newBucket: newBucket,
		buckets:   make(map[Signature]innerCache[V]),
	}
}

// Find computes the signature of query and delegates to that bucket, or
// reports a miss if no bucket has ever been created for that signature.
func (b *Bucketed[V]) Find(query numerics.VectorKey) (V, bool) {
	sig := b.projector.Sign(query.Values())
	bucket, ok := b.buckets[sig]
	if !ok {
		var zero V
		return zero, false
	}
	return bucket.Find(query)
}

// Insert computes the signature of key, creating its bucket on first use
// with the configured inner policy and per-bucket capacity, then delegates
// insertion to it.
func (b *Bucketed[V]) Insert(key numerics.VectorKey, value V, tolerance float32) {
	sig := b.projector.Sign(key.Values())
	bucket, ok := b.buckets[sig]
	if !ok {
		bucket = b.newBucket(b.bucketCap)
		b.buckets[sig] = bucket
	}
	bucket.Insert(key, value, tolerance)
}

// Len returns the sum of all bucket sizes.
func (b *Bucketed[V]) Len() int {
	total := 0
	for _, bucket := range b.buckets {
		total += bucket.Len()
	}
	return total
}

// IsEmpty reports whether the dispatcher holds no entries.
func (b *Bucketed[V]) IsEmpty() bool {
	return b.Len() == 0
}
