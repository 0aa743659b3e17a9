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

/*
Package proximity is an approximate-match cache for high-dimensional f32
vector keys: given a query vector and a per-entry tolerance, it returns a
previously inserted value whose key lies within that tolerance, or a miss.

# Cache families

Four constructors build a Cache over the generic key type K, which must
implement numerics.ApproxComparable[K]:

	proximity.NewFIFO[K, V](capacity)      // bounded, insertion-ordered
	proximity.NewLRU[K, V](capacity)       // bounded, recency-ordered
	proximity.NewLSHFIFO[V](cfg)           // cosine-LSH buckets of FIFO
	proximity.NewLSHLRU[V](cfg)            // cosine-LSH buckets of LRU

LSH caches are fixed to numerics.VectorKey, since hyperplane signatures are
only meaningful over vector keys.

	cache := proximity.NewLRU[numerics.VectorKey, string](64)
	cache.Insert(numerics.NewVectorKey(v), "result", 1e-6)
	if got, ok := cache.Find(numerics.NewVectorKey(q)); ok {
		// got == "result" when ||q - v|| < 1e-6
	}

# Concurrency

The library is single-writer: Find mutates recency state in LRU and
LSH-over-LRU, and bucket creation on Insert mutates LSH dispatchers. An
embedder that needs concurrent access must serialize calls itself (e.g. a
sync.Mutex around a Cache value); proximity does not do this internally.
*/
package proximity
