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

package numerics

import (
	"encoding/binary"
	"math"
)

// ApproxComparable is the capability a cache key type provides: a
// non-negative, symmetric dissimilarity measure (Fuzziness) and a
// tolerance-bounded equality test (Matches). IndexKey returns a canonical,
// comparable digest of the key's bit pattern combined with a tolerance -
// caches that need a lookup index (LRU) use it as a map key instead of the
// key value itself, since vector-backed keys are not comparable in Go's
// map-key sense.
type ApproxComparable[T any] interface {
	Fuzziness(other T) float32
	Matches(other T, tolerance float32) bool
	IndexKey(tolerance float32) string
}

// bitKey packs tolerance and values as big-endian float32 bit patterns into
// a string, giving a total, hash-stable digest consistent with bit-exact
// equality of the stored entry (design note: compare/hash floats via their
// bit pattern, never via IEEE partial ordering).
func bitKey(tolerance float32, values ...float32) string {
	buf := make([]byte, 4+4*len(values))
	binary.BigEndian.PutUint32(buf[0:4], math.Float32bits(tolerance))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[4+4*i:8+4*i], math.Float32bits(v))
	}
	return string(buf)
}

// Float32Key is a scalar f32 cache key. Fuzziness is absolute difference.
type Float32Key float32

func (k Float32Key) Fuzziness(other Float32Key) float32 {
	d := float64(k) - float64(other)
	return float32(math.Abs(d))
}

func (k Float32Key) Matches(other Float32Key, tolerance float32) bool {
	return k.Fuzziness(other) < tolerance
}

func (k Float32Key) IndexKey(tolerance float32) string {
	return bitKey(tolerance, float32(k))
}

// Int16Key is a 16-bit integer cache key compared via f32 widening.
type Int16Key int16

func (k Int16Key) Fuzziness(other Int16Key) float32 {
	return Float32Key(k).Fuzziness(Float32Key(other))
}

func (k Int16Key) Matches(other Int16Key, tolerance float32) bool {
	return Float32Key(k).Matches(Float32Key(other), tolerance)
}

func (k Int16Key) IndexKey(tolerance float32) string {
	return bitKey(tolerance, float32(k))
}

// VectorKey is a fixed-length f32 vector cache key. Fuzziness is Euclidean
// distance, computed via the kernel; Matches compares the squared distance
// against tolerance^2 to avoid the square root.
type VectorKey struct {
	values []float32
}

// NewVectorKey wraps v as a VectorKey. v is not copied; callers must not
// mutate it after construction.
func NewVectorKey(v []float32) VectorKey {
	return VectorKey{values: v}
}

// Values returns the underlying f32 slice, exposed for the LSH projector.
func (k VectorKey) Values() []float32 {
	return k.values
}

func (k VectorKey) Fuzziness(other VectorKey) float32 {
	return Dist(k.values, other.values)
}

func (k VectorKey) Matches(other VectorKey, tolerance float32) bool {
	return Dist2(k.values, other.values) < tolerance*tolerance
}

func (k VectorKey) IndexKey(tolerance float32) string {
	return bitKey(tolerance, k.values...)
}
