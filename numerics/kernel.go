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

// Package numerics implements the lane-parallel vector kernel (squared L2
// distance, dot product, L2 normalization) and the approximate-comparison
// capability that cache keys implement.
package numerics

import "math"

// Lanes is the SIMD lane width the kernel accumulates over. Vector lengths
// handed to Dist2, Dot and Normalize must be a multiple of Lanes.
const Lanes = 8

// Dist2 returns the squared Euclidean distance between a and b: sum((a[i] -
// b[i])^2). a and b must have equal, non-zero length; callers in release
// builds get an undefined (but non-panicking where possible) result on
// mismatch, matching the kernel's "fail fast in checked builds" policy -
// this implementation always panics on mismatch since Go has no separate
// release/debug build mode for slice bounds checks.
//
// The loop accumulates into Lanes independent running sums instead of one
// scalar so the reduction shape matches what a SIMD unit (or the compiler's
// auto-vectorizer) can execute lane-parallel; the final horizontal sum
// folds the lanes together.
func Dist2(a, b []float32) float32 {
	if len(a) != len(b) {
		panic(&DimensionError{Got: len(b), Want: len(a)})
	}

	var acc [Lanes]float32
	n := len(a) - len(a)%Lanes
	for i := 0; i < n; i += Lanes {
		for l := 0; l < Lanes; l++ {
			d := a[i+l] - b[i+l]
			acc[l] += d * d
		}
	}
	var sum float32
	for l := 0; l < Lanes; l++ {
		sum += acc[l]
	}
	for i := n; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Dist returns the Euclidean distance sqrt(Dist2(a, b)). Prefer Dist2 for
// comparisons between distances: dist(u,v) <= dist(w,x) iff dist2(u,v) <=
// dist2(w,x) because sqrt is monotonic on non-negative reals.
func Dist(a, b []float32) float32 {
	return float32(math.Sqrt(float64(Dist2(a, b))))
}

// Dot returns the dot product sum(a[i] * b[i]). Same lane structure as
// Dist2.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		panic(&DimensionError{Got: len(b), Want: len(a)})
	}

	var acc [Lanes]float32
	n := len(a) - len(a)%Lanes
	for i := 0; i < n; i += Lanes {
		for l := 0; l < Lanes; l++ {
			acc[l] += a[i+l] * b[i+l]
		}
	}
	var sum float32
	for l := 0; l < Lanes; l++ {
		sum += acc[l]
	}
	for i := n; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Normalize returns a / ||a||2. If ||a||2 is exactly zero, it returns a
// zero vector of the same length rather than dividing by zero.
func Normalize(a []float32) []float32 {
	norm := float32(math.Sqrt(float64(Dot(a, a))))
	out := make([]float32, len(a))
	if norm == 0 {
		return out
	}
	inv := 1 / norm
	for i, v := range a {
		out[i] = v * inv
	}
	return out
}
