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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFloat32KeyMatches(t *testing.T) {
	a, b := Float32Key(1.0), Float32Key(1.0000001)
	require.Equal(t, float32(0), a.Fuzziness(a))
	require.True(t, a.Matches(b, 1e-3))
	require.False(t, a.Matches(Float32Key(5), 1e-3))
}

func TestInt16KeyWidening(t *testing.T) {
	a, b := Int16Key(10), Int16Key(12)
	require.InDelta(t, float32(2), a.Fuzziness(b), 1e-6)
	require.True(t, a.Matches(b, 3))
	require.False(t, a.Matches(b, 1))
}

func TestVectorKeyMatches(t *testing.T) {
	a := NewVectorKey([]float32{0, 0, 0, 0, 0, 0, 0, 0})
	b := NewVectorKey([]float32{1e-4, 0, 0, 0, 0, 0, 0, 0})

	require.Equal(t, float32(0), a.Fuzziness(a))
	require.True(t, a.Matches(b, 1e-3))
	require.False(t, a.Matches(b, 1e-5))
}

func TestIndexKeyIsBitStable(t *testing.T) {
	a := NewVectorKey([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := NewVectorKey([]float32{1, 2, 3, 4, 5, 6, 7, 8})

	ka := a.IndexKey(1e-6)
	kb := b.IndexKey(1e-6)
	if diff := cmp.Diff(ka, kb); diff != "" {
		t.Errorf("IndexKey mismatch for equal vectors (-got +want):\n%s", diff)
	}

	c := NewVectorKey([]float32{1, 2, 3, 4, 5, 6, 7, 9})
	require.NotEqual(t, ka, c.IndexKey(1e-6))
	require.NotEqual(t, ka, a.IndexKey(2e-6))
}
