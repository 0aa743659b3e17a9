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

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uzqw/proximity/numerics"
)

func TestNewBuildsEachKind(t *testing.T) {
	tests := []Config{
		{Kind: KindFIFO, Capacity: 4},
		{Kind: KindLRU, Capacity: 4},
		{Kind: KindLSHFIFO, Planes: 8, Dimension: 8, BucketCapacity: 2},
		{Kind: KindLSHLRU, Planes: 8, Dimension: 8, BucketCapacity: 2},
	}

	for _, cfg := range tests {
		t.Run(string(cfg.Kind), func(t *testing.T) {
			c, err := New[string](cfg)
			require.NoError(t, err)
			require.NotNil(t, c)
			require.True(t, c.IsEmpty())
		})
	}
}

func TestNewPropagatesValidationError(t *testing.T) {
	_, err := New[string](Config{Kind: KindFIFO, Capacity: 0})
	require.Error(t, err)
}

func TestNewBuiltCacheIsFunctional(t *testing.T) {
	c, err := New[string](Config{Kind: KindLRU, Capacity: 2})
	require.NoError(t, err)

	v := numerics.NewVectorKey([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	c.Insert(v, "hello", 1e-6)

	got, ok := c.Find(v)
	require.True(t, ok)
	require.Equal(t, "hello", got)
}
