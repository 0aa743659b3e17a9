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

package lru

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uzqw/proximity/numerics"
)

const testTolerance = 1e-8

func TestLRURecencyScenario(t *testing.T) {
	c := New[numerics.Float32Key, int](3)
	c.Insert(1, 1, testTolerance)
	c.Insert(2, 2, testTolerance)
	c.Insert(3, 3, testTolerance)

	// touching 1 makes it the most recently used, so 2 becomes the next
	// eviction candidate once a fourth entry arrives.
	v, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Insert(4, 4, testTolerance) // evicts 2, the least recently used

	_, ok = c.Find(2)
	require.False(t, ok)

	for _, k := range []numerics.Float32Key{1, 3, 4} {
		v, ok := c.Find(k)
		require.True(t, ok)
		require.Equal(t, int(k), v)
	}
}

func TestLRUOverwriteScenario(t *testing.T) {
	c := New[numerics.Float32Key, int](2)
	c.Insert(1, 1, testTolerance)
	c.Insert(2, 2, testTolerance)
	c.Insert(1, 10, testTolerance)

	v, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, 10, v)
}

func TestLRUCapacityOneEviction(t *testing.T) {
	c := New[numerics.Float32Key, int](1)
	c.Insert(1, 1, testTolerance)

	v, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	c.Insert(2, 2, testTolerance)

	_, ok = c.Find(1)
	require.False(t, ok)

	v, ok = c.Find(2)
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestLRUFindPromotesToHead(t *testing.T) {
	c := New[numerics.Float32Key, int](2)
	c.Insert(1, 1, testTolerance)
	c.Insert(2, 2, testTolerance)

	_, ok := c.Find(1) // 1 is now most recently used; 2 is least recently used
	require.True(t, ok)

	c.Insert(3, 3, testTolerance) // evicts 2, not 1

	_, ok = c.Find(2)
	require.False(t, ok)
	v, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestLRUIndexSurvivesStaleTailCollision(t *testing.T) {
	// Reinsertion of an already-present key creates a new head node while
	// the superseded node lingers toward the tail; eviction of that stale
	// node must not corrupt the index entry that now points at the fresh
	// node sharing the same (key, tolerance) digest.
	c := New[numerics.Float32Key, int](2)
	c.Insert(1, 1, testTolerance)
	c.Insert(1, 2, testTolerance) // supersedes the first node for key 1 at head
	c.Insert(3, 3, testTolerance) // evicts the stale node for key 1

	idx, present := c.index[numerics.Float32Key(1).IndexKey(testTolerance)]
	require.True(t, present, "index entry for key 1 must survive eviction of its stale node")
	require.Equal(t, 2, c.nodes.Value(idx))

	v, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = c.Find(3)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestLRULenAndIsEmpty(t *testing.T) {
	c := New[numerics.Float32Key, int](2)
	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.Len())

	c.Insert(1, 1, testTolerance)
	require.False(t, c.IsEmpty())
	require.Equal(t, 1, c.Len())

	c.Insert(2, 2, testTolerance)
	c.Insert(3, 3, testTolerance)
	require.Equal(t, 2, c.Len())
}

func TestLRUNewZeroCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero capacity")
		}
	}()
	New[numerics.Float32Key, int](0)
}

func TestLRUInsertNonPositiveTolerancePanics(t *testing.T) {
	c := New[numerics.Float32Key, int](1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive tolerance")
		}
	}()
	c.Insert(1, 1, -1)
}
