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
	"github.com/uzqw/proximity"
	"github.com/uzqw/proximity/numerics"
)

// New builds the cache described by c, keyed on numerics.VectorKey since a
// file-configured cache is always built for the vector-embedding use case
// this library targets. It returns an error instead of panicking even for
// what the cache constructors treat as programmer errors, because a
// malformed config file is an external-boundary failure (see
// SPEC_FULL.md §7).
func New[V any](c Config) (proximity.Cache[numerics.VectorKey, V], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Kind {
	case KindFIFO:
		return proximity.NewFIFO[numerics.VectorKey, V](c.Capacity), nil
	case KindLRU:
		return proximity.NewLRU[numerics.VectorKey, V](c.Capacity), nil
	case KindLSHFIFO:
		return proximity.NewLSHFIFO[V](proximity.LSHConfig{
			Planes: c.Planes, Dim: c.Dimension, BucketCapacity: c.BucketCapacity, Seed: c.Seed,
		}), nil
	case KindLSHLRU:
		return proximity.NewLSHLRU[V](proximity.LSHConfig{
			Planes: c.Planes, Dim: c.Dimension, BucketCapacity: c.BucketCapacity, Seed: c.Seed,
		}), nil
	default:
		panic("config: unreachable kind after Validate")
	}
}
