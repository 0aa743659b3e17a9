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

import "fmt"

// ConfigError reports a misconfiguration: a non-positive capacity, bucket
// capacity or plane count, or a dimension that is not a positive multiple
// of Lanes, caught at construction; or a non-positive tolerance, caught at
// Insert. These are programmer errors: constructors and Insert panic with
// one rather than returning it, per the "fail fast" policy.
type ConfigError struct {
	Field string
	Value any
	Want  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("proximity: %s = %v, want %s", e.Field, e.Value, e.Want)
}

// DimensionError reports a vector length that disagrees with the
// dimension a projector or kernel call was configured for.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("proximity: vector has dimension %d, want %d", e.Got, e.Want)
}
