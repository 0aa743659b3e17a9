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

import "github.com/uzqw/proximity/numerics"

// ConfigError and DimensionError are re-exported from package numerics so
// callers of the root façade never need to import numerics just to use
// errors.As/errors.Is against a panic recovered at a boundary.
type (
	ConfigError    = numerics.ConfigError
	DimensionError = numerics.DimensionError
)
