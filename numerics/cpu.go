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
	"log/slog"

	"golang.org/x/sys/cpu"
)

// laneHint describes what SIMD width the host could in principle exploit
// for the Lanes-wide accumulation in Dist2/Dot. It never changes numeric
// results - it is logged once at package init purely so operators can see
// whether the host supports the lane width the kernel assumes.
func laneHint() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return "scalar"
	}
}

func init() {
	slog.Debug("numerics: kernel ready", "lanes", Lanes, "host_simd", laneHint())
}
