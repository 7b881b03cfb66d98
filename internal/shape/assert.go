/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"shapegeom/internal/vector"
)

// Options tunes package wide behavior. The zero value keeps the defaults.
type Options struct {
	// StrictAssertions turns unreachable states into panics. Builds with the
	// geomdebug tag are always strict.
	StrictAssertions bool
	// FlattenSegments is the curve resolution for hit tests and connection
	// feet on bezier outlines; values < 1 use the vector default.
	FlattenSegments int
}

var (
	strictAssertions atomic.Bool
	segmentsSetting  atomic.Int64
)

// Configure applies opts to every shape.
func Configure(opts Options) {
	strictAssertions.Store(opts.StrictAssertions)
	segmentsSetting.Store(int64(opts.FlattenSegments))
}

// CurrentOptions returns the active settings.
func CurrentOptions() Options {
	return Options{StrictAssertions: strict(), FlattenSegments: int(segmentsSetting.Load())}
}

func strict() bool { return debugBuild || strictAssertions.Load() }

func flattenSegments() int {
	if n := segmentsSetting.Load(); n > 0 {
		return int(n)
	}
	return vector.DefaultFlattenSegments
}

// unreachable marks a state that a closed enumeration or a static table
// rules out. Strict builds panic, release builds log and carry on with a
// fallback chosen by the caller.
func unreachable(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if strict() {
		panic("shape: unreachable: " + msg)
	}
	logger().Error("unreachable state", slog.String("detail", msg))
}
