/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "strings"

// Capability is a bit mask of what a control point offers to the
// interaction layer.
type Capability uint8

const (
	Resize Capability = 1 << iota
	Connect
	Rotate
	Reference

	NoCapability  Capability = 0
	AllCapability            = Resize | Connect | Rotate | Reference
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{Resize, "resize"},
	{Connect, "connect"},
	{Rotate, "rotate"},
	{Reference, "reference"},
}

func (c Capability) String() string {
	if c == NoCapability {
		return "none"
	}
	var parts []string
	for _, n := range capabilityNames {
		if c&n.c != 0 {
			parts = append(parts, n.name)
			c &^= n.c
		}
	}
	if c != 0 {
		unreachable("capability bits %#x outside the defined set", uint8(c))
	}
	return strings.Join(parts, "|")
}

// Has reports whether c and want share at least one bit.
func (c Capability) Has(want Capability) bool { return c&want != 0 }
