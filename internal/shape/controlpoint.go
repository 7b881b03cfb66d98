/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "shapegeom/internal/geometry"

// ControlPointID names a control point. Ids are stable per kind; the same id
// means the same role (e.g. TopLeft) wherever a kind defines it.
type ControlPointID int

const (
	TopLeft ControlPointID = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
	MiddleCenter
	OutlinePoint1
	OutlinePoint2
	OutlinePoint3
	OutlinePoint4
	LedgerEnd
)

// posFunc derives a local control point position from the shape's dimensions
// and its local extent.
type posFunc func(d dims, e geometry.Rect) geometry.Pt

// pointDef is one resolved row of a kind's control point table. hx and hy
// give the resize handle direction in the unrotated frame (-1, 0 or 1).
type pointDef struct {
	id     ControlPointID
	caps   Capability
	hx, hy int8
	pos    posFunc
}

// pointRule adjusts a base table for one kind. A rule for an id the base does
// not hold appends a new row with caps add and position pos.
type pointRule struct {
	id     ControlPointID
	remove bool
	drop   Capability
	add    Capability
	pos    posFunc
}

// at places a point at fractions of the extent.
func at(fx, fy float64) posFunc {
	return func(_ dims, e geometry.Rect) geometry.Pt {
		return geometry.Pt{X: e.X + fx*e.W, Y: e.Y + fy*e.H}
	}
}

func origin(dims, geometry.Rect) geometry.Pt { return geometry.Pt{} }

const boxCaps = Resize | Connect

var boxTable = []pointDef{
	{TopLeft, boxCaps, -1, -1, at(0, 0)},
	{TopCenter, boxCaps, 0, -1, at(0.5, 0)},
	{TopRight, boxCaps, 1, -1, at(1, 0)},
	{MiddleLeft, boxCaps, -1, 0, at(0, 0.5)},
	{MiddleRight, boxCaps, 1, 0, at(1, 0.5)},
	{BottomLeft, boxCaps, -1, 1, at(0, 1)},
	{BottomCenter, boxCaps, 0, 1, at(0.5, 1)},
	{BottomRight, boxCaps, 1, 1, at(1, 1)},
	{MiddleCenter, Reference | Rotate | Connect, 0, 0, origin},
}

// cornersNotOnOutline is the rule set for kinds whose bounding box corners
// lie off the outline: they still resize but never take connections.
var cornersNotOnOutline = []pointRule{
	{id: TopLeft, drop: Connect},
	{id: TopRight, drop: Connect},
	{id: BottomLeft, drop: Connect},
	{id: BottomRight, drop: Connect},
}

// derive applies rules to a copy of base. The rules are static tables, so an
// inconsistent rule is a programming error.
func derive(base []pointDef, ruleSets ...[]pointRule) []pointDef {
	out := make([]pointDef, len(base))
	copy(out, base)
	for _, rules := range ruleSets {
		for _, r := range rules {
			i := indexOf(out, r.id)
			switch {
			case i < 0 && r.remove:
				unreachable("remove rule for missing control point %d", r.id)
			case r.remove:
				out = append(out[:i], out[i+1:]...)
			case i < 0:
				if r.pos == nil {
					unreachable("new control point %d without position", r.id)
					continue
				}
				out = append(out, pointDef{id: r.id, caps: r.add, pos: r.pos})
			default:
				out[i].caps = (out[i].caps &^ r.drop) | r.add
				if r.pos != nil {
					out[i].pos = r.pos
				}
			}
		}
	}
	return out
}

func indexOf(defs []pointDef, id ControlPointID) int {
	for i, d := range defs {
		if d.id == id {
			return i
		}
	}
	return -1
}
