/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "shapegeom/internal/geometry"

func (s *Shape) lookup(id ControlPointID) (int, error) {
	i := indexOf(s.info().points, id)
	if i < 0 {
		return -1, &ControlPointError{Kind: s.kind, ID: id}
	}
	return i, nil
}

// HasControlPointCapability reports whether the control point offers any of
// the capabilities in want. Connect additionally requires the point's
// connection toggle to be on. Ids the kind does not define return a
// *ControlPointError.
func (s *Shape) HasControlPointCapability(id ControlPointID, want Capability) (bool, error) {
	caps, err := s.ControlPointCapabilities(id)
	if err != nil {
		return false, err
	}
	return caps.Has(want), nil
}

// ControlPointCapabilities returns the effective mask of a control point.
func (s *Shape) ControlPointCapabilities(id ControlPointID) (Capability, error) {
	i, err := s.lookup(id)
	if err != nil {
		return NoCapability, err
	}
	caps := s.info().points[i].caps
	if s.connOff[id] {
		caps &^= Connect
	}
	return caps, nil
}

// ControlPointPosition returns the local position of a control point,
// recomputing all positions first when the shape is dirty.
func (s *Shape) ControlPointPosition(id ControlPointID) (geometry.Pt, error) {
	i, err := s.lookup(id)
	if err != nil {
		return geometry.Pt{}, err
	}
	return s.localPoints()[i], nil
}

// ControlPointWorldPosition is ControlPointPosition mapped to world
// coordinates.
func (s *Shape) ControlPointWorldPosition(id ControlPointID) (geometry.Pt, error) {
	p, err := s.ControlPointPosition(id)
	if err != nil {
		return geometry.Pt{}, err
	}
	return s.toWorld(p), nil
}

// ControlPointIDs lists the kind's control points in table order.
func (s *Shape) ControlPointIDs() []ControlPointID {
	defs := s.info().points
	ids := make([]ControlPointID, len(defs))
	for i, d := range defs {
		ids[i] = d.id
	}
	return ids
}

// ControlPointCount returns the number of control points of the kind.
func (s *Shape) ControlPointCount() int { return len(s.info().points) }

// ControlPointIDAt returns the id stored at table index i.
func (s *Shape) ControlPointIDAt(i int) (ControlPointID, error) {
	defs := s.info().points
	if i < 0 || i >= len(defs) {
		return 0, &IndexError{Kind: s.kind, Index: i}
	}
	return defs[i].id, nil
}

// ControlPointIndex returns the table index of id.
func (s *Shape) ControlPointIndex(id ControlPointID) (int, error) { return s.lookup(id) }

// SetConnectionEnabled toggles whether a point accepts connections. Points
// without the Connect capability can be toggled but never gain it.
func (s *Shape) SetConnectionEnabled(id ControlPointID, on bool) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	if on {
		delete(s.connOff, id)
		return nil
	}
	if s.connOff == nil {
		s.connOff = make(map[ControlPointID]bool)
	}
	s.connOff[id] = true
	return nil
}

// ConnectionEnabled reports the connection toggle of a point.
func (s *Shape) ConnectionEnabled(id ControlPointID) (bool, error) {
	if _, err := s.lookup(id); err != nil {
		return false, err
	}
	return !s.connOff[id], nil
}
