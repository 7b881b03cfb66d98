/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"math"

	"shapegeom/internal/geometry"
)

// MoveControlPointTo resizes the shape by dragging a Resize control point to
// the world position (x, y). The drag is mapped into the unrotated frame; the
// edges opposite the handle stay where they are in world space. keepAspect
// preserves the width to height ratio, which regular kinds always do. It
// reports false when the point cannot resize.
func (s *Shape) MoveControlPointTo(id ControlPointID, x, y float64, keepAspect bool) (bool, error) {
	i, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	sp := s.info()
	def := sp.points[i]
	if !def.caps.Has(Resize) || (def.hx == 0 && def.hy == 0) {
		return false, nil
	}

	e := sp.localExtent(s.d)
	t := s.toLocal(geometry.Pt{X: x, Y: y})
	w, h := e.W, e.H
	switch def.hx {
	case -1:
		w = math.Max(e.Right()-t.X, 0)
	case 1:
		w = math.Max(t.X-e.Left(), 0)
	}
	switch def.hy {
	case -1:
		h = math.Max(e.Bottom()-t.Y, 0)
	case 1:
		h = math.Max(t.Y-e.Top(), 0)
	}
	if keepAspect || sp.regular {
		w, h = keepRatio(def.hx, def.hy, e.W, e.H, w, h)
	}

	box := geometry.Rect{X: anchor(def.hx, e.Left(), e.Right(), w), Y: anchor(def.hy, e.Top(), e.Bottom(), h), W: w, H: h}
	originLocal := box.Min().Sub(sp.localExtent(dimsWithSize(s.d, w, h)).Min())
	pos := s.toWorld(originLocal)
	s.SetSize(w, h)
	s.MoveTo(pos.X, pos.Y)
	return true, nil
}

// anchor returns the new low edge of one axis: the high edge stays for a low
// handle, the low edge for a high handle, the center for a middle handle.
func anchor(dir int8, lo, hi, size float64) float64 {
	switch dir {
	case -1:
		return hi - size
	case 1:
		return lo
	}
	return (lo+hi)/2 - size/2
}

// keepRatio adjusts the dragged size (w, h) to the ratio of (ow, oh). Corner
// handles grow to the larger scale, edge handles derive the other side.
func keepRatio(hx, hy int8, ow, oh, w, h float64) (float64, float64) {
	if ow <= 0 || oh <= 0 {
		m := math.Max(w, h)
		return m, m
	}
	switch {
	case hx != 0 && hy != 0:
		f := math.Max(w/ow, h/oh)
		return ow * f, oh * f
	case hx != 0:
		return w, w * oh / ow
	default:
		return h * ow / oh, h
	}
}

func dimsWithSize(d dims, w, h float64) dims {
	d.w, d.h = w, h
	return d
}
