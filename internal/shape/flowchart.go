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
	"shapegeom/internal/vector"
)

// Flowchart kinds with curved outline parts. Their connection feet are
// resolved in two stages: the bounding rectangle first, then the curve that
// owns the region the first crossing landed in.

// RoundedBox

func buildRoundedBox(d dims) vector.Path {
	r := d.radius()
	if r <= 0 {
		return buildRect(d)
	}
	w, h := d.w/2, d.h/2
	var p vector.Path
	p.MoveTo(pt{X: -w + r, Y: -h})
	p.ArcTo(geometry.R(w-2*r, -h, 2*r, 2*r), 270, 90)
	p.ArcTo(geometry.R(w-2*r, h-2*r, 2*r, 2*r), 0, 90)
	p.ArcTo(geometry.R(-w, h-2*r, 2*r, 2*r), 90, 90)
	p.ArcTo(geometry.R(-w, -h, 2*r, 2*r), 180, 90)
	p.Close()
	return p
}

// cornerCircle returns the box of the rounded corner circle in the quadrant
// given by the signs of sx and sy.
func cornerCircle(d dims, sx, sy float64) geometry.Rect {
	r := d.radius()
	cx := math.Copysign(d.w/2-r, sx)
	cy := math.Copysign(d.h/2-r, sy)
	return geometry.R(cx-r, cy-r, 2*r, 2*r)
}

func roundedBoxFeatures(d dims) []feature {
	return []feature{
		ellipseOf(cornerCircle(d, -1, -1)),
		ellipseOf(cornerCircle(d, 1, -1)),
		ellipseOf(cornerCircle(d, 1, 1)),
		ellipseOf(cornerCircle(d, -1, 1)),
	}
}

func roundedBoxFoot(d dims, a, b pt) []pt {
	r := d.radius()
	return twoStage(rectPoly(d), a, b, func(c pt) (geometry.Rect, bool) {
		if r <= 0 || math.Abs(c.X) < d.w/2-r || math.Abs(c.Y) < d.h/2-r {
			return geometry.Rect{}, false
		}
		return cornerCircle(d, c.X, c.Y), true
	})
}

// cornerArcMid places a point halfway along a rounded corner.
func cornerArcMid(sx, sy float64) posFunc {
	return func(d dims, _ geometry.Rect) pt {
		return geometry.ArcPoint(cornerCircle(d, sx, sy), geometry.Angle(pt{}, pt{X: sx, Y: sy}))
	}
}

var roundedBoxPoints = derive(boxTable, cornersNotOnOutline, []pointRule{
	{id: OutlinePoint1, add: Connect, pos: cornerArcMid(-1, -1)},
	{id: OutlinePoint2, add: Connect, pos: cornerArcMid(1, -1)},
	{id: OutlinePoint3, add: Connect, pos: cornerArcMid(-1, 1)},
	{id: OutlinePoint4, add: Connect, pos: cornerArcMid(1, 1)},
})

// Terminator

// terminatorCaps returns the boxes of the two rounded ends. The ends sit on
// the short sides: left and right when the shape is at least as wide as high.
func terminatorCaps(d dims) (geometry.Rect, geometry.Rect) {
	r := math.Min(d.w, d.h) / 2
	w, h := d.w/2, d.h/2
	if d.w >= d.h {
		return geometry.R(-w, -h, 2*r, 2*r), geometry.R(w-2*r, -h, 2*r, 2*r)
	}
	return geometry.R(-w, -h, 2*r, 2*r), geometry.R(-w, h-2*r, 2*r, 2*r)
}

func buildTerminator(d dims) vector.Path {
	first, second := terminatorCaps(d)
	var p vector.Path
	if d.w >= d.h {
		p.ArcTo(first, 90, 180)
		p.ArcTo(second, 270, 180)
	} else {
		p.ArcTo(first, 180, 180)
		p.ArcTo(second, 0, 180)
	}
	p.Close()
	return p
}

func terminatorFeatures(d dims) []feature {
	first, second := terminatorCaps(d)
	return []feature{ellipseOf(first), ellipseOf(second)}
}

func terminatorFoot(d dims, a, b pt) []pt {
	first, second := terminatorCaps(d)
	r := first.W / 2
	return twoStage(rectPoly(d), a, b, func(c pt) (geometry.Rect, bool) {
		if d.w >= d.h {
			switch {
			case c.X <= -d.w/2+r:
				return first, true
			case c.X >= d.w/2-r:
				return second, true
			}
			return geometry.Rect{}, false
		}
		switch {
		case c.Y <= -d.h/2+r:
			return first, true
		case c.Y >= d.h/2-r:
			return second, true
		}
		return geometry.Rect{}, false
	})
}

var terminatorPoints = derive(boxTable, cornersNotOnOutline)

// Document

// documentWave returns the baseline of the wavy bottom edge and the wave
// amplitude parameter. The cubic peaks at about 0.58 amp off the baseline, so
// the curve stays inside the extent.
func documentWave(d dims) (baseline, amp float64) {
	amp = d.h / 8
	return d.h/2 - amp, amp
}

func buildDocument(d dims) vector.Path {
	y0, a := documentWave(d)
	w, h := d.w/2, d.h/2
	var p vector.Path
	p.MoveTo(pt{X: -w, Y: -h})
	p.LineTo(pt{X: w, Y: -h})
	p.LineTo(pt{X: w, Y: y0})
	p.CubicTo(pt{X: w / 3, Y: y0 - 2*a}, pt{X: -w / 3, Y: y0 + 2*a}, pt{X: -w, Y: y0})
	p.Close()
	return p
}

func onWave(fx float64) posFunc {
	return func(d dims, e geometry.Rect) pt {
		y0, _ := documentWave(d)
		return pt{X: e.X + fx*e.W, Y: y0}
	}
}

var documentPoints = derive(boxTable, []pointRule{
	{id: BottomLeft, pos: onWave(0)},
	{id: BottomCenter, pos: onWave(0.5)},
	{id: BottomRight, pos: onWave(1)},
})

// Database

// databaseCaps returns the boxes of the top and bottom ellipses of the
// cylinder. The ellipse height is a fifth of the shape height.
func databaseCaps(d dims) (top, bottom geometry.Rect) {
	e := d.h / 5
	return geometry.R(-d.w/2, -d.h/2, d.w, e), geometry.R(-d.w/2, d.h/2-e, d.w, e)
}

func buildDatabase(d dims) vector.Path {
	top, bottom := databaseCaps(d)
	w := d.w / 2
	var p vector.Path
	p.MoveTo(pt{X: -w, Y: top.Center().Y})
	p.LineTo(pt{X: -w, Y: bottom.Center().Y})
	p.ArcTo(bottom, 180, -180)
	p.ArcTo(top, 0, -180)
	p.Close()

	// Front half of the top ellipse, then the stacked rings below it. A ring
	// is drawn only while it stays above the bottom cap.
	p.ArcTo(top, 0, 180)
	p.EndFigure()
	for k := 1; k <= d.rings; k++ {
		ring := top.Offset(0, float64(k)*top.H/2)
		if ring.Bottom() >= bottom.Center().Y {
			break
		}
		p.ArcTo(ring, 0, 180)
		p.EndFigure()
	}
	return p
}

func databaseFeatures(d dims) []feature {
	top, bottom := databaseCaps(d)
	return []feature{ellipseOf(top), ellipseOf(bottom)}
}

func databaseFoot(d dims, a, b pt) []pt {
	top, bottom := databaseCaps(d)
	return twoStage(rectPoly(d), a, b, func(c pt) (geometry.Rect, bool) {
		switch {
		case c.Y <= top.Center().Y:
			return top, true
		case c.Y >= bottom.Center().Y:
			return bottom, true
		}
		return geometry.Rect{}, false
	})
}

var databasePoints = derive(boxTable, cornersNotOnOutline)

// TapeStorage

func buildTape(d dims) vector.Path {
	e := centeredExtent(d)
	var p vector.Path
	p.AddEllipse(e)
	p.AddLine(pt{X: 0, Y: e.Bottom()}, pt{X: e.Right(), Y: e.Bottom()})
	return p
}

func tapeFeatures(d dims) []feature {
	e := centeredExtent(d)
	return []feature{ellipseOf(e), polygonOf(pt{X: 0, Y: e.Bottom()}, pt{X: e.Right(), Y: e.Bottom()})}
}

var tapePoints = derive(ellipsePoints, []pointRule{
	{id: LedgerEnd, add: Connect, pos: at(1, 1)},
})
