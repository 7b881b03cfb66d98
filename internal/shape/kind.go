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
	"strings"

	"shapegeom/internal/geometry"
	"shapegeom/internal/vector"
)

// Kind identifies a shape variant. The set is closed; every kind has one row
// in the dispatch table below.
type Kind int

const (
	Rectangle Kind = iota + 1
	Square
	Ellipse
	Circle
	Diamond
	Triangle
	Hexagon
	Parallelogram
	RoundedBox
	Terminator
	Document
	Database
	TapeStorage
	Transformer
	Table
)

// kindInfo bundles the pure per-kind functions. Optional hooks fall back to
// generic behavior when nil.
type kindInfo struct {
	name       string
	regular    bool
	defW, defH float64
	points     []pointDef
	build      func(d dims) vector.Path

	// extent is the local loose rectangle; default is W×H centered on the origin.
	extent func(d dims) geometry.Rect

	// features decompose the outline for tight bounds; nil bounds the path itself.
	features func(d dims) []feature

	// foot returns candidate crossings of segment a-b; nil intersects the
	// flattened outline.
	foot func(d dims, a, b geometry.Pt) []geometry.Pt

	// degenerate reports dimensions that cannot produce an outline beyond
	// the common W, H > 0 check.
	degenerate func(d dims) bool
}

var kinds = map[Kind]*kindInfo{
	Rectangle: {
		name: "rectangle", defW: 100, defH: 60,
		points: boxTable, build: buildRect, features: rectFeatures, foot: rectFoot,
	},
	Square: {
		name: "square", regular: true, defW: 60, defH: 60,
		points: boxTable, build: buildRect, features: rectFeatures, foot: rectFoot,
	},
	Ellipse: {
		name: "ellipse", defW: 100, defH: 60,
		points: ellipsePoints, build: buildEllipse, features: ellipseFeatures, foot: ellipseFoot,
	},
	Circle: {
		name: "circle", regular: true, defW: 60, defH: 60,
		points: ellipsePoints, build: buildEllipse, features: ellipseFeatures, foot: ellipseFoot,
	},
	Diamond: {
		name: "diamond", defW: 80, defH: 60,
		points: diamondPoints, build: polygonBuilder(diamondPoly), features: polygonFeatures(diamondPoly), foot: polygonFoot(diamondPoly),
	},
	Triangle: {
		name: "triangle", defW: 80, defH: 60,
		points: trianglePoints, build: polygonBuilder(trianglePoly), extent: triangleExtent,
		features: polygonFeatures(trianglePoly), foot: polygonFoot(trianglePoly),
	},
	Hexagon: {
		name: "hexagon", defW: 100, defH: 50,
		points: hexagonPoints, build: polygonBuilder(hexagonPoly), features: polygonFeatures(hexagonPoly), foot: polygonFoot(hexagonPoly),
	},
	Parallelogram: {
		name: "parallelogram", defW: 100, defH: 50,
		points: parallelogramPoints, build: polygonBuilder(parallelogramPoly),
		features: polygonFeatures(parallelogramPoly), foot: polygonFoot(parallelogramPoly),
	},
	RoundedBox: {
		name: "roundedbox", defW: 100, defH: 60,
		points: roundedBoxPoints, build: buildRoundedBox, features: roundedBoxFeatures, foot: roundedBoxFoot,
	},
	Terminator: {
		name: "terminator", defW: 100, defH: 40,
		points: terminatorPoints, build: buildTerminator, features: terminatorFeatures, foot: terminatorFoot,
	},
	Document: {
		name: "document", defW: 100, defH: 70,
		points: documentPoints, build: buildDocument,
	},
	Database: {
		name: "database", defW: 60, defH: 80,
		points: databasePoints, build: buildDatabase, features: databaseFeatures, foot: databaseFoot,
	},
	TapeStorage: {
		name: "tapestorage", regular: true, defW: 60, defH: 60,
		points: tapePoints, build: buildTape, features: tapeFeatures, foot: ellipseFoot,
	},
	Transformer: {
		name: "transformer", defW: 40, defH: 60,
		points: transformerPoints, build: buildTransformer, features: transformerFeatures, foot: transformerFoot,
	},
	Table: {
		name: "table", defW: 120, defH: 80,
		points: tablePoints, build: buildTable, features: rectFeatures, foot: rectFoot,
		degenerate: func(d dims) bool { return d.h <= d.header },
	},
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := Rectangle; k <= Table; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if s, ok := kinds[k]; ok {
		return s.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Regular reports whether the kind is sized by a single diameter.
func (k Kind) Regular() bool { return k.info().regular }

// ParseKind resolves a kind by its name, ignoring case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kinds[k].name == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q: %w", name, ErrInvalidArgument)
}

func (k Kind) info() *kindInfo {
	if s, ok := kinds[k]; ok {
		return s
	}
	unreachable("no dispatch entry for %s", k)
	return kinds[Rectangle]
}

func (s *kindInfo) localExtent(d dims) geometry.Rect {
	if s.extent != nil {
		return s.extent(d)
	}
	return centeredExtent(d)
}

func centeredExtent(d dims) geometry.Rect { return geometry.R(-d.w/2, -d.h/2, d.w, d.h) }
