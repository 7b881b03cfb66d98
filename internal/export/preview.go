/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders developer previews of shapes: the outline of every
// requested kind at a set of angles together with its loose and tight
// bounding rectangles and its control points.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"shapegeom/internal/config"
	"shapegeom/internal/geometry"
	applog "shapegeom/internal/log"
	"shapegeom/internal/shape"
	"shapegeom/internal/style"
)

// Options controls the preview layout. Units are points.
//
//nolint:revive // keep fields explicit for clarity
type Options struct {
	Margin            float64
	CellSize          float64
	LineWidth         float64
	ShowBounds        bool
	ShowControlPoints bool
	Angles            []int // tenths of a degree, one column each
	Title             string
}

// OptionsFromConfig maps the preview section of the app config.
func OptionsFromConfig(c config.PreviewConfig) Options {
	return Options{
		Margin:            c.Margin,
		CellSize:          c.CellSize,
		LineWidth:         c.LineWidth,
		ShowBounds:        c.ShowBounds,
		ShowControlPoints: c.ShowControlPoints,
		Angles:            append([]int(nil), c.Angles...),
	}
}

func (o Options) withDefaults() Options {
	d := config.Defaults().Preview
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.CellSize <= 0 {
		o.CellSize = d.CellSize
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	if len(o.Angles) == 0 {
		o.Angles = []int{0}
	}
	if o.Title == "" {
		o.Title = "shapegeom preview"
	}
	return o
}

// Cell is one shape placed in the preview grid.
type Cell struct {
	Kind  shape.Kind
	Angle int
	Shape *shape.Shape
	Frame geometry.Rect
}

// Sheet is a laid out preview page.
type Sheet struct {
	Width, Height float64
	Cells         []Cell
	Opt           Options
}

// Layout places one row per kind and one column per angle. Each shape keeps
// its default size and sits at the centre of its cell.
func Layout(kinds []shape.Kind, opt Options) (*Sheet, error) {
	opt = opt.withDefaults()
	if len(kinds) == 0 {
		kinds = shape.Kinds()
	}
	stroke := style.DefaultStroke()
	stroke.Width = opt.LineWidth

	sh := &Sheet{Opt: opt}
	sh.Width = 2*opt.Margin + float64(len(opt.Angles))*opt.CellSize
	sh.Height = 2*opt.Margin + float64(len(kinds))*opt.CellSize
	for row, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("layout row %d: %w", row, shape.ErrInvalidArgument)
		}
		for col, a := range opt.Angles {
			frame := geometry.R(opt.Margin+float64(col)*opt.CellSize, opt.Margin+float64(row)*opt.CellSize, opt.CellSize, opt.CellSize)
			s := shape.New(k)
			s.SetLineStyle(stroke)
			c := frame.Center()
			s.MoveTo(c.X, c.Y)
			s.SetAngle(a)
			sh.Cells = append(sh.Cells, Cell{Kind: k, Angle: s.Angle(), Shape: s, Frame: frame})
		}
	}
	return sh, nil
}

// colours used across writers.
type palette struct {
	outline, loose, tight, label colorful.Color
	caps                         map[shape.Capability]colorful.Color
}

func newPalette() palette {
	p := style.Palette(5)
	return palette{
		outline: style.Black,
		loose:   p[0],
		tight:   p[2],
		label:   colorful.Color{R: 0.35, G: 0.35, B: 0.35},
		caps: map[shape.Capability]colorful.Color{
			shape.Resize:    p[1],
			shape.Connect:   p[3],
			shape.Reference: p[4],
		},
	}
}

// pointColour picks the colour of the most significant capability.
func (p palette) pointColour(c shape.Capability) colorful.Color {
	for _, want := range []shape.Capability{shape.Reference, shape.Resize, shape.Connect} {
		if c.Has(want) {
			return p.caps[want]
		}
	}
	return p.outline
}

// controlPoint is a resolved world position with its effective mask.
type controlPoint struct {
	ID   shape.ControlPointID
	Pos  geometry.Pt
	Caps shape.Capability
}

func controlPoints(s *shape.Shape) []controlPoint {
	ids := s.ControlPointIDs()
	out := make([]controlPoint, 0, len(ids))
	for _, id := range ids {
		pos, err := s.ControlPointWorldPosition(id)
		if err != nil {
			continue
		}
		caps, _ := s.ControlPointCapabilities(id)
		out = append(out, controlPoint{ID: id, Pos: pos, Caps: caps})
	}
	return out
}

func cellLabel(c Cell) string {
	return fmt.Sprintf("%s %g°", c.Kind, geometry.TenthsToDegrees(c.Angle))
}

// Export writes the preview to outPath; the extension selects SVG or PDF.
func Export(ctx context.Context, outPath string, kinds []shape.Kind, opt Options) error {
	sh, err := Layout(kinds, opt)
	if err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(outPath), "."))
	l := applog.WithComponent("export").With(slog.String("format", format), slog.String("path", outPath))
	switch format {
	case "svg":
		err = WriteSVGFile(outPath, sh)
	case "pdf":
		err = WritePDFFile(outPath, sh)
	default:
		return fmt.Errorf("unsupported preview format %q", format)
	}
	if err != nil {
		return err
	}
	l.InfoContext(ctx, "preview written", slog.Int("cells", len(sh.Cells)))
	return nil
}
