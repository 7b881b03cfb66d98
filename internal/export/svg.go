/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shapegeom/internal/geometry"
	"shapegeom/internal/style"
	"shapegeom/internal/vector"
)

// WriteSVG renders the sheet as a standalone SVG document.
func WriteSVG(w io.Writer, sh *Sheet) error {
	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}
	opt := sh.Opt
	pal := newPalette()

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", sh.Width, sh.Height, sh.Width, sh.Height)
	wf("  <title>%s</title>\n", escText(opt.Title))
	wf("  <rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"#ffffff\"/>\n", sh.Width, sh.Height)

	for _, c := range sh.Cells {
		s := c.Shape
		wf("  <g data-kind=\"%s\" data-angle=\"%d\">\n", escAttr(c.Kind.String()), c.Angle)
		wf("    <text x=\"%g\" y=\"%g\" font-family=\"Helvetica, Arial, sans-serif\" font-size=\"9\" fill=\"%s\">%s</text>\n",
			c.Frame.X+4, c.Frame.Y+11, style.Hex(pal.label), escText(cellLabel(c)))
		if opt.ShowBounds {
			if r := s.LooseBounds(); r.IsValid() {
				wf("    <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"4 2\"/>\n",
					r.X, r.Y, r.W, r.H, style.Hex(pal.loose))
			}
			if r := s.TightBounds(); r.IsValid() {
				wf("    <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
					r.X, r.Y, r.W, r.H, style.Hex(pal.tight))
			}
		}
		world := s.WorldOutline()
		if d := svgPathData(&world); d != "" {
			wf("    <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" stroke-linejoin=\"miter\"/>\n", d, style.Hex(pal.outline), opt.LineWidth)
		}
		if opt.ShowControlPoints {
			for _, cp := range controlPoints(s) {
				wf("    <circle cx=\"%g\" cy=\"%g\" r=\"2\" fill=\"%s\"><title>%d %s</title></circle>\n",
					cp.Pos.X, cp.Pos.Y, style.Hex(pal.pointColour(cp.Caps)), cp.ID, cp.Caps)
			}
		}
		wf("  </g>\n")
	}
	wf("</svg>\n")

	if werr != nil {
		return fmt.Errorf("build svg: %w", werr)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// WriteSVGFile writes the sheet to path, creating parent directories.
func WriteSVGFile(path string, sh *Sheet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, sh); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// svgPathData encodes a world path. Arcs must already be converted to cubics.
func svgPathData(p *vector.Path) string {
	var sb strings.Builder
	pt := func(x, y float64) { fmt.Fprintf(&sb, " %s %s", num(x), num(y)) }
	for _, c := range p.Cmds {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch c.Op {
		case vector.MoveTo, vector.LineTo:
			sb.WriteString(c.Op.String())
			pt(c.Data[0], c.Data[1])
		case vector.CubicTo:
			sb.WriteString("C")
			pt(c.Data[0], c.Data[1])
			pt(c.Data[2], c.Data[3])
			pt(c.Data[4], c.Data[5])
		case vector.Close:
			sb.WriteString("Z")
		case vector.ArcTo:
			// callers pass WorldOutline, which holds no arcs
			end := geometry.ArcPoint(geometry.R(c.Data[0], c.Data[1], c.Data[2], c.Data[3]), c.Data[4]+c.Data[5])
			sb.WriteString("L")
			pt(end.X, end.Y)
		}
	}
	return sb.String()
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func escAttr(s string) string {
	// naive escaping sufficient for our simple usage
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			out = append(out, "&quot;"...)
		case '\n':
			out = append(out, ' ')
		case '\r':
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
