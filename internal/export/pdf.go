/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/lucasb-eyer/go-colorful"
	"shapegeom/internal/style"
	"shapegeom/internal/vector"
)

// newPDF draws the sheet on a single page sized to fit it. Page origin is
// top-left, matching the shape coordinate system.
func newPDF(sh *Sheet) *gofpdf.Fpdf {
	opt := sh.Opt
	pal := newPalette()

	// Use points for 1:1 mapping from model to PDF
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: sh.Width, Ht: sh.Height},
	})
	pdf.SetTitle(opt.Title, true)
	pdf.SetCreator("shapegeom", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: sh.Width, Ht: sh.Height})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 7)

	for _, c := range sh.Cells {
		s := c.Shape
		pdf.SetTextColor(style.RGB255(pal.label))
		pdf.Text(c.Frame.X+4, c.Frame.Y+10, tr(cellLabel(c)))

		if opt.ShowBounds {
			pdf.SetLineWidth(0.5)
			if r := s.LooseBounds(); r.IsValid() {
				setDrawColor(pdf, pal.loose)
				pdf.SetDashPattern([]float64{4, 2}, 0)
				pdf.Rect(r.X, r.Y, r.W, r.H, "D")
				pdf.SetDashPattern(nil, 0)
			}
			if r := s.TightBounds(); r.IsValid() {
				setDrawColor(pdf, pal.tight)
				pdf.Rect(r.X, r.Y, r.W, r.H, "D")
			}
		}

		world := s.WorldOutline()
		setDrawColor(pdf, pal.outline)
		pdf.SetLineWidth(opt.LineWidth)
		drawPath(pdf, &world)

		if opt.ShowControlPoints {
			for _, cp := range controlPoints(s) {
				setFillColor(pdf, pal.pointColour(cp.Caps))
				pdf.Circle(cp.Pos.X, cp.Pos.Y, 2, "F")
			}
		}
	}
	return pdf
}

// WritePDF renders the sheet into w.
func WritePDF(w io.Writer, sh *Sheet) error {
	pdf := newPDF(sh)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDFFile writes the sheet to path, creating parent directories.
func WritePDFFile(path string, sh *Sheet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	pdf := newPDF(sh)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// drawPath strokes a world path. Each MoveTo starts a new sub-path.
func drawPath(pdf *gofpdf.Fpdf, p *vector.Path) {
	if p.Empty() {
		return
	}
	for _, c := range p.Cmds {
		switch c.Op {
		case vector.MoveTo:
			pdf.MoveTo(c.Data[0], c.Data[1])
		case vector.LineTo:
			pdf.LineTo(c.Data[0], c.Data[1])
		case vector.CubicTo:
			pdf.CurveBezierCubicTo(c.Data[0], c.Data[1], c.Data[2], c.Data[3], c.Data[4], c.Data[5])
		case vector.Close:
			pdf.ClosePath()
		}
	}
	pdf.DrawPath("D")
}

func setDrawColor(pdf *gofpdf.Fpdf, c colorful.Color) {
	pdf.SetDrawColor(style.RGB255(c))
}

func setFillColor(pdf *gofpdf.Fpdf, c colorful.Color) {
	pdf.SetFillColor(style.RGB255(c))
}
