/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"shapegeom/internal/config"
	"shapegeom/internal/crash"
	"shapegeom/internal/export"
	"shapegeom/internal/geometry"
	applog "shapegeom/internal/log"
	"shapegeom/internal/shape"
	"shapegeom/internal/version"
)

// errUsage marks argument errors; they exit with status 2.
var errUsage = errors.New("usage")

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "shapegeom: shape geometry developer tool")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  shapegeom version|-v|--version                      Show version")
	_, _ = fmt.Fprintln(w, "  shapegeom kinds                                     List kinds and their control points")
	_, _ = fmt.Fprintln(w, "  shapegeom inspect <kind> <w> <h> [angle]            Print outline, bounds and control points")
	_, _ = fmt.Fprintln(w, "  shapegeom foot <kind> <w> <h> <angle> <x> <y>       Connection foot for a point")
	_, _ = fmt.Fprintln(w, "  shapegeom preview <out.svg|out.pdf> [kind...]       Render a preview catalog")
	_, _ = fmt.Fprintln(w, "  shapegeom config                                    Show config path and effective settings")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Angles are in tenths of a degree, clockwise; append \"deg\" for degrees (e.g. 12.5deg).")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}
	shape.Configure(shape.Options{
		StrictAssertions: cfg.Geometry.StrictAssertions,
		FlattenSegments:  cfg.Geometry.FlattenSegments,
	})

	cc := &crash.Context{}
	if len(os.Args) > 1 {
		cc.Command, cc.Args = os.Args[1], os.Args[2:]
	}
	defer crash.Recover(cc)

	l.Debug("start", slog.Int("args", len(os.Args)))
	os.Exit(run(os.Args[1:], cfg, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, cfg config.AppConfig, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}
	l := applog.WithOperation(applog.WithComponent("cli"), args[0])
	ctx := applog.ContextWith(context.Background(), slog.String("cmd", args[0]))
	var err error
	switch args[0] {
	case "version", "--version", "-v":
		_, err = fmt.Fprintln(stdout, version.String())
	case "kinds":
		err = cmdKinds(stdout)
	case "inspect":
		err = cmdInspect(ctx, stdout, args[1:])
	case "foot":
		err = cmdFoot(ctx, stdout, args[1:])
	case "preview":
		err = cmdPreview(ctx, stdout, args[1:], cfg)
	case "config":
		err = cmdConfig(stdout, cfg)
	case "help", "-h", "--help":
		usage(stdout)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		usage(stderr)
		return 2
	default:
		l.ErrorContext(ctx, "command failed", slog.Any("err", err))
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func cmdKinds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KIND\tSIZING\tDEFAULT\tCONTROL POINTS")
	for _, k := range shape.Kinds() {
		s := shape.New(k)
		sizing := "w×h"
		if k.Regular() {
			sizing = "diameter"
		}
		var pts []string
		for _, id := range s.ControlPointIDs() {
			caps, _ := s.ControlPointCapabilities(id)
			pts = append(pts, fmt.Sprintf("%d:%s", id, caps))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%gx%g\t%s\n", k, sizing, s.Width(), s.Height(), strings.Join(pts, " "))
	}
	return tw.Flush()
}

// sizedShape parses "<kind> <w> <h> [angle]" into a shape at the origin.
func sizedShape(args []string, needAngle bool) (*shape.Shape, error) {
	if len(args) < 3 || (needAngle && len(args) < 4) {
		return nil, fmt.Errorf("%w: missing arguments", errUsage)
	}
	k, err := shape.ParseKind(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	nums, err := parseFloats(args[1:3])
	if err != nil {
		return nil, err
	}
	s := shape.NewSized(k, nums[0], nums[1])
	if len(args) > 3 {
		a, err := parseAngle(args[3])
		if err != nil {
			return nil, err
		}
		s.SetAngle(a)
	}
	return s, nil
}

// parseAngle reads tenths of a degree, or degrees with a "deg" or "°" suffix.
func parseAngle(v string) (int, error) {
	for _, suffix := range []string{"deg", "°"} {
		if num, ok := strings.CutSuffix(v, suffix); ok {
			d, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: angle %q: %v", errUsage, v, err)
			}
			return geometry.DegreesToTenths(d), nil
		}
	}
	a, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: angle %q: %v", errUsage, v, err)
	}
	return a, nil
}

func parseFloats(in []string) ([]float64, error) {
	out := make([]float64, len(in))
	for i, v := range in {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %v", errUsage, v, err)
		}
		out[i] = f
	}
	return out, nil
}

func cmdInspect(ctx context.Context, w io.Writer, args []string) error {
	s, err := sizedShape(args, false)
	if err != nil {
		return err
	}
	ctx = applog.ContextWith(ctx, slog.String("kind", s.Kind().String()))
	outline := s.Outline()
	applog.WithComponent("cli").DebugContext(ctx, "outline built", slog.Int("figures", outline.Figures()))
	_, _ = fmt.Fprintf(w, "kind:    %s\n", s.Kind())
	_, _ = fmt.Fprintf(w, "size:    %gx%g\n", s.Width(), s.Height())
	_, _ = fmt.Fprintf(w, "angle:   %d (%g°)\n", s.Angle(), s.AngleDegrees())
	_, _ = fmt.Fprintf(w, "figures: %d\n", outline.Figures())
	_, _ = fmt.Fprintf(w, "outline: %s\n", outline.String())
	_, _ = fmt.Fprintf(w, "loose:   %s\n", fmtRect(s.LooseBounds()))
	_, _ = fmt.Fprintf(w, "tight:   %s\n", fmtRect(s.TightBounds()))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCAPS\tLOCAL\tWORLD")
	for _, id := range s.ControlPointIDs() {
		caps, _ := s.ControlPointCapabilities(id)
		lp, _ := s.ControlPointPosition(id)
		wp, _ := s.ControlPointWorldPosition(id)
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", id, caps, fmtPt(lp), fmtPt(wp))
	}
	return tw.Flush()
}

func cmdFoot(ctx context.Context, w io.Writer, args []string) error {
	if len(args) < 6 {
		return fmt.Errorf("%w: foot needs <kind> <w> <h> <angle> <x> <y>", errUsage)
	}
	s, err := sizedShape(args[:4], true)
	if err != nil {
		return err
	}
	xy, err := parseFloats(args[4:6])
	if err != nil {
		return err
	}
	p := geometry.P(xy[0], xy[1])
	foot := s.ConnectionFoot(p)
	ctx = applog.ContextWith(ctx, slog.String("kind", s.Kind().String()))
	applog.WithComponent("cli").DebugContext(ctx, "foot resolved",
		slog.String("from", fmtPt(p)), slog.String("foot", fmtPt(foot)))
	_, err = fmt.Fprintln(w, fmtPt(foot))
	return err
}

func cmdPreview(ctx context.Context, w io.Writer, args []string, cfg config.AppConfig) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: preview needs an output path", errUsage)
	}
	var kinds []shape.Kind
	for _, name := range args[1:] {
		k, err := shape.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		kinds = append(kinds, k)
	}
	if err := export.Export(ctx, args[0], kinds, export.OptionsFromConfig(cfg.Preview)); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	_, err := fmt.Fprintln(w, "Wrote", args[0])
	return err
}

// cmdConfig prints the config file path and the effective settings; values
// taken from the environment name their variable.
func cmdConfig(w io.Writer, cfg config.AppConfig) error {
	path, err := config.ConfigPath()
	if err != nil {
		path = "unresolved: " + err.Error()
	}
	_, _ = fmt.Fprintf(w, "file: %s\n", path)
	settings := []struct {
		key string
		val any
	}{
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.source", cfg.Logging.Source},
		{"logging.file", cfg.Logging.File},
		{"geometry.strict_assertions", cfg.Geometry.StrictAssertions},
		{"geometry.flatten_segments", cfg.Geometry.FlattenSegments},
		{"preview.margin", cfg.Preview.Margin},
		{"preview.cell_size", cfg.Preview.CellSize},
		{"preview.line_width", cfg.Preview.LineWidth},
		{"preview.show_bounds", cfg.Preview.ShowBounds},
		{"preview.show_control_points", cfg.Preview.ShowControlPoints},
		{"preview.angles", cfg.Preview.Angles},
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, st := range settings {
		src := "file/default"
		if env, ok := config.EnvOverrideFor(st.key); ok {
			src = "env " + env
		}
		_, _ = fmt.Fprintf(tw, "%s\t%v\t%s\n", st.key, st.val, src)
	}
	return tw.Flush()
}

func fmtPt(p geometry.Pt) string { return fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y) }

func fmtRect(r geometry.Rect) string {
	if !r.IsValid() {
		return "invalid"
	}
	return fmt.Sprintf("x=%.4g y=%.4g w=%.4g h=%.4g", r.X, r.Y, r.W, r.H)
}
