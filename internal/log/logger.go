/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package log sets up the process-wide slog logger for shapegeom. Records go
// to a human readable console handler (or JSON) and optionally to a rotating
// JSON file. Attributes stored in a context with ContextWith, such as the CLI
// command and the shape kind being processed, are added to every record
// logged through that context.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"shapegeom/internal/version"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "SHG_LOG_LEVEL"  // debug|info|warn|error
	EnvFormat = "SHG_LOG_FORMAT" // console|json
	EnvSource = "SHG_LOG_SOURCE" // true|false
	EnvFile   = "SHG_LOG_FILE"   // path of the rotated JSON log
)

const (
	rotateMaxSizeMB  = 10
	rotateMaxBackups = 3
	rotateMaxAgeDays = 28
)

// Options controls logger construction. The zero value logs INFO and above
// to stderr in console format.
type Options struct {
	Level     string
	Format    string // "console" or "json"
	AddSource bool
	File      string    // rotated JSON log, empty disables
	Console   io.Writer // nil means os.Stderr
}

var current atomic.Pointer[slog.Logger]

// L returns the process logger, building it from the environment on first
// use.
func L() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return current.Load()
}

// Init builds a logger from opts and installs it as the process logger and
// as slog's default.
func Init(opts Options) {
	l := New(opts)
	current.Store(l)
	slog.SetDefault(l)
}

// New builds a logger without installing it.
func New(opts Options) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level), AddSource: opts.AddSource}
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var sinks fanout
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		sinks = append(sinks, slog.NewJSONHandler(console, hopts))
	} else {
		sinks = append(sinks, newConsoleHandler(console, hopts))
	}
	if path := strings.TrimSpace(opts.File); path != "" {
		w := &lj.Logger{Filename: path, MaxSize: rotateMaxSizeMB, MaxBackups: rotateMaxBackups, MaxAge: rotateMaxAgeDays, Compress: true}
		sinks = append(sinks, slog.NewJSONHandler(w, hopts))
	}

	var h slog.Handler = sinks
	if len(sinks) == 1 {
		h = sinks[0]
	}
	return slog.New(contextHandler{next: h}).With(
		slog.String("app", "shapegeom"),
		slog.String("ver", version.Version),
	)
}

// FromEnv reads Options from the SHG_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:     getenv(EnvLevel, "info"),
		Format:    getenv(EnvFormat, "console"),
		AddSource: strings.EqualFold(getenv(EnvSource, "false"), "true"),
		File:      os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseLevel accepts slog level names in any case, plus "warning". Anything
// else is INFO.
func parseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithComponent returns the process logger tagged with a component name.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation tags l with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

type ctxAttrsKey struct{}

// ContextWith returns a copy of ctx carrying attrs in addition to those
// already stored. Records logged with the returned context (InfoContext and
// friends) get all of them.
func ContextWith(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev := contextAttrs(ctx)
	all := make([]slog.Attr, 0, len(prev)+len(attrs))
	all = append(append(all, prev...), attrs...)
	return context.WithValue(ctx, ctxAttrsKey{}, all)
}

func contextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	return attrs
}
