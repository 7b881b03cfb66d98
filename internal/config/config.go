/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are read-only overrides applied at
// load time.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type GeometryConfig struct {
	StrictAssertions bool `yaml:"strict_assertions"`
	FlattenSegments  int  `yaml:"flatten_segments"`
}

type PreviewConfig struct {
	Margin            float64 `yaml:"margin"`
	CellSize          float64 `yaml:"cell_size"`
	LineWidth         float64 `yaml:"line_width"`
	ShowBounds        bool    `yaml:"show_bounds"`
	ShowControlPoints bool    `yaml:"show_control_points"`
	Angles            []int   `yaml:"angles"` // tenths of a degree
}

type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Logging       LoggingConfig  `yaml:"logging"`
	Geometry      GeometryConfig `yaml:"geometry"`
	Preview       PreviewConfig  `yaml:"preview"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		Geometry:      GeometryConfig{StrictAssertions: false, FlattenSegments: 16},
		Preview: PreviewConfig{
			Margin: 24, CellSize: 160, LineWidth: 1.5,
			ShowBounds: true, ShowControlPoints: true,
			Angles: []int{0, 300, 900},
		},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath = "SHG_CONFIG"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "SHG_LOG_LEVEL"
	EnvLogFormat = "SHG_LOG_FORMAT"
	EnvLogSource = "SHG_LOG_SOURCE"
	EnvLogFile   = "SHG_LOG_FILE"
	// EnvStrictAssertions Geometry envs
	EnvStrictAssertions = "SHG_STRICT_ASSERTIONS"
	EnvFlattenSegments  = "SHG_FLATTEN_SEGMENTS"
)

//go:embed schema.json
var schemaJSON []byte

// ValidationError lists the schema violations of a config file.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// ConfigPath returns the per-user config file path. SHG_CONFIG overrides it.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "ShapeGeom")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "ShapeGeom")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "shapegeom")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults and merges
// environment overrides. A file that fails schema validation is reported as
// a *ValidationError; the returned config then holds defaults plus env.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path. A missing file is not an error.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		applyEnvOverrides(&cfg)
		return cfg, nil
	case err != nil:
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Validate(path, data); err != nil {
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	// Decoding over the defaults keeps them for keys the file leaves out.
	fileCfg := Defaults()
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	mergeInto(&cfg, &fileCfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Validate checks YAML config data against the embedded JSON schema.
func Validate(path string, data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if doc == nil {
		return nil
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate config %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{Path: path}
	for _, e := range result.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}

// Save writes the config YAML to ConfigPath.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the config YAML to path, creating parent directories.
func SaveFile(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	// geometry: booleans copy directly so the file can turn them off again
	dst.Geometry.StrictAssertions = src.Geometry.StrictAssertions
	if src.Geometry.FlattenSegments > 0 {
		dst.Geometry.FlattenSegments = src.Geometry.FlattenSegments
	}
	// preview
	if src.Preview.Margin > 0 {
		dst.Preview.Margin = src.Preview.Margin
	}
	if src.Preview.CellSize > 0 {
		dst.Preview.CellSize = src.Preview.CellSize
	}
	if src.Preview.LineWidth > 0 {
		dst.Preview.LineWidth = src.Preview.LineWidth
	}
	dst.Preview.ShowBounds = src.Preview.ShowBounds
	dst.Preview.ShowControlPoints = src.Preview.ShowControlPoints
	if len(src.Preview.Angles) > 0 {
		dst.Preview.Angles = append([]int(nil), src.Preview.Angles...)
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	// geometry overrides
	if v := strings.TrimSpace(os.Getenv(EnvStrictAssertions)); v != "" {
		cfg.Geometry.StrictAssertions = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvFlattenSegments)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Geometry.FlattenSegments = n
		}
	}
}

var envKeys = map[string]string{
	"logging.level":              EnvLogLevel,
	"logging.format":             EnvLogFormat,
	"logging.source":             EnvLogSource,
	"logging.file":               EnvLogFile,
	"geometry.strict_assertions": EnvStrictAssertions,
	"geometry.flatten_segments":  EnvFlattenSegments,
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env, ok := envKeys[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}
