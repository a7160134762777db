// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart defaults and rendering settings from an
// optional configuration file and CHART2D_* environment variables.
//
// A TOML configuration looks like
//
//	width = 800
//	height = 500
//
//	[template]
//	colorway = ["#1f77b4", "#ff7f0e"]
//	background = "white"
//
//	[render]
//	format = "html"
//
// Environment variables name keys with "_" for both nesting and
// dashes, for example CHART2D_TEMPLATE_FONT_FAMILY or
// CHART2D_RENDER_FORMAT.
package config

import (
	"strings"

	"github.com/aclements/chart2d/engine"
	"github.com/aclements/chart2d/render"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CHART2D"

// Config is the loaded configuration.
type Config struct {
	// Defaults are the engine defaults.
	Defaults engine.Defaults `mapstructure:",squash"`

	Render RenderConfig `mapstructure:"render"`
}

// RenderConfig selects the output of a chart.
type RenderConfig struct {
	// Format is the output format used when the output file name
	// doesn't imply one.
	Format render.Format `mapstructure:"format"`

	// Width and Height are the output size in pixels for charts
	// that don't set their own. Zero means the engine default.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Engine returns an engine that applies c's defaults.
func (c *Config) Engine() *engine.Engine {
	return engine.New(c.Defaults)
}

// NewViper returns a viper instance with the built-in defaults and
// environment bindings. Callers may bind flags to it before calling
// Read.
func NewViper() *viper.Viper {
	v := viper.New()
	d := engine.BuiltinDefaults()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("template.colorway", d.Template.Colorway)
	v.SetDefault("template.background", d.Template.Background)
	v.SetDefault("template.font-family", d.Template.FontFamily)
	v.SetDefault("template.marker-size", d.Template.MarkerSize)
	v.SetDefault("template.line-width", d.Template.LineWidth)
	v.SetDefault("render.format", string(render.FormatSVG))
	v.SetDefault("render.width", 0)
	v.SetDefault("render.height", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"format": "render.format",
	"width":  "render.width",
	"height": "render.height",
}

// BindFlags binds the format, width and height flags of fs, when
// defined, to the render settings of v. A flag that was set on the
// command line overrides the file and environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Annotatef(err, "binding flag %s", name)
		}
	}
	return nil
}

// Load reads the configuration file at path, if path is not empty,
// over the built-in defaults and environment.
func Load(path string) (*Config, error) {
	return Read(NewViper(), path)
}

// Read reads the configuration file at path into v, if path is not
// empty, and decodes v.
func Read(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "reading %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Annotate(err, "decoding configuration")
	}
	f, err := render.ParseFormat(string(c.Render.Format))
	if err != nil {
		return nil, errors.Annotate(err, "render.format")
	}
	c.Render.Format = f
	if c.Defaults.Width < 0 || c.Defaults.Height < 0 || c.Render.Width < 0 || c.Render.Height < 0 {
		return nil, errors.NotValidf("negative size")
	}
	return &c, nil
}
