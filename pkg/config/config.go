// Package config loads declarative panel configuration from YAML and
// watches it for live reloads. Decoding is strict: unknown fields are
// errors, so typos surface at load time instead of silently styling
// nothing. Bound sanity is not validated; the clamping rules own that.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmallory/floatpane/pkg/geometry"
	"github.com/jmallory/floatpane/pkg/panel"
	"github.com/jmallory/floatpane/pkg/style"
)

type rawFile struct {
	Backdrop string     `yaml:"backdrop"`
	Panels   []rawPanel `yaml:"panels"`
}

type rawPanel struct {
	Title     string   `yaml:"title"`
	X         int      `yaml:"x"`
	Y         int      `yaml:"y"`
	Width     string   `yaml:"width"`
	Height    string   `yaml:"height"`
	MinWidth  int      `yaml:"min_width"`
	MinHeight int      `yaml:"min_height"`
	MaxWidth  string   `yaml:"max_width"`
	MaxHeight string   `yaml:"max_height"`
	Confine   bool     `yaml:"confine"`
	Stacking  int      `yaml:"stacking"`
	Style     rawStyle `yaml:"style"`
	Overflow  string   `yaml:"overflow"`
}

type rawStyle struct {
	Color       string `yaml:"color"`
	Border      string `yaml:"border"`
	Radius      string `yaml:"radius"`
	BorderWidth int    `yaml:"border_width"`
	Shadow      string `yaml:"shadow"`
	Blur        string `yaml:"blur"`
	Saturation  int    `yaml:"saturation"`
}

// Load reads panel configurations from a YAML file.
func Load(path string) ([]panel.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML panel configurations.
func Parse(data []byte) ([]panel.Config, error) {
	var raw rawFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	backdrop := style.ParseColor(raw.Backdrop).RGB

	configs := make([]panel.Config, 0, len(raw.Panels))
	for i, rp := range raw.Panels {
		cfg, err := rp.toConfig(backdrop)
		if err != nil {
			return nil, fmt.Errorf("panel %d (%q): %w", i, rp.Title, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (rp rawPanel) toConfig(backdrop style.RGB) (panel.Config, error) {
	width, err := parseSize(rp.Width)
	if err != nil {
		return panel.Config{}, fmt.Errorf("width: %w", err)
	}
	height, err := parseSize(rp.Height)
	if err != nil {
		return panel.Config{}, fmt.Errorf("height: %w", err)
	}
	maxW, err := parseLimit(rp.MaxWidth)
	if err != nil {
		return panel.Config{}, fmt.Errorf("max_width: %w", err)
	}
	maxH, err := parseLimit(rp.MaxHeight)
	if err != nil {
		return panel.Config{}, fmt.Errorf("max_height: %w", err)
	}

	return panel.Config{
		Title:     rp.Title,
		X:         rp.X,
		Y:         rp.Y,
		Width:     width,
		Height:    height,
		MinWidth:  rp.MinWidth,
		MinHeight: rp.MinHeight,
		MaxWidth:  maxW,
		MaxHeight: maxH,
		Confine:   rp.Confine,
		Stacking:  rp.Stacking,
		Style: style.Tokens{
			Color:       rp.Style.Color,
			Border:      rp.Style.Border,
			Radius:      rp.Style.Radius,
			BorderWidth: rp.Style.BorderWidth,
			Shadow:      rp.Style.Shadow,
			Blur:        rp.Style.Blur,
			Saturation:  rp.Style.Saturation,
		},
		Backdrop: backdrop,
		Overflow: rp.Overflow,
	}, nil
}

// parseSize maps "40", "auto", "full", or empty (auto) to a SizeValue.
func parseSize(s string) (geometry.SizeValue, error) {
	switch s {
	case "", "auto":
		return geometry.Auto, nil
	case "full":
		return geometry.Full, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return geometry.SizeValue{}, fmt.Errorf("want a cell count, %q, or %q, got %q", "auto", "full", s)
	}
	return geometry.Cells(n), nil
}

// parseLimit maps "120" or "viewport" (also empty) to a Limit.
func parseLimit(s string) (geometry.Limit, error) {
	if s == "" || s == "viewport" {
		return geometry.LimitViewport, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return geometry.Limit{}, fmt.Errorf("want a cell count or %q, got %q", "viewport", s)
	}
	return geometry.LimitCells(n), nil
}
