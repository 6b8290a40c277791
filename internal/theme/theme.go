// Package theme holds the light and dark palettes as plain data. Toolkits
// receive a Theme on every render and colour their widgets by role.
package theme

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Role names what a colour is used for.
type Role string

const (
	Background        Role = "background"
	Button            Role = "button"
	Label             Role = "label"
	HistoryBackground Role = "history_bg"
)

// Roles lists every role a palette must define.
func Roles() []Role {
	return []Role{Background, Button, Label, HistoryBackground}
}

// Theme is a named palette of hex colours.
type Theme struct {
	Name   string
	Colors map[Role]string
}

const (
	LightName = "light"
	DarkName  = "dark"
)

var (
	Light = Theme{
		Name: LightName,
		Colors: map[Role]string{
			Background:        "#F5F5F5",
			Button:            "#FFFFFF",
			Label:             "#25265E",
			HistoryBackground: "#FFFFFF",
		},
	}

	Dark = Theme{
		Name: DarkName,
		Colors: map[Role]string{
			Background:        "#2E2E2E",
			Button:            "#3C3C3C",
			Label:             "#F1F1F1",
			HistoryBackground: "#1C1C1C",
		},
	}
)

// Color returns the colour for r, or "" when the palette lacks it.
func (t Theme) Color(r Role) string {
	return t.Colors[r]
}

// Palettes is the pair of themes the toggle switches between.
type Palettes struct {
	Light Theme
	Dark  Theme
}

// Defaults returns copies of the built-in palettes.
func Defaults() Palettes {
	return Palettes{Light: clone(Light), Dark: clone(Dark)}
}

// Toggle returns the other palette.
func (p Palettes) Toggle(current Theme) Theme {
	if current.Name == DarkName {
		return p.Light
	}
	return p.Dark
}

// ByName looks up a palette by name.
func (p Palettes) ByName(name string) (Theme, error) {
	switch name {
	case LightName:
		return p.Light, nil
	case DarkName:
		return p.Dark, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

type paletteFile struct {
	Light map[Role]string `yaml:"light"`
	Dark  map[Role]string `yaml:"dark"`
}

// Load reads YAML overrides of the form
//
//	light:
//	  background: "#FFFFFF"
//	dark:
//	  label: "#EEEEEE"
//
// and overlays them on the defaults.
func Load(r io.Reader) (Palettes, error) {
	var f paletteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Palettes{}, fmt.Errorf("decode palette file: %w", err)
	}

	p := Defaults()
	if err := overlay(p.Light, f.Light); err != nil {
		return Palettes{}, fmt.Errorf("light: %w", err)
	}
	if err := overlay(p.Dark, f.Dark); err != nil {
		return Palettes{}, fmt.Errorf("dark: %w", err)
	}
	return p, nil
}

// LoadFile is Load on the named file. An empty path returns the defaults.
func LoadFile(path string) (Palettes, error) {
	if path == "" {
		return Defaults(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Palettes{}, err
	}
	defer f.Close()

	return Load(f)
}

func overlay(dst Theme, src map[Role]string) error {
	for role, color := range src {
		if _, ok := dst.Colors[role]; !ok {
			return fmt.Errorf("unknown role %q", role)
		}
		dst.Colors[role] = color
	}
	return nil
}

func clone(t Theme) Theme {
	return Theme{Name: t.Name, Colors: maps.Clone(t.Colors)}
}
