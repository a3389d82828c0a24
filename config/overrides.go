package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file layered on top of the defaults.
// Absent keys keep their default value.
//
// Example:
//
//	width: 1024
//	height: 768
//	seed: 7
//	snow:
//	  count: 300
//	message:
//	  text: "Happy Holidays"
type Overrides struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	TPS    *int    `yaml:"tps"`
	Title  *string `yaml:"title"`
	Seed   *int64  `yaml:"seed"`

	Tree struct {
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
		Layers *int     `yaml:"layers"`
	} `yaml:"tree"`

	Snow struct {
		Count *int `yaml:"count"`
	} `yaml:"snow"`

	Lights struct {
		Count *int `yaml:"count"`
	} `yaml:"lights"`

	Ornaments struct {
		Count *int `yaml:"count"`
	} `yaml:"ornaments"`

	Background struct {
		Count *int `yaml:"count"`
	} `yaml:"background"`

	Message struct {
		Text *string  `yaml:"text"`
		Size *float64 `yaml:"size"`
		Font *string  `yaml:"font"`
	} `yaml:"message"`

	Debug struct {
		Overlay *bool `yaml:"overlay"`
		Help    *bool `yaml:"help"`
	} `yaml:"debug"`
}

// LoadOverrides reads a YAML override file and applies it to the package
// configuration. A missing file is not an error.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read scene config: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse scene config: %w", err)
	}

	o.Apply()
	if err := Validate(); err != nil {
		return fmt.Errorf("invalid scene config %s: %w", path, err)
	}
	return nil
}

// Apply copies every set field onto the package configuration.
func (o *Overrides) Apply() {
	setInt(&C.Width, o.Width)
	setInt(&C.Height, o.Height)
	setInt(&C.TPS, o.TPS)
	if o.Title != nil {
		C.Title = *o.Title
	}
	if o.Seed != nil {
		C.Seed = *o.Seed
	}

	setFloat(&Tree.Width, o.Tree.Width)
	setFloat(&Tree.Height, o.Tree.Height)
	setInt(&Tree.Layers, o.Tree.Layers)

	setInt(&Snow.Count, o.Snow.Count)
	setInt(&Light.Count, o.Lights.Count)
	setInt(&Ornament.Count, o.Ornaments.Count)
	setInt(&Background.Count, o.Background.Count)

	if o.Message.Text != nil {
		Message.Text = *o.Message.Text
	}
	setFloat(&Message.Size, o.Message.Size)
	if o.Message.Font != nil {
		Message.FontPath = *o.Message.Font
	}

	if o.Debug.Overlay != nil {
		Debug.Overlay = *o.Debug.Overlay
	}
	if o.Debug.Help != nil {
		Debug.ShowHelp = *o.Debug.Help
	}
}

// Validate checks that the configured ranges can produce a valid scene.
func Validate() error {
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", C.Width, C.Height)
	}
	if C.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", C.TPS)
	}
	if Tree.Width <= 0 || Tree.Height <= 0 || Tree.Layers <= 0 {
		return errors.New("tree width, height and layers must be positive")
	}
	if Tree.Width <= 2*Ornament.Inset || Tree.Width <= 2*Light.Inset {
		return fmt.Errorf("tree width %.0f leaves no room for lights and ornaments", Tree.Width)
	}
	if Snow.Count < 0 || Light.Count < 0 || Ornament.Count < 0 || Background.Count < 0 {
		return errors.New("entity counts must not be negative")
	}
	if Message.Size <= 0 {
		return fmt.Errorf("message size must be positive, got %.1f", Message.Size)
	}
	if Light.IntervalMin <= 0 || Light.IntervalMax <= Light.IntervalMin {
		return fmt.Errorf("light interval range [%d,%d) is empty", Light.IntervalMin, Light.IntervalMax)
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
