package altercam

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/altercam/effect"
	"gopkg.in/yaml.v3"
)

// A fixed camera placement used as a transition target.
type Viewpoint struct {
	// World coordinates of the view center.
	Position ebimath.Vector `yaml:"position"`

	// Half of the visible world height, in world units. Bigger
	// values show more of the world.
	OrthoSize float64 `yaml:"ortho_size"`
}

// Camera configuration. Configs are plain values: once passed to
// [SetConfig]() they can't be modified, only replaced.
type Config struct {
	Intro    Viewpoint `yaml:"intro"`
	Gameplay Viewpoint `yaml:"gameplay"`

	// Duration of [AccessorCamera.GoToIntro]() and
	// [AccessorCamera.GoToGameplay]() transitions, in seconds.
	ViewTransition float64 `yaml:"view_transition"`

	// Duration of effect crossfades, in seconds.
	EffectTransition float64 `yaml:"effect_transition"`

	Drunk       effect.Oscillator `yaml:"drunk"`
	Intoxicated effect.Oscillator `yaml:"intoxicated"`
	Mushrooms   effect.Oscillator `yaml:"mushrooms"`
}

// Returns the default configuration, tuned for a 320x180 canvas.
func DefaultConfig() Config {
	return Config{
		Intro:            Viewpoint{Position: ebimath.V(0, -120), OrthoSize: 150},
		Gameplay:         Viewpoint{Position: ebimath.V(0, 0), OrthoSize: 90},
		ViewTransition:   2.5,
		EffectTransition: 1,
		Drunk:            effect.DefaultOscillator(effect.Drunk),
		Intoxicated:      effect.DefaultOscillator(effect.Intoxicated),
		Mushrooms:        effect.DefaultOscillator(effect.Mushrooms),
	}
}

// Returns the oscillator configured for the given effect kind.
// Panics on unknown kinds.
func (self *Config) Oscillator(kind effect.Kind) effect.Oscillator {
	switch kind {
	case effect.None:
		return effect.Oscillator{}
	case effect.Drunk:
		return self.Drunk
	case effect.Intoxicated:
		return self.Intoxicated
	case effect.Mushrooms:
		return self.Mushrooms
	default:
		panic(errInvalidKind)
	}
}

// Decodes a YAML configuration on top of [DefaultConfig](). Fields
// missing from the document keep their default values, and unknown
// fields are rejected. Empty documents return the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg, err := decodeConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("altercam: decode config: %w", err)
	}
	return cfg, nil
}

// Reads and decodes a YAML configuration file. See [ParseConfig]().
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("altercam: load %s: %w", filename, err)
	}
	cfg, err := decodeConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("altercam: decode %s: %w", filename, err)
	}
	return cfg, nil
}

func decodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), err
	}
	return cfg, nil
}
