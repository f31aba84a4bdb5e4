package mayo

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mayo3d/mayo/gfx"
	"github.com/mayo3d/mayo/view"
)

var ErrInvalidOptions = errors.New("mayo: invalid options")

// Options configures how documents are displayed.
type Options struct {
	// Camera animation used by orientation changes and fit-all.
	CameraAnimationDuration time.Duration `yaml:"camera_animation_duration"`
	CameraAnimationEasing   string        `yaml:"camera_animation_easing"`

	// Display mode applied to new objects, keyed by driver name ("shape",
	// "mesh"). Drivers not listed use their default mode.
	DisplayModes map[string]string `yaml:"display_modes"`

	TrihedronMode   string `yaml:"trihedron_mode"`
	TrihedronCorner string `yaml:"trihedron_corner"`

	LogPrefix string `yaml:"log_prefix"`
	Debug     bool   `yaml:"debug"`
}

func DefaultOptions() Options {
	return Options{
		CameraAnimationDuration: 200 * time.Millisecond,
		CameraAnimationEasing:   "out_cubic",
		DisplayModes:            map[string]string{},
		TrihedronMode:           view.TrihedronAxisHelper.String(),
		TrihedronCorner:         view.CornerBottomLeft.String(),
		LogPrefix:               "mayo",
	}
}

// LoadOptions reads a YAML file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data)
}

func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.CameraAnimationDuration < 0 {
		return fmt.Errorf("negative camera animation duration: %w", ErrInvalidOptions)
	}
	if _, ok := view.EasingByName(o.CameraAnimationEasing); !ok {
		return fmt.Errorf("easing %q: %w", o.CameraAnimationEasing, ErrInvalidOptions)
	}
	for driver, mode := range o.DisplayModes {
		if _, ok := gfx.ParseDisplayMode(mode); !ok {
			return fmt.Errorf("display mode %q for %s: %w", mode, driver, ErrInvalidOptions)
		}
	}
	if _, ok := view.ParseTrihedronMode(o.TrihedronMode); !ok {
		return fmt.Errorf("trihedron mode %q: %w", o.TrihedronMode, ErrInvalidOptions)
	}
	if _, ok := view.ParseCorner(o.TrihedronCorner); !ok {
		return fmt.Errorf("trihedron corner %q: %w", o.TrihedronCorner, ErrInvalidOptions)
	}
	return nil
}

func (o Options) easing() view.EasingCurve {
	curve, ok := view.EasingByName(o.CameraAnimationEasing)
	if !ok {
		return view.EaseOutCubic
	}
	return curve
}

func (o Options) displayMode(kind gfx.DriverKind) (gfx.DisplayMode, bool) {
	name, ok := o.DisplayModes[kind.String()]
	if !ok {
		return 0, false
	}
	return gfx.ParseDisplayMode(name)
}

func (o Options) trihedronMode() view.TrihedronMode {
	m, _ := view.ParseTrihedronMode(o.TrihedronMode)
	return m
}

func (o Options) trihedronCorner() view.Corner {
	c, _ := view.ParseCorner(o.TrihedronCorner)
	return c
}
