package mayo

import (
	"errors"
	"fmt"

	"github.com/mayo3d/mayo/gfx"
)

var (
	ErrUnknownDriver          = errors.New("mayo: unknown graphics driver")
	ErrUnsupportedDisplayMode = errors.New("mayo: display mode not supported by driver")
)

func errUnknownDriver(driver gfx.DriverKind) error {
	return fmt.Errorf("driver %s: %w", driver, ErrUnknownDriver)
}

func errUnsupportedDisplayMode(driver gfx.DriverKind, mode gfx.DisplayMode) error {
	return fmt.Errorf("display mode %s for driver %s: %w", mode, driver, ErrUnsupportedDisplayMode)
}
