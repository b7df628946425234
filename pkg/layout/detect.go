package layout

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Detector reports the user's current physical keyboard layout.
// Implementations must be safe to call repeatedly; the snapshot the caller
// takes is what display resolution works against.
type Detector interface {
	Detect() Detection
}

// StaticDetector always reports the same detection. Used when the layout is
// forced on the command line and in tests.
type StaticDetector struct {
	Result Detection
}

func (d StaticDetector) Detect() Detection {
	return d.Result
}

// EnvDetector reads the layout from the MAILCOVE_KEYBOARD_LAYOUT environment
// variable. Desktop builds replace this with a real OS-level detector; the
// CLI only needs the override hook.
type EnvDetector struct {
	logger *logrus.Logger
}

// NewEnvDetector creates an EnvDetector. A nil logger disables logging.
func NewEnvDetector(logger *logrus.Logger) *EnvDetector {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &EnvDetector{logger: logger}
}

// Detect returns the layout named by the environment, or Unknown when the
// variable is unset or empty.
func (d *EnvDetector) Detect() Detection {
	name := os.Getenv("MAILCOVE_KEYBOARD_LAYOUT")
	if name == "" {
		d.logger.Debug("no keyboard layout configured, treating as unknown")
		return Unknown()
	}
	det := Detected(name)
	d.logger.WithField("layout", det.Name()).Debug("keyboard layout detected from environment")
	return det
}
