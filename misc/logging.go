package misc

import (
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
)

// Shared by every logger made through NewLogger. Set once at startup.
var (
	verbosity = bslogger.Normal
	logFile   *os.File
)

// ConfigureLogging selects the verbosity ("minimal", "normal" or "all") and
// an optional file that every later NewLogger call writes to.
func ConfigureLogging(level string, file *os.File) error {
	switch level {
	case "minimal":
		verbosity = bslogger.Minimal
	case "normal":
		verbosity = bslogger.Normal
	case "all":
		verbosity = bslogger.All
	default:
		return errors.Errorf("unknown log verbosity %q", level)
	}
	logFile = file
	return nil
}

func NewLogger(name string) bslogger.Logger {
	return bslogger.NewLogger(name, verbosity, logFile)
}
