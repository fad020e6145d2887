package misc

import (
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
)

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	if s < Fatal || s > Debug {
		return "Unknown"
	}
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

// CheckError reports a non-nil err through logger at the given severity.
// Fatal (and any unknown severity) ends the process.
func CheckError(err error, logger bslogger.Logger, severity Severity) {
	if err == nil {
		return
	}

	switch severity {
	case Fatal:
		logger.Fatal(err.Error())
	case Error:
		logger.Error(err.Error())
	case Warning:
		logger.Warning(err.Error())
	case Info:
		logger.Info(err.Error())
	case Debug:
		logger.Debug(err.Error())
	default:
		logger.Fatal(err.Error())
	}
}

// CheckErrorf is CheckError with err wrapped in a formatted message first.
func CheckErrorf(err error, logger bslogger.Logger, severity Severity, format string, values ...interface{}) {
	if err == nil {
		return
	}
	CheckError(errors.Wrapf(err, format, values...), logger, severity)
}
