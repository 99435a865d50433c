package log

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger is a module-scoped logrus entry. Every record carries the module
// name in its "name" field.
type Logger struct {
	*log.Entry
}

var base = newBase()

func newBase() *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.ErrorLevel)
	return logger
}

func NewLogger(module string) *Logger {
	entry := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{entry}
}

// Base returns the logrus logger shared by all module loggers.
func Base() *log.Logger {
	return base
}

// SetLevel changes the level of every module logger.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}
