package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors trace and warning records of logger into JSON files
// named path.trace and path.warn.
func AddTracer(logger *log.Logger, path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}
