package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// The shared logger. It is usable before InitLogger is called so that
// package init functions can grab it.
var logger = logrus.New()

// InitLogger sets the level and formatter of the shared logger.
func InitLogger(level logrus.Level) {
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// AddFileOutput tees the current log output into a rotating log file.
func AddFileOutput(path string) {
	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(logger.Out, logFile))
}

func GetLogger() *logrus.Logger {
	return logger
}
