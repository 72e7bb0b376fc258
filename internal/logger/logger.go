package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationConfig contains log rotation settings
type LogRotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// logFile holds the rotating writer for cleanup
var (
	logFile   *lumberjack.Logger
	logFileMu sync.Mutex
)

// NewLogger configures the global logrus logger.
// Output goes to console (stderr, so stdout stays clean for rendered flags)
// and, when logFilePath is non-empty, to a rotating log file.
func NewLogger(logLevel string, logFilePath string, rotationConfig LogRotationConfig) error {
	return newLogger(logLevel, logFilePath, rotationConfig, os.Stderr)
}

func newLogger(logLevel string, logFilePath string, rotationConfig LogRotationConfig, console io.Writer) error {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	logFileMu.Lock()
	defer logFileMu.Unlock()

	// Close previous log file if open
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	out := console
	if logFilePath != "" {
		logFile = &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    rotationConfig.MaxSizeMB,
			MaxBackups: rotationConfig.MaxBackups,
			MaxAge:     rotationConfig.MaxAgeDays,
			Compress:   rotationConfig.Compress,
		}
		out = io.MultiWriter(console, logFile)
	}
	logrus.SetOutput(out)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     false, // Disable colors for file output
	})

	fields := logrus.Fields{"level": logLevel}
	if logFilePath != "" {
		fields["log_file"] = logFilePath
		fields["max_size"] = fmt.Sprintf("%dMB", rotationConfig.MaxSizeMB)
		fields["max_backups"] = rotationConfig.MaxBackups
		fields["max_age"] = fmt.Sprintf("%d days", rotationConfig.MaxAgeDays)
		fields["compress"] = rotationConfig.Compress
	}
	logrus.WithFields(fields).Debug("Logger initialized")

	return nil
}

// Close closes the log file and should be called during application shutdown
func Close() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// parseLogLevel converts string log level to logrus.Level
func parseLogLevel(level string) (logrus.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "INFO":
		return logrus.InfoLevel, nil
	case "WARNING", "WARN":
		return logrus.WarnLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}
