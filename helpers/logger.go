package helpers

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken"}

// AWS access key ids
var redactedValuePatterns = []string{`AKIA[A-Z0-9]{16}`}

func (c LoggingConfig) Validate() error {
	if _, err := parseLogLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := parseLogLevel(conf.Level)
	if err != nil {
		handleError("failed to initialize logger", err)
	}

	logger := lager.NewLogger(name)

	if conf.PlainTextSink {
		logger.RegisterSink(lager.NewPrettySink(os.Stdout, logLevel))
	} else {
		logger.RegisterSink(createRedactedSink(logLevel))
	}

	return logger
}

func parseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %q", level)
	}
}

func createRedactedSink(logLevel lager.LogLevel) lager.Sink {
	redactedSink, err := NewRedactingWriterWithURLCredSink(os.Stdout, logLevel, redactedKeyPatterns, redactedValuePatterns)
	if err != nil {
		handleError("failed to create redacted sink", err)
	}
	return redactedSink
}

func handleError(message string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}
