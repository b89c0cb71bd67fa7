package launcher

import (
	"fmt"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// verbosityLevels maps the --log.verbosity flag to logrus levels.
var verbosityLevels = []logrus.Level{
	logrus.FatalLevel, // 0
	logrus.ErrorLevel, // 1
	logrus.WarnLevel,  // 2
	logrus.InfoLevel,  // 3
	logrus.DebugLevel, // 4
	logrus.TraceLevel, // 5
}

// makeLogger builds the process logger from the logging config: level,
// formatter, and the optional Sentry hook for error reporting.
func makeLogger(cfg LoggingConfig) (*logrus.Logger, error) {
	log := logrus.New()

	v := cfg.Verbosity
	if v < 0 {
		v = 0
	}
	if v >= len(verbosityLevels) {
		v = len(verbosityLevels) - 1
	}
	log.SetLevel(verbosityLevels[v])

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
