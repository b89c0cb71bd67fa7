package flags

import (
	"time"

	"gopkg.in/urfave/cli.v1"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "rpc.url",
			Usage: "JSON-RPC endpoint of an FCT node",
			Value: "http://127.0.0.1:8545",
		},
		cli.DurationFlag{
			Name:  "rpc.timeout",
			Usage: "Timeout applied to each upstream read",
			Value: 15 * time.Second,
		},
		cli.StringFlag{
			Name:  "network",
			Usage: "Network rules to apply (main|test|fake)",
			Value: "main",
		},
		cli.StringFlag{
			Name:  "tracker",
			Usage: "Override the mint-tracker predeploy address (hex)",
		},
		cli.StringFlag{
			Name:  "log.format",
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  "log.verbosity",
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "log.color",
			Usage: "Enable colored log output",
		},
		cli.StringFlag{
			Name:  "sentry.dsn",
			Usage: "Sentry DSN for error reporting (disabled when empty)",
		},
	}
}

// WatchFlags covers the polling mode.
func WatchFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "watch",
			Usage: "Keep running and refresh the forecast periodically",
		},
		cli.DurationFlag{
			Name:  "watch.interval",
			Usage: "Refresh interval in watch mode",
			Value: 30 * time.Second,
		},
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named settings profile (oneshot|monitor|dashboard)",
		},
	}
}
