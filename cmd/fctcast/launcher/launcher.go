package launcher

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/urfave/cli.v1"

	"github.com/fctlabs/go-fct-forecast/chain"
	"github.com/fctlabs/go-fct-forecast/flags"
	"github.com/fctlabs/go-fct-forecast/monitor"
	"github.com/fctlabs/go-fct-forecast/render"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.WatchFlags()...)
	app.Action = run
}

// Launch parses flags and runs the forecaster.
func Launch(args []string) error {
	return app.Run(args)
}

func run(c *cli.Context) error {
	cfg, err := MakeAllConfigs(c)
	if err != nil {
		return err
	}

	log, err := makeLogger(cfg.Logging)
	if err != nil {
		return err
	}

	rules := cfg.Rules()
	log.WithField("network", rules.Name).WithField("rpc", cfg.Node.RPCURL).Debug("connecting")

	dialCtx, cancel := context.WithTimeout(context.Background(), cfg.Node.RPCTimeout)
	defer cancel()
	ethReader, err := chain.Dial(dialCtx, cfg.Node.RPCURL, rules.Tracker)
	if err != nil {
		return err
	}
	reader := chain.WithTimeout(ethReader, cfg.Node.RPCTimeout)

	session := monitor.NewSession(reader, rules.Mint, log)

	if !cfg.Watch.Enabled {
		outcome := session.Refresh(context.Background())
		if err := render.Write(os.Stdout, outcome); err != nil {
			return err
		}
		return outcome.Err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.Watch(ctx, cfg.Watch.Interval, func(o monitor.Outcome) {
		if err := render.Write(os.Stdout, o); err != nil {
			log.WithError(err).Error("render failed")
		}
	})
	return nil
}
