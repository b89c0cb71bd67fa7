// This file maps CLI context to the launcher's aggregated config struct.

package launcher

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/urfave/cli.v1"

	"github.com/fctlabs/go-fct-forecast/fct"
)

// Config aggregates every subsystem's configuration the launcher needs.
type Config struct {
	Node    NodeConfig
	Logging LoggingConfig
	Watch   WatchConfig
}

type NodeConfig struct {
	// RPCURL is the JSON-RPC endpoint of the FCT node to read from.
	RPCURL string

	// RPCTimeout bounds each individual upstream read.
	RPCTimeout time.Duration

	// Network selects the rules set ("main", "test", "fake").
	Network string

	// Tracker, when non-zero, overrides the network's mint-tracker address.
	Tracker common.Address
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	Color     bool
	SentryDSN string
}

type WatchConfig struct {
	Enabled  bool
	Interval time.Duration
}

// MakeAllConfigs merges defaults, an optional named preset, then CLI flag
// overrides, in that order.
func MakeAllConfigs(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()

	if name := c.String("preset"); name != "" {
		preset, err := GetPresetByName(name)
		if err != nil {
			return Config{}, err
		}
		preset.Apply(&cfg)
	}

	if c.IsSet("rpc.url") {
		cfg.Node.RPCURL = c.String("rpc.url")
	}
	if c.IsSet("rpc.timeout") {
		cfg.Node.RPCTimeout = c.Duration("rpc.timeout")
	}
	if c.IsSet("network") {
		cfg.Node.Network = c.String("network")
	}
	if c.IsSet("tracker") {
		raw := c.String("tracker")
		if !common.IsHexAddress(raw) {
			return Config{}, fmt.Errorf("invalid tracker address %q", raw)
		}
		cfg.Node.Tracker = common.HexToAddress(raw)
	}
	if c.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = c.Int("log.verbosity")
	}
	if c.IsSet("log.format") {
		cfg.Logging.Format = c.String("log.format")
	}
	if c.IsSet("log.color") {
		cfg.Logging.Color = c.Bool("log.color")
	}
	if c.IsSet("sentry.dsn") {
		cfg.Logging.SentryDSN = c.String("sentry.dsn")
	}
	if c.IsSet("watch") {
		cfg.Watch.Enabled = c.Bool("watch")
	}
	if c.IsSet("watch.interval") {
		cfg.Watch.Interval = c.Duration("watch.interval")
	}

	if _, ok := fct.RulesByName(cfg.Node.Network); !ok {
		return Config{}, fmt.Errorf("unknown network %q (want main, test or fake)", cfg.Node.Network)
	}
	if cfg.Watch.Enabled && cfg.Watch.Interval <= 0 {
		return Config{}, fmt.Errorf("watch interval must be positive, got %s", cfg.Watch.Interval)
	}

	return cfg, nil
}

// Rules resolves the network rules for the config, applying the tracker
// override when one was given.
func (cfg Config) Rules() fct.Rules {
	rules, _ := fct.RulesByName(cfg.Node.Network)
	if cfg.Node.Tracker != (common.Address{}) {
		rules.Tracker = cfg.Node.Tracker
	}
	return rules
}
