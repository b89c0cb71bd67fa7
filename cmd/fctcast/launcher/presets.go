package launcher

import (
	"fmt"
	"time"
)

// Presets bundle common settings into named profiles so a forecast can be
// spun up for different workflows without tweaking individual flags. Flags
// given alongside --preset still win over the preset's values.

// PresetConfig captures the tunable parameters that vary across profiles.
type PresetConfig struct {
	Name          string        // human-readable identifier (e.g., "oneshot", "monitor")
	Watch         bool          // whether to keep polling after the first forecast
	WatchInterval time.Duration // refresh cadence in watch mode
	RPCTimeout    time.Duration // per-read upstream timeout
	Verbosity     int           // log verbosity (0=fatal .. 5=trace)
	JSONLogs      bool          // emit JSON logs instead of text
}

// OneshotPreset computes a single forecast and exits. Suited to scripts and
// cron jobs; quiet logging so the report is the only output.
func OneshotPreset() PresetConfig {
	return PresetConfig{
		Name:          "oneshot",
		Watch:         false,
		WatchInterval: 30 * time.Second,
		RPCTimeout:    15 * time.Second,
		Verbosity:     2, // warn
		JSONLogs:      false,
	}
}

// MonitorPreset keeps a terminal session updated. Refreshes a few times per
// adjustment period's worth of blocks and logs at info level.
func MonitorPreset() PresetConfig {
	cfg := OneshotPreset()
	cfg.Name = "monitor"
	cfg.Watch = true
	cfg.WatchInterval = 30 * time.Second
	cfg.Verbosity = 3 // info
	return cfg
}

// DashboardPreset feeds a log collector: tight refresh cadence, JSON logs,
// longer upstream timeout for congested RPC endpoints.
func DashboardPreset() PresetConfig {
	cfg := OneshotPreset()
	cfg.Name = "dashboard"
	cfg.Watch = true
	cfg.WatchInterval = 12 * time.Second
	cfg.RPCTimeout = 30 * time.Second
	cfg.Verbosity = 4 // debug
	cfg.JSONLogs = true
	return cfg
}

// GetPresetByName looks up a preset by its string identifier.
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "oneshot":
		return OneshotPreset(), nil
	case "monitor":
		return MonitorPreset(), nil
	case "dashboard":
		return DashboardPreset(), nil
	}
	return PresetConfig{}, fmt.Errorf("unknown preset %q (want oneshot, monitor or dashboard)", name)
}

// Apply merges the preset into cfg.
func (p PresetConfig) Apply(cfg *Config) {
	cfg.Watch.Enabled = p.Watch
	cfg.Watch.Interval = p.WatchInterval
	cfg.Node.RPCTimeout = p.RPCTimeout
	cfg.Logging.Verbosity = p.Verbosity
	if p.JSONLogs {
		cfg.Logging.Format = "json"
	}
}
