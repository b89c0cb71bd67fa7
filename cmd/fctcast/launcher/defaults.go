package launcher

import "time"

// DefaultConfig returns the configuration used when no preset and no flags
// are given: a one-shot forecast against a local mainnet node.
func DefaultConfig() Config {
	return Config{
		Node: NodeConfig{
			RPCURL:     "http://127.0.0.1:8545",
			RPCTimeout: 15 * time.Second,
			Network:    "main",
		},
		Logging: LoggingConfig{
			Verbosity: 3, // info
			Format:    "text",
		},
		Watch: WatchConfig{
			Enabled:  false,
			Interval: 30 * time.Second,
		},
	}
}
