// Package fct defines the network rules and issuance parameters for the FCT
// token networks this tool can point at.
//
// This package provides:
//   - Network identification constants (MainNet, TestNet, FakeNet)
//   - Mint rules: adjustment-period length, halving schedule, issuance target
//   - Rate bounds applied by the protocol when it rescales the mint rate
//   - The address of the mint-tracker predeploy on each network
//
// The Rules type is the central configuration structure consumed by the
// forecast and chain packages. Rules are plain data; all issuance math lives
// in the forecast package.
package fct

import (
	"encoding/json"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// Network identification constants
const (
	// MainNetworkID is the chain ID for the FCT mainnet (0xfc7 = 4039 in decimal)
	MainNetworkID uint64 = 0xfc7

	// TestNetworkID is the chain ID for the FCT testnet (0xfc8 = 4040 in decimal)
	TestNetworkID uint64 = 0xfc8

	// FakeNetworkID is the chain ID for local/fake networks used in testing (0xfc9 = 4041 in decimal)
	FakeNetworkID uint64 = 0xfc9
)

// Issuance constants shared by mainnet and testnet.
const (
	// DefaultPeriodLength is the number of blocks in one mint-rate
	// adjustment period. The protocol rescales the mint rate at the end of
	// every period.
	DefaultPeriodLength idx.Block = 10_000

	// DefaultBlocksPerHalving is the halving interval of the per-period
	// issuance target. Every DefaultBlocksPerHalving blocks the target
	// halves (floor division).
	DefaultBlocksPerHalving idx.Block = 2_630_000

	// DefaultInitialTargetFCT is the per-period issuance target (in whole
	// FCT) before any halving has occurred.
	DefaultInitialTargetFCT uint64 = 400_000

	// DefaultMaxMintRateGwei is the absolute protocol ceiling for the mint
	// rate, in gwei per unit of L1 data gas.
	DefaultMaxMintRateGwei uint64 = 10_000_000

	// DefaultMinAdjustmentFactor is the largest single-period downward move
	// of the mint rate (new rate >= old rate * factor).
	DefaultMinAdjustmentFactor = 0.5

	// DefaultMaxAdjustmentFactor is the largest single-period upward move
	// of the mint rate (new rate <= old rate * factor).
	DefaultMaxAdjustmentFactor = 2.0
)

// TrackerAddress is the mint-tracker predeploy shared by mainnet and testnet.
// The contract exposes the cumulative L1 data gas, the FCT minted in the
// active period and the live mint rate.
var TrackerAddress = common.HexToAddress("0x00000000000000000000000000000000000Fac70")

// MintRules defines the issuance schedule and the bounds the protocol applies
// when it recalculates the mint rate at a period boundary.
type MintRules struct {
	// PeriodLength is the adjustment-period length in blocks.
	PeriodLength idx.Block

	// BlocksPerHalving is the halving interval of the issuance target.
	BlocksPerHalving idx.Block

	// InitialTargetFCT is the per-period issuance target (whole FCT) at
	// halving depth zero.
	InitialTargetFCT uint64

	// MaxMintRateGwei is the absolute cap on the mint rate in gwei.
	MaxMintRateGwei uint64

	// MinAdjustmentFactor bounds a single adjustment from below
	// (new >= current * MinAdjustmentFactor).
	MinAdjustmentFactor float64

	// MaxAdjustmentFactor bounds a single adjustment from above
	// (new <= current * MaxAdjustmentFactor).
	MaxAdjustmentFactor float64
}

// Rules describes the complete configuration for an FCT network.
type Rules struct {
	Name      string // Network name identifier (e.g., "main", "test", "fake")
	NetworkID uint64 // Chain ID of the network

	// Mint holds the issuance schedule and rate bounds.
	Mint MintRules

	// Tracker is the address of the mint-tracker predeploy on this network.
	Tracker common.Address
}

// MainNetRules returns the configuration rules for the FCT mainnet.
func MainNetRules() Rules {
	return Rules{
		Name:      "main",
		NetworkID: MainNetworkID,
		Mint:      DefaultMintRules(),
		Tracker:   TrackerAddress,
	}
}

// TestNetRules returns the configuration rules for the FCT testnet.
// Testnet runs the same issuance schedule as mainnet.
func TestNetRules() Rules {
	return Rules{
		Name:      "test",
		NetworkID: TestNetworkID,
		Mint:      DefaultMintRules(),
		Tracker:   TrackerAddress,
	}
}

// FakeNetRules returns the configuration rules for fake/local networks.
// Fake networks use accelerated parameters so periods and halvings can be
// observed in minutes instead of months:
//   - 100-block adjustment periods (1/100 of mainnet)
//   - halving every 26,300 blocks (1/100 of mainnet)
func FakeNetRules() Rules {
	mint := DefaultMintRules()
	mint.PeriodLength /= 100
	mint.BlocksPerHalving /= 100
	return Rules{
		Name:      "fake",
		NetworkID: FakeNetworkID,
		Mint:      mint,
		Tracker:   TrackerAddress,
	}
}

// DefaultMintRules returns the mainnet issuance configuration.
func DefaultMintRules() MintRules {
	return MintRules{
		PeriodLength:        DefaultPeriodLength,
		BlocksPerHalving:    DefaultBlocksPerHalving,
		InitialTargetFCT:    DefaultInitialTargetFCT,
		MaxMintRateGwei:     DefaultMaxMintRateGwei,
		MinAdjustmentFactor: DefaultMinAdjustmentFactor,
		MaxAdjustmentFactor: DefaultMaxAdjustmentFactor,
	}
}

// RulesByName looks up the rules for a network by its string identifier.
// Returns false if the name is unrecognized.
func RulesByName(name string) (Rules, bool) {
	switch name {
	case "main":
		return MainNetRules(), true
	case "test":
		return TestNetRules(), true
	case "fake":
		return FakeNetRules(), true
	}
	return Rules{}, false
}

// Copy creates a deep copy of Rules. Rules currently contains only value
// types, but callers treat the returned Rules as independently mutable.
func (r Rules) Copy() Rules {
	cp := r
	return cp
}

// String returns a JSON representation of Rules for debugging and logging.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
