package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"

	"github.com/fctlabs/go-fct-forecast/fct/contracts/minter"
	"github.com/fctlabs/go-fct-forecast/forecast"
)

// ethCaller is the slice of the RPC client the reader needs. ethclient.Client
// satisfies it; tests substitute a fake.
type ethCaller interface {
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// EthReader reads chain state over JSON-RPC. The block height comes from
// eth_blockNumber; the mint counters come from eth_call against the
// mint-tracker predeploy.
type EthReader struct {
	client  ethCaller
	tracker common.Address
}

// Dial connects to a JSON-RPC endpoint and returns a reader bound to the
// given mint-tracker address.
func Dial(ctx context.Context, rawurl string, tracker common.Address) (*EthReader, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %v: %w", rawurl, err, forecast.ErrUpstreamUnavailable)
	}
	return NewEthReader(client, tracker), nil
}

// NewEthReader wraps an existing client. Used by Dial and by tests.
func NewEthReader(client ethCaller, tracker common.Address) *EthReader {
	return &EthReader{client: client, tracker: tracker}
}

// LatestBlockNumber returns the current chain height.
func (r *EthReader) LatestBlockNumber(ctx context.Context) (idx.Block, error) {
	n, err := r.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("latest block number: %v: %w", err, forecast.ErrUpstreamUnavailable)
	}
	return idx.Block(n), nil
}

// MintState reads the period counters from the mint tracker and converts
// them to reporting units: minted FCT from wei (1e18) and the mint rate from
// wei per gas unit to gwei (1e9).
func (r *EthReader) MintState(ctx context.Context) (MintState, error) {
	mintedWei, err := r.call(ctx, minter.FctMintedInPeriodCall())
	if err != nil {
		return MintState{}, fmt.Errorf("fctMintedInPeriod: %w", err)
	}
	rateWei, err := r.call(ctx, minter.FctMintRateCall())
	if err != nil {
		return MintState{}, fmt.Errorf("fctMintRate: %w", err)
	}

	return MintState{
		PeriodMintedFCT: weiToUnit(mintedWei, params.Ether),
		MintRateGwei:    weiToUnit(rateWei, params.GWei),
	}, nil
}

// PeriodL1DataGas reads the cumulative L1 data gas consumed in the active
// period, as tracked by the predeploy.
func (r *EthReader) PeriodL1DataGas(ctx context.Context) (*big.Int, error) {
	gas, err := r.call(ctx, minter.PeriodL1DataGasCall())
	if err != nil {
		return nil, fmt.Errorf("periodL1DataGas: %w", err)
	}
	return gas, nil
}

// call executes a read against the tracker at the latest block and decodes
// the single uint256 result.
func (r *EthReader) call(ctx context.Context, data []byte) (*big.Int, error) {
	ret, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &r.tracker, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %v: %w", r.tracker, err, forecast.ErrUpstreamUnavailable)
	}
	v, err := minter.UnpackUint256(ret)
	if err != nil {
		return nil, fmt.Errorf("call %s: %v: %w", r.tracker, err, forecast.ErrUpstreamUnavailable)
	}
	return v, nil
}

// weiToUnit converts an unsigned integer amount to a float count of the given
// unit (params.Ether for FCT, params.GWei for gwei).
func weiToUnit(wei *big.Int, unit float64) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(unit)).Float64()
	return f
}
