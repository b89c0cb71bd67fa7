// Package minter binds the mint-tracker predeploy that accounts for FCT
// issuance on-chain.
//
// Overview:
//
//	The mint tracker is a read-only predeploy maintained by the protocol. For
//	the active adjustment period it accumulates the L1 data gas consumed, the
//	FCT minted against that gas, and exposes the live mint rate used for the
//	conversion. This package carries the contract address, its ABI, and the
//	call data / returndata helpers used by the chain reader.
//
// Read surface:
//   - periodL1DataGas() returns (uint256): cumulative L1 data gas this period
//   - fctMintedInPeriod() returns (uint256): FCT minted this period, in wei
//   - fctMintRate() returns (uint256): mint rate, in wei per unit of data gas
package minter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	// ContractABI is the JSON ABI definition for the mint-tracker read surface.
	ContractABI string = "[{\"constant\":true,\"inputs\":[],\"name\":\"periodL1DataGas\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"payable\":false,\"stateMutability\":\"view\",\"type\":\"function\"},{\"constant\":true,\"inputs\":[],\"name\":\"fctMintedInPeriod\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"payable\":false,\"stateMutability\":\"view\",\"type\":\"function\"},{\"constant\":true,\"inputs\":[],\"name\":\"fctMintRate\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"payable\":false,\"stateMutability\":\"view\",\"type\":\"function\"}]"
)

var (
	// Method IDs are the first 4 bytes of the keccak256 hash of the function
	// signature, computed at initialization time.
	periodL1DataGasMethodID   []byte // periodL1DataGas()
	fctMintedInPeriodMethodID []byte // fctMintedInPeriod()
	fctMintRateMethodID       []byte // fctMintRate()
)

// init parses the contract ABI and extracts the method selector for each
// function. Called once at package initialization time.
func init() {
	parsed, err := abi.JSON(strings.NewReader(ContractABI))
	if err != nil {
		panic(err)
	}

	for name, constID := range map[string]*[]byte{
		"periodL1DataGas":   &periodL1DataGasMethodID,
		"fctMintedInPeriod": &fctMintedInPeriodMethodID,
		"fctMintRate":       &fctMintRateMethodID,
	} {
		method, exist := parsed.Methods[name]
		if !exist {
			panic("unknown mint tracker method")
		}
		*constID = make([]byte, len(method.ID))
		copy(*constID, method.ID)
	}
}

// PeriodL1DataGasCall returns the call data for periodL1DataGas().
func PeriodL1DataGasCall() []byte {
	return calldata(periodL1DataGasMethodID)
}

// FctMintedInPeriodCall returns the call data for fctMintedInPeriod().
func FctMintedInPeriodCall() []byte {
	return calldata(fctMintedInPeriodMethodID)
}

// FctMintRateCall returns the call data for fctMintRate().
func FctMintRateCall() []byte {
	return calldata(fctMintRateMethodID)
}

// calldata copies a method ID so callers cannot mutate the package state.
func calldata(id []byte) []byte {
	data := make([]byte, len(id))
	copy(data, id)
	return data
}

// UnpackUint256 decodes a single ABI-encoded uint256 return value.
// The tracker getters all return exactly one 32-byte word; anything else is
// treated as malformed returndata.
func UnpackUint256(ret []byte) (*big.Int, error) {
	if len(ret) != 32 {
		return nil, fmt.Errorf("malformed returndata: got %d bytes, want 32", len(ret))
	}
	return new(big.Int).SetBytes(ret), nil
}
