package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// we don't need all the data a normal TX contains, just the fields the
// stats aggregation reads
type Tx struct {
	Hash     common.Hash
	From     common.Address
	To       *common.Address // nil for contract creation
	Value    *big.Int
	GasPrice *big.Int
}

// MatchedTx is a transaction that touches the checked address, together
// with its containing block's number and timestamp.
type MatchedTx struct {
	Tx
	BlockNumber uint64
	Timestamp   uint64
}

// Receipt carries the subset of the tx receipt we need for gas accounting.
// EffectiveGasPrice can be nil when the node doesn't report it; aggregation
// then falls back to the tx's own gas price.
type Receipt struct {
	GasUsed           uint64
	EffectiveGasPrice *big.Int
}
