package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Anshu84487/monad-stats/pkg/models"
)

// Reader is the narrow view of an EVM JSON-RPC endpoint the checker needs.
// It exists so the scanner and aggregator can be exercised against a fake
// chain instead of a live node.
type Reader interface {
	// BlockNumber returns the current chain height.
	BlockNumber(ctx context.Context) (uint64, error)
	// Balance returns the address's current balance in wei.
	Balance(ctx context.Context, addr common.Address) (*big.Int, error)
	// Nonce returns the address's current transaction count.
	Nonce(ctx context.Context, addr common.Address) (uint64, error)
	// BlockWithTxs returns the block at the given height with its full
	// transaction list.
	BlockWithTxs(ctx context.Context, number uint64) (*models.Block, error)
	// Receipt returns the receipt for the given transaction hash.
	Receipt(ctx context.Context, hash common.Hash) (*models.Receipt, error)
}
