package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Anshu84487/monad-stats/pkg/models"
)

// Client adapts an ethclient connection to the Reader interface.
type Client struct {
	eth *ethclient.Client
}

// Dial connects to the given RPC endpoint.
func Dial(url string) (*Client, error) {
	eth, err := ethclient.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rpc endpoint: %w", err)
	}
	return &Client{eth: eth}, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

func (c *Client) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	return c.eth.BalanceAt(ctx, addr, nil)
}

func (c *Client) Nonce(ctx context.Context, addr common.Address) (uint64, error) {
	return c.eth.NonceAt(ctx, addr, nil)
}

func (c *Client) BlockWithTxs(ctx context.Context, number uint64) (*models.Block, error) {
	block, err := c.eth.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return nil, fmt.Errorf("failed to get block %d: %w", number, err)
	}
	out := &models.Block{
		Number: block.NumberU64(),
		Time:   block.Time(),
		Txs:    make([]models.Tx, 0, len(block.Transactions())),
	}
	for _, tx := range block.Transactions() {
		from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
		if err != nil {
			return nil, fmt.Errorf("couldn't get sender of tx %s: %w", tx.Hash().Hex(), err)
		}
		out.Txs = append(out.Txs, models.Tx{
			Hash:     tx.Hash(),
			From:     from,
			To:       tx.To(),
			Value:    tx.Value(),
			GasPrice: tx.GasPrice(),
		})
	}
	return out, nil
}

func (c *Client) Receipt(ctx context.Context, hash common.Hash) (*models.Receipt, error) {
	// we need the receipt for GasUsed and the price actually paid
	receipt, err := c.eth.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("couldn't retrieve tx receipt: %w", err)
	}
	return &models.Receipt{
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: receipt.EffectiveGasPrice,
	}, nil
}
