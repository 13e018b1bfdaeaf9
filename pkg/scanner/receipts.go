package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anshu84487/monad-stats/pkg/models"
)

// resolveReceipts fetches the receipt of every matched transaction in
// fixed-size chunks. A failed receipt resolves to nil instead of failing
// the chunk; those transactions contribute zero to gasSpent. The returned
// slice is aligned by index to txs. Cancellation is checked once per chunk
// boundary.
func (c *Checker) resolveReceipts(ctx context.Context, logger zerolog.Logger, txs []models.MatchedTx) ([]*models.Receipt, bool) {
	receipts := make([]*models.Receipt, len(txs))
	for start := 0; start < len(txs); start += c.opts.ChunkSize {
		if c.state.cancelRequested() {
			return receipts, true
		}

		end := start + c.opts.ChunkSize
		if end > len(txs) {
			end = len(txs)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				receipt, err := c.client.Receipt(ctx, txs[i].Hash)
				if err != nil {
					logger.Warn().Err(err).Str("tx_hash", txs[i].Hash.Hex()).
						Msg("couldn't retrieve tx receipt, counting gas as zero")
					return
				}
				receipts[i] = receipt
			}()
		}
		wg.Wait()

		if end < len(txs) {
			time.Sleep(c.opts.ChunkDelay)
		}
	}
	return receipts, false
}
