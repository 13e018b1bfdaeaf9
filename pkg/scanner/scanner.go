// Package scanner implements the wallet check: quick stats, the block
// window scan and receipt resolution, feeding the stats aggregation.
package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Anshu84487/monad-stats/pkg/chain"
	"github.com/Anshu84487/monad-stats/pkg/models"
	"github.com/Anshu84487/monad-stats/pkg/stats"
)

// Options tune the scan. Zero values fall back to the defaults the
// dashboard shipped with.
type Options struct {
	// BatchSize is the number of blocks fetched concurrently per batch.
	BatchSize int
	// ChunkSize is the number of receipts fetched concurrently per chunk.
	ChunkSize int
	// BatchDelay is the fixed pause between block batches. It is a crude
	// rate limit for the RPC endpoint, not adaptive backpressure.
	BatchDelay time.Duration
	// ChunkDelay is the fixed pause between receipt chunks.
	ChunkDelay time.Duration
	// MinSpan and MaxSpan bound the user-requested scan span.
	MinSpan uint64
	MaxSpan uint64
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = 30
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = 8
	}
	if o.BatchDelay <= 0 {
		o.BatchDelay = 150 * time.Millisecond
	}
	if o.ChunkDelay <= 0 {
		o.ChunkDelay = 100 * time.Millisecond
	}
	if o.MinSpan == 0 {
		o.MinSpan = 100
	}
	if o.MaxSpan == 0 {
		o.MaxSpan = 100_000
	}
	return o
}

// Checker runs wallet checks against a chain.Reader. It holds the
// observable state of the current check; each new check fully replaces it.
// One check runs at a time.
type Checker struct {
	logger zerolog.Logger
	client chain.Reader
	opts   Options

	state state
}

func New(logger zerolog.Logger, client chain.Reader, opts Options) *Checker {
	return &Checker{
		logger: logger,
		client: client,
		opts:   opts.withDefaults(),
	}
}

// Check runs one full wallet check: quick stats, window scan, receipt
// resolution, aggregation. It returns ErrInvalidAddress without any
// network call when the address doesn't parse, and ErrCheckRunning when
// another check is in flight. A cancelled check is not an error: the
// report carries StatusCancelled and whatever was accumulated.
func (c *Checker) Check(ctx context.Context, address string, span uint64) (*models.Report, error) {
	if !common.IsHexAddress(address) {
		c.state.markBadAddress(address)
		return nil, ErrInvalidAddress
	}
	if err := c.state.begin(address); err != nil {
		return nil, err
	}
	defer c.state.end()

	target := common.HexToAddress(address)
	span = c.clampSpan(span)
	logger := c.logger.With().Str("address", target.Hex()).Uint64("span", span).Logger()
	logger.Info().Msg("starting wallet check")

	quick, err := c.quickStats(ctx, target)
	if err != nil {
		c.state.setStatus(models.StatusError)
		logger.Err(err).Msg("quick stats failed")
		return nil, err
	}
	c.state.setQuickStats(quick)

	c.state.setStatus(models.StatusScanning)
	matched, cancelled, err := c.scanWindow(ctx, logger, target, span)
	if err != nil {
		c.state.setStatus(models.StatusError)
		logger.Err(err).Msg("window scan failed")
		return nil, err
	}

	receipts, receiptsCancelled := c.resolveReceipts(ctx, logger, matched)
	cancelled = cancelled || receiptsCancelled

	metrics := stats.Aggregate(target, matched, receipts)
	status := models.StatusDone
	if cancelled {
		status = models.StatusCancelled
	}
	c.state.finish(status, metrics)
	logger.Info().
		Int("txs", metrics.TxCount).
		Int("days_active", metrics.DaysActive).
		Int("streak", metrics.Streak).
		Str("status", string(status)).
		Msg("wallet check finished")

	return &models.Report{
		Status:       status,
		QuickStats:   quick,
		Transactions: matched,
		Receipts:     receipts,
		Metrics:      metrics,
	}, nil
}

// Cancel requests cooperative cancellation. The in-flight batch or chunk
// always completes; the scan stops at the next checkpoint, keeping what it
// accumulated so far.
func (c *Checker) Cancel() {
	c.state.requestCancel()
}

// Snapshot returns the observable state of the current (or last) check.
func (c *Checker) Snapshot() models.Snapshot {
	return c.state.snapshot()
}

func (c *Checker) clampSpan(span uint64) uint64 {
	if span < c.opts.MinSpan {
		return c.opts.MinSpan
	}
	if span > c.opts.MaxSpan {
		return c.opts.MaxSpan
	}
	return span
}

// quickStats fetches balance and nonce concurrently. Either failure fails
// the whole check; there is no retry.
func (c *Checker) quickStats(ctx context.Context, target common.Address) (models.QuickStats, error) {
	var quick models.QuickStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := c.client.Balance(gctx, target)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		quick.Balance = balance
		return nil
	})
	g.Go(func() error {
		nonce, err := c.client.Nonce(gctx, target)
		if err != nil {
			return fmt.Errorf("failed to get transaction count: %w", err)
		}
		quick.Nonce = nonce
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.QuickStats{}, err
	}
	return quick, nil
}

// scanWindow walks the block range [max(0, latest-span), latest] from the
// top down in fixed-size batches and collects every transaction whose
// sender or recipient is the target. One failed block fetch fails the
// whole scan. Cancellation is only checked between batches, so an
// in-flight batch always completes.
func (c *Checker) scanWindow(ctx context.Context, logger zerolog.Logger, target common.Address, span uint64) ([]models.MatchedTx, bool, error) {
	latest, err := c.client.BlockNumber(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get current block number: %w", err)
	}
	var fromBlock uint64
	if latest > span {
		fromBlock = latest - span
	}
	total := latest - fromBlock + 1
	c.state.setProgress(0, total)

	var matched []models.MatchedTx
	var scanned uint64
	for end := latest; ; {
		if c.state.cancelRequested() {
			logger.Info().Uint64("scanned", scanned).Msg("scan cancelled")
			return matched, true, nil
		}

		start := fromBlock
		if end >= fromBlock+uint64(c.opts.BatchSize) {
			start = end - uint64(c.opts.BatchSize) + 1
		}

		blocks := make([]*models.Block, end-start+1)
		g, gctx := errgroup.WithContext(ctx)
		for i := range blocks {
			i := i
			num := end - uint64(i)
			g.Go(func() error {
				block, err := c.client.BlockWithTxs(gctx, num)
				if err != nil {
					return err
				}
				blocks[i] = block
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, false, fmt.Errorf("failed to fetch blocks %d-%d: %w", start, end, err)
		}

		// blocks is ordered newest first; only this goroutine appends
		var batchMatches []models.MatchedTx
		for _, block := range blocks {
			for _, tx := range block.Txs {
				if tx.From == target || (tx.To != nil && *tx.To == target) {
					batchMatches = append(batchMatches, models.MatchedTx{
						Tx:          tx,
						BlockNumber: block.Number,
						Timestamp:   block.Time,
					})
				}
			}
		}
		matched = append(matched, batchMatches...)
		c.state.appendMatched(batchMatches)

		scanned += uint64(len(blocks))
		if scanned > total {
			scanned = total
		}
		c.state.setProgress(scanned, total)
		logger.Debug().Uint64("from", start).Uint64("to", end).
			Uint64("scanned", scanned).Uint64("total", total).Msg("scanned batch")

		if start == fromBlock {
			break
		}
		end = start - 1
		time.Sleep(c.opts.BatchDelay)
	}
	return matched, false, nil
}
