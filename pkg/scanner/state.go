package scanner

import (
	"sync"

	"github.com/Anshu84487/monad-stats/pkg/models"
	"github.com/Anshu84487/monad-stats/pkg/stats"
)

// state is the mutex-guarded observable side of a check. The scan itself
// runs on a single control flow; this only exists so Snapshot can be read
// concurrently by the presentation layer while a scan is in progress.
type state struct {
	mu      sync.Mutex
	running bool
	cancel  chan struct{}
	snap    models.Snapshot
}

func (s *state) begin(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrCheckRunning
	}
	s.running = true
	s.cancel = make(chan struct{})
	s.snap = models.Snapshot{
		Status:       models.StatusLoading,
		Address:      address,
		Transactions: []models.TxView{},
	}
	return nil
}

func (s *state) end() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// markBadAddress records the synchronous validation failure. It never
// touches the state of a check that is already running.
func (s *state) markBadAddress(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.snap = models.Snapshot{
		Status:       models.StatusBadAddress,
		Address:      address,
		Transactions: []models.TxView{},
	}
}

func (s *state) requestCancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	select {
	case <-s.cancel:
	default:
		close(s.cancel)
	}
	s.snap.Status = models.StatusCancelling
}

// cancelRequested is the cooperative checkpoint: polled only at batch and
// chunk boundaries, never mid-batch.
func (s *state) cancelRequested() bool {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

func (s *state) setStatus(status models.Status) {
	s.mu.Lock()
	s.snap.Status = status
	s.mu.Unlock()
}

func (s *state) setQuickStats(quick models.QuickStats) {
	s.mu.Lock()
	s.snap.Balance = stats.FormatWei(quick.Balance)
	s.snap.Nonce = quick.Nonce
	s.mu.Unlock()
}

func (s *state) setProgress(scanned, total uint64) {
	s.mu.Lock()
	s.snap.Progress = models.Progress{Scanned: scanned, Total: total}
	s.mu.Unlock()
}

func (s *state) appendMatched(txs []models.MatchedTx) {
	if len(txs) == 0 {
		return
	}
	s.mu.Lock()
	for _, tx := range txs {
		view := models.TxView{
			Hash:        tx.Hash.Hex(),
			Value:       stats.FormatWei(tx.Value),
			From:        tx.From.Hex(),
			BlockNumber: tx.BlockNumber,
			Timestamp:   tx.Timestamp,
		}
		if tx.To != nil {
			view.To = tx.To.Hex()
		}
		s.snap.Transactions = append(s.snap.Transactions, view)
	}
	s.mu.Unlock()
}

func (s *state) finish(status models.Status, metrics models.Metrics) {
	s.mu.Lock()
	s.snap.Status = status
	s.snap.Metrics = &models.MetricsView{
		TotalVolume: stats.FormatWei(metrics.TotalVolume),
		Incoming:    stats.FormatWei(metrics.Incoming),
		Outgoing:    stats.FormatWei(metrics.Outgoing),
		GasSpent:    stats.FormatWei(metrics.GasSpent),
		TxCount:     metrics.TxCount,
		DaysActive:  metrics.DaysActive,
		Streak:      metrics.Streak,
	}
	s.mu.Unlock()
}

func (s *state) snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	if snap.Status == "" {
		snap.Status = models.StatusIdle
	}
	snap.Transactions = append([]models.TxView(nil), s.snap.Transactions...)
	if s.snap.Metrics != nil {
		view := *s.snap.Metrics
		snap.Metrics = &view
	}
	return snap
}
