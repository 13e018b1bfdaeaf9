package models

import "math/big"

// Status is the coarse outcome surface of a wallet check. The presentation
// layer only ever sees one of these strings.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusScanning   Status = "scanning"
	StatusCancelling Status = "cancelling"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
	StatusError      Status = "error"
	StatusBadAddress Status = "bad-address"
)

// QuickStats are the two point queries that don't depend on the block scan.
type QuickStats struct {
	Balance *big.Int
	Nonce   uint64
}

// Metrics is the reduction of one scan's matched transactions. All amounts
// are exact wei values; formatting to decimal units happens at the edge.
type Metrics struct {
	TotalVolume *big.Int
	Incoming    *big.Int
	Outgoing    *big.Int
	GasSpent    *big.Int
	TxCount     int
	DaysActive  int
	Streak      int
}

// Progress reports cumulative blocks scanned out of the window total.
type Progress struct {
	Scanned uint64 `json:"scanned"`
	Total   uint64 `json:"total"`
}

// TxView is the display form of a matched transaction.
type TxView struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	BlockNumber uint64 `json:"blockNumber"`
	Timestamp   uint64 `json:"timestamp"`
}

// MetricsView is the display form of Metrics, with amounts rendered as
// decimal native-token strings.
type MetricsView struct {
	TotalVolume string `json:"totalVolume"`
	Incoming    string `json:"incoming"`
	Outgoing    string `json:"outgoing"`
	GasSpent    string `json:"gasSpent"`
	TxCount     int    `json:"txCount"`
	DaysActive  int    `json:"daysActive"`
	Streak      int    `json:"streak"`
}

// Snapshot is the observable state of a check, safe to hand to the
// presentation layer at any point during or after a scan.
type Snapshot struct {
	Status       Status       `json:"status"`
	Address      string       `json:"address,omitempty"`
	Balance      string       `json:"balance,omitempty"`
	Nonce        uint64       `json:"nonce"`
	Progress     Progress     `json:"progress"`
	Transactions []TxView     `json:"transactions"`
	Metrics      *MetricsView `json:"metrics,omitempty"`
}

// Report is the full result of a finished (or cancelled) check.
type Report struct {
	Status       Status
	QuickStats   QuickStats
	Transactions []MatchedTx
	Receipts     []*Receipt
	Metrics      Metrics
}
