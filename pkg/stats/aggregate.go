// Package stats reduces a scan's matched transactions into wallet metrics.
// Everything here is pure: no RPC calls, no clocks, exact big.Int math.
package stats

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Anshu84487/monad-stats/pkg/models"
)

const secondsPerDay = 86400

// Aggregate reduces (transaction, optional receipt) pairs into Metrics.
// receipts is aligned by index to txs; a nil entry means the receipt could
// not be resolved and the tx contributes zero to gasSpent.
func Aggregate(target common.Address, txs []models.MatchedTx, receipts []*models.Receipt) models.Metrics {
	m := models.Metrics{
		TotalVolume: new(big.Int),
		Incoming:    new(big.Int),
		Outgoing:    new(big.Int),
		GasSpent:    new(big.Int),
		TxCount:     len(txs),
	}

	for i, tx := range txs {
		if tx.To != nil && *tx.To == target {
			m.Incoming.Add(m.Incoming, tx.Value)
		}
		if tx.From == target {
			m.Outgoing.Add(m.Outgoing, tx.Value)
		}
		if i < len(receipts) && receipts[i] != nil {
			price := receipts[i].EffectiveGasPrice
			if price == nil {
				price = tx.GasPrice
			}
			if price != nil {
				gas := new(big.Int).SetUint64(receipts[i].GasUsed)
				m.GasSpent.Add(m.GasSpent, gas.Mul(gas, price))
			}
		}
	}
	m.TotalVolume.Add(m.Incoming, m.Outgoing)

	if len(txs) > 0 {
		minTs, maxTs := txs[0].Timestamp, txs[0].Timestamp
		for _, tx := range txs[1:] {
			if tx.Timestamp < minTs {
				minTs = tx.Timestamp
			}
			if tx.Timestamp > maxTs {
				maxTs = tx.Timestamp
			}
		}
		days := int((maxTs - minTs + secondsPerDay - 1) / secondsPerDay)
		if days < 1 {
			days = 1
		}
		m.DaysActive = days
		m.Streak = streak(txs)
	}

	return m
}

// streak counts consecutive active days backward from the most recent
// active day, stopping at the first gap.
func streak(txs []models.MatchedTx) int {
	days := make(map[uint64]struct{}, len(txs))
	var maxDay uint64
	for _, tx := range txs {
		day := tx.Timestamp / secondsPerDay
		days[day] = struct{}{}
		if day > maxDay {
			maxDay = day
		}
	}

	n := 0
	for day := maxDay; ; day-- {
		if _, ok := days[day]; !ok {
			break
		}
		n++
		if day == 0 {
			break
		}
	}
	return n
}
