package stats

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anshu84487/monad-stats/pkg/models"
)

func addr(b byte) common.Address {
	var a common.Address
	a[19] = b
	return a
}

func matched(from, to common.Address, value int64, ts uint64) models.MatchedTx {
	return models.MatchedTx{
		Tx: models.Tx{
			From:  from,
			To:    &to,
			Value: big.NewInt(value),
		},
		Timestamp: ts,
	}
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(addr(1), nil, nil)

	assert.Zero(t, m.TotalVolume.Sign())
	assert.Zero(t, m.GasSpent.Sign())
	assert.Equal(t, 0, m.TxCount)
	assert.Equal(t, 0, m.DaysActive)
	assert.Equal(t, 0, m.Streak)
}

func TestAggregateVolumeInvariant(t *testing.T) {
	target := addr(1)
	other := addr(2)
	txs := []models.MatchedTx{
		matched(target, other, 3, 100),
		matched(other, target, 7, 200),
		matched(target, target, 5, 300), // self-transfer counts both ways
	}

	m := Aggregate(target, txs, make([]*models.Receipt, len(txs)))

	assert.Equal(t, int64(8), m.Outgoing.Int64())
	assert.Equal(t, int64(12), m.Incoming.Int64())
	assert.Zero(t, new(big.Int).Add(m.Incoming, m.Outgoing).Cmp(m.TotalVolume))
	assert.Equal(t, 3, m.TxCount)
}

func TestAggregateGasSpent(t *testing.T) {
	target := addr(1)
	other := addr(2)

	withPrice := matched(target, other, 1, 0)
	withFallback := matched(target, other, 1, 0)
	withFallback.GasPrice = big.NewInt(5)
	noReceipt := matched(target, other, 1, 0)

	txs := []models.MatchedTx{withPrice, withFallback, noReceipt}
	receipts := []*models.Receipt{
		{GasUsed: 100, EffectiveGasPrice: big.NewInt(2)},
		{GasUsed: 10}, // no effective price, falls back to tx gas price
		nil,           // failed receipt contributes zero
	}

	m := Aggregate(target, txs, receipts)

	assert.Equal(t, int64(100*2+10*5), m.GasSpent.Int64())
	// the unresolved receipt still counts toward the tx count
	assert.Equal(t, 3, m.TxCount)
}

func TestAggregateDaysActive(t *testing.T) {
	target := addr(1)

	t.Run("single tx", func(t *testing.T) {
		m := Aggregate(target, []models.MatchedTx{matched(target, addr(2), 1, 1000)}, []*models.Receipt{nil})
		assert.Equal(t, 1, m.DaysActive)
	})

	t.Run("span of three days", func(t *testing.T) {
		txs := []models.MatchedTx{
			matched(target, addr(2), 1, 5*86400),
			matched(target, addr(2), 1, 8*86400-1),
		}
		m := Aggregate(target, txs, make([]*models.Receipt, len(txs)))
		assert.Equal(t, 3, m.DaysActive)
		assert.LessOrEqual(t, m.Streak, m.DaysActive)
	})
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	target := addr(1)

	// active days 10, 11 and 13: day 12 is missing, so only day 13 counts
	txs := []models.MatchedTx{
		matched(target, addr(2), 1, 10*86400+100),
		matched(target, addr(2), 1, 11*86400+200),
		matched(target, addr(2), 1, 13*86400+300),
	}
	m := Aggregate(target, txs, make([]*models.Receipt, len(txs)))
	assert.Equal(t, 1, m.Streak)

	// filling day 12 joins the run
	txs = append(txs, matched(target, addr(2), 1, 12*86400))
	m = Aggregate(target, txs, make([]*models.Receipt, len(txs)))
	assert.Equal(t, 4, m.Streak)
}

func TestStreakGapScenario(t *testing.T) {
	target := addr(1)

	// consecutive activity on days 5 and 6 and a lone tx on day 8
	txs := []models.MatchedTx{
		matched(target, addr(2), 1, 5*86400+10),
		matched(target, addr(2), 1, 6*86400+10),
		matched(target, addr(2), 1, 8*86400+10),
	}
	m := Aggregate(target, txs, make([]*models.Receipt, len(txs)))
	assert.Equal(t, 1, m.Streak)
	assert.Equal(t, 3, m.DaysActive)
}

func TestAggregateExactScenario(t *testing.T) {
	target := addr(1)
	value, ok := new(big.Int).SetString("5000000000000000000", 10) // 5e18
	require.True(t, ok)

	to := addr(2)
	tx := models.MatchedTx{
		Tx:          models.Tx{From: target, To: &to, Value: value},
		BlockNumber: 115,
		Timestamp:   1_700_000_000,
	}
	receipt := &models.Receipt{GasUsed: 21_000, EffectiveGasPrice: big.NewInt(1_000_000_000)}

	m := Aggregate(target, []models.MatchedTx{tx}, []*models.Receipt{receipt})

	assert.Equal(t, "5", FormatWei(m.Outgoing))
	assert.Equal(t, "0.000021", FormatWei(m.GasSpent))
	assert.Equal(t, "0", FormatWei(m.Incoming))
	assert.Equal(t, 1, m.TxCount)
	assert.Equal(t, 1, m.DaysActive)
	assert.Equal(t, 1, m.Streak)
}
