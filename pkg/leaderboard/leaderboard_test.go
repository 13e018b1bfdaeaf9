package leaderboard

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestTop(t *testing.T) {
	top := Top(3)
	assert.Len(t, top, 3)

	all := Top(0)
	assert.Len(t, all, len(entries))

	beyond := Top(1000)
	assert.Len(t, beyond, len(entries))
}

func TestEntriesAreWellFormed(t *testing.T) {
	for i, e := range Top(0) {
		assert.Equal(t, i+1, e.Rank)
		assert.NotEmpty(t, e.Handle)
		assert.True(t, common.IsHexAddress(e.Address), "entry %d address %q", i, e.Address)
	}
}

func TestTopReturnsCopy(t *testing.T) {
	top := Top(1)
	top[0].Score = -1
	assert.NotEqual(t, -1, Top(1)[0].Score)
}
