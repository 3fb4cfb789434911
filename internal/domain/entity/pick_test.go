package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortPicksByRateDesc(t *testing.T) {
	picks := []NumberPick{
		{Value: 7, Rate: 10},
		{Value: 23, Rate: 80},
		{Value: 4, Rate: 35},
		{Value: 19, Rate: 60},
	}

	SortPicksByRateDesc(picks)

	assert.Equal(t, []NumberPick{
		{Value: 23, Rate: 80},
		{Value: 19, Rate: 60},
		{Value: 4, Rate: 35},
		{Value: 7, Rate: 10},
	}, picks)
	assert.True(t, PicksSortedByRateDesc(picks))
}

func TestSortPicksByRateDesc_StableOnEqualRates(t *testing.T) {
	picks := []NumberPick{
		{Value: 1, Rate: 50},
		{Value: 2, Rate: 50},
		{Value: 3, Rate: 50},
	}

	SortPicksByRateDesc(picks)

	// Equal rates keep their input order.
	assert.Equal(t, 1, picks[0].Value)
	assert.Equal(t, 2, picks[1].Value)
	assert.Equal(t, 3, picks[2].Value)
}

func TestSortPicksByRateDesc_Empty(t *testing.T) {
	var picks []NumberPick

	SortPicksByRateDesc(picks)

	assert.Empty(t, picks)
	assert.True(t, PicksSortedByRateDesc(picks))
}

func TestPicksSortedByRateDesc(t *testing.T) {
	assert.True(t, PicksSortedByRateDesc([]NumberPick{{Rate: 9}, {Rate: 9}, {Rate: 3}}))
	assert.False(t, PicksSortedByRateDesc([]NumberPick{{Rate: 3}, {Rate: 9}}))
}
