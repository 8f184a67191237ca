package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportional_SplitsByShareOfDayTotal(t *testing.T) {
	// 5h + 4h against an 8h standard day: 60 overtime minutes.
	shares := Proportional{}.Apportion(60, map[string]int{
		"alpha": 300,
		"beta":  240,
	})

	require.Len(t, shares, 2)
	assert.InDelta(t, 60.0*300/540, shares["alpha"], 1e-9)
	assert.InDelta(t, 60.0*240/540, shares["beta"], 1e-9)
	assert.InDelta(t, 60.0, shares["alpha"]+shares["beta"], 1e-9, "shares must sum to the day's overtime")
}

func TestProportional_NoOvertimeYieldsNoShares(t *testing.T) {
	shares := Proportional{}.Apportion(0, map[string]int{"alpha": 300})
	assert.Empty(t, shares)

	shares = Proportional{}.Apportion(-5, map[string]int{"alpha": 300})
	assert.Empty(t, shares)
}

func TestProportional_ZeroTotalMinutes(t *testing.T) {
	shares := Proportional{}.Apportion(60, map[string]int{})
	assert.Empty(t, shares)
}

func TestProportional_SingleProjectGetsAll(t *testing.T) {
	shares := Proportional{}.Apportion(90, map[string]int{"solo": 570})
	assert.InDelta(t, 90.0, shares["solo"], 1e-9)
}
