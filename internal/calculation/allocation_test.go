package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npsups/pension-calculator/internal/domain"
)

var allStrategies = []domain.AllocationStrategy{
	domain.AllocationStandard,
	domain.AllocationLC25,
	domain.AllocationLC50,
	domain.AllocationLC75,
	domain.AllocationActive,
}

func TestWeightsSumToHundredForAllAges(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			for age := 18; age <= 70; age++ {
				w, err := Weights(strategy, age)
				require.NoError(t, err)
				assert.True(t, w.Sum().Equal(hundred),
					"age %d: %s + %s + %s = %s", age, w.Equity, w.Corporate, w.Government, w.Sum())
				assert.False(t, w.Equity.IsNegative(), "age %d equity", age)
				assert.False(t, w.Corporate.IsNegative(), "age %d corporate", age)
				assert.False(t, w.Government.IsNegative(), "age %d government", age)
			}
		})
	}
}

func TestWeightsPlateausAndTransitions(t *testing.T) {
	tests := []struct {
		strategy domain.AllocationStrategy
		age      int
		e, c, g  float64
	}{
		{domain.AllocationStandard, 25, 15, 35, 50},
		{domain.AllocationStandard, 59, 15, 35, 50},

		{domain.AllocationLC25, 30, 25, 45, 30},
		{domain.AllocationLC25, 40, 20, 35, 45},
		{domain.AllocationLC25, 57, 5, 5, 90},

		{domain.AllocationLC50, 35, 50, 30, 20},
		{domain.AllocationLC50, 45, 30, 20, 50},
		{domain.AllocationLC50, 55, 10, 10, 80},

		{domain.AllocationLC75, 30, 75, 10, 15},
		{domain.AllocationLC75, 40, 60, 15, 25},
		{domain.AllocationLC75, 48, 36, 20, 44},
		{domain.AllocationLC75, 52, 24, 16, 60},
		{domain.AllocationLC75, 60, 15, 10, 75},

		{domain.AllocationActive, 45, 75, 25, 0},
		{domain.AllocationActive, 54, 65, 25, 10},
		{domain.AllocationActive, 62, 50, 25, 25},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_age_%d", tt.strategy, tt.age), func(t *testing.T) {
			w, err := Weights(tt.strategy, tt.age)
			require.NoError(t, err)
			assert.True(t, w.Equity.Equal(decimal.NewFromFloat(tt.e)), "equity %s", w.Equity)
			assert.True(t, w.Corporate.Equal(decimal.NewFromFloat(tt.c)), "corporate %s", w.Corporate)
			assert.True(t, w.Government.Equal(decimal.NewFromFloat(tt.g)), "government %s", w.Government)
		})
	}
}

func TestWeightsUnknownStrategy(t *testing.T) {
	_, err := Weights("momentum", 40)
	assert.ErrorIs(t, err, ErrNotFound)
}
