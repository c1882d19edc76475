package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"small", "950", "₹950"},
		{"thousand", "5800", "₹5,800"},
		{"lakh", "123456", "₹1,23,456"},
		{"ten lakh", "1234567", "₹12,34,567"},
		{"crore", "12345678", "₹1,23,45,678"},
		{"rounds paise", "56100.49", "₹56,100"},
		{"negative", "-123456", "-₹1,23,456"},
		{"zero", "0", "₹0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(d))
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"crore", "15000000", "₹1.5Cr"},
		{"lakh", "2340000", "₹23.4L"},
		{"below lakh", "99999", "₹99,999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Compact(d))
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := FromInt(1000)
	b := FromInt(250)

	assert.True(t, a.Add(b).Equal(decimal.NewFromInt(1250)))
	assert.True(t, a.Sub(b).Equal(decimal.NewFromInt(750)))
	assert.True(t, FromInt(1200).Monthly().Equal(decimal.NewFromInt(100)))
	assert.True(t, FromInt(100).Annual().Equal(decimal.NewFromInt(1200)))
}

func TestMoneyRound(t *testing.T) {
	m, err := FromString("1234.56")
	require.NoError(t, err)
	assert.True(t, m.Round().Equal(decimal.NewFromInt(1235)))
}

func TestFromStringInvalid(t *testing.T) {
	_, err := FromString("not a number")
	assert.Error(t, err)
}
