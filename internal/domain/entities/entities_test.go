package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolForCoin(t *testing.T) {
	assert.Equal(t, "BTC", SymbolForCoin("bitcoin"))
	assert.Equal(t, "XRP", SymbolForCoin("ripple"))
	assert.Equal(t, "CARDANO", SymbolForCoin("cardano"))
}

func TestCoinIDForSymbol(t *testing.T) {
	id, ok := CoinIDForSymbol(" avax ")
	assert.True(t, ok)
	assert.Equal(t, "avalanche-2", id)

	_, ok = CoinIDForSymbol("SHIB")
	assert.False(t, ok)
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", "  ", nil},
		{"only separators", ",,", []string{}},
		{"trims and drops empties", " bitcoin, ,ethereum ", []string{"bitcoin", "ethereum"}},
		{"drops duplicates keeping order", "solana,bitcoin,solana", []string{"solana", "bitcoin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCSV(tt.input))
		})
	}
}

func TestAlert_IsTriggeredBy(t *testing.T) {
	above := &Alert{TargetPriceUSD: 100, Direction: DirectionAbove}
	below := &Alert{TargetPriceUSD: 100, Direction: DirectionBelow}

	assert.True(t, above.IsTriggeredBy(100))
	assert.True(t, above.IsTriggeredBy(101))
	assert.False(t, above.IsTriggeredBy(99.99))

	assert.True(t, below.IsTriggeredBy(100))
	assert.True(t, below.IsTriggeredBy(50))
	assert.False(t, below.IsTriggeredBy(100.01))
}
