package entities

import (
	"sort"
	"strings"
)

// DefaultCoinIDs are the CoinGecko ids served when a request names none
var DefaultCoinIDs = []string{"bitcoin", "ethereum", "solana", "ripple", "dogecoin"}

// DefaultFundingSymbols are the perpetual symbols served when a request names none
var DefaultFundingSymbols = []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}

var coinSymbols = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"solana":   "SOL",
	"ripple":   "XRP",
	"dogecoin": "DOGE",
}

// SymbolForCoin returns the ticker for a CoinGecko id, falling back to the upper-cased id
func SymbolForCoin(coinID string) string {
	if symbol, ok := coinSymbols[coinID]; ok {
		return symbol
	}
	return strings.ToUpper(coinID)
}

// supportedSymbols maps alert and portfolio tickers to CoinGecko ids
var supportedSymbols = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"SOL":  "solana",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
	"BNB":  "binancecoin",
	"ADA":  "cardano",
	"AVAX": "avalanche-2",
}

// CoinIDForSymbol resolves a ticker to its CoinGecko id
func CoinIDForSymbol(symbol string) (string, bool) {
	coinID, ok := supportedSymbols[strings.ToUpper(strings.TrimSpace(symbol))]
	return coinID, ok
}

// NormalizeList trims entries, drops empties and duplicates, keeping first-seen order
func NormalizeList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// ParseCSV splits a comma separated query value with NormalizeList semantics
func ParseCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return NormalizeList(strings.Split(value, ","))
}

// SupportedSymbols lists the tickers accepted by alerts and the portfolio, sorted
func SupportedSymbols() []string {
	symbols := make([]string, 0, len(supportedSymbols))
	for symbol := range supportedSymbols {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
