package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/internal/domain/interfaces"
	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

// Summary sources of a coin analysis
const (
	SummarySourceRules  = "rules"
	SummarySourceOpenAI = "openai"
)

// signalCoins is the order coins are evaluated in before sorting by confidence
var signalCoins = []string{"BTC", "ETH", "SOL", "XRP", "DOGE", "BNB", "ADA", "AVAX"}

type signalRule struct {
	action     entities.SignalAction
	confidence int
	reason     string
}

var signalRules = map[string]signalRule{
	"BTC":  {entities.SignalBuy, 78, "Uptrend forming, MACD golden cross"},
	"ETH":  {entities.SignalBuy, 72, "Steady institutional buying, technicals strengthening"},
	"SOL":  {entities.SignalHold, 55, "Range-bound, waiting for a breakout"},
	"XRP":  {entities.SignalSell, 65, "Rejected at resistance, short-term pullback risk"},
	"DOGE": {entities.SignalBuy, 61, "Rising social buzz, memecoin momentum"},
	"BNB":  {entities.SignalHold, 52, "Wait and see until the trend is clear"},
	"ADA":  {entities.SignalSell, 58, "Shrinking volume, lacking upside momentum"},
	"AVAX": {entities.SignalBuy, 69, "Growing DeFi activity, healthy ecosystem"},
}

var defaultSignalRule = signalRule{entities.SignalHold, 50, "Insufficient data"}

func ruleFor(coin string) signalRule {
	if rule, ok := signalRules[coin]; ok {
		return rule
	}
	return defaultSignalRule
}

func trendFor(action entities.SignalAction) string {
	switch action {
	case entities.SignalBuy:
		return "uptrend"
	case entities.SignalSell:
		return "downtrend"
	default:
		return "sideways"
	}
}

func macdFor(action entities.SignalAction) string {
	switch action {
	case entities.SignalBuy:
		return "bullish"
	case entities.SignalSell:
		return "bearish"
	default:
		return "neutral"
	}
}

// SignalService produces rule-based trading signals. Analysis summaries can be
// narrated by an LLM when one is configured.
type SignalService struct {
	rnd      *lockedRand
	narrator interfaces.Narrator
	now      func() time.Time
}

// NewSignalService creates the service. narrator may be nil.
func NewSignalService(rnd *rand.Rand, narrator interfaces.Narrator) *SignalService {
	return &SignalService{rnd: newLockedRand(rnd), narrator: narrator, now: time.Now}
}

// AllSignals returns a signal per tracked coin, highest confidence first
func (s *SignalService) AllSignals(ctx context.Context) []entities.TradingSignal {
	generatedAt := utils.RFC3339UTC(s.now())
	signals := make([]entities.TradingSignal, 0, len(signalCoins))
	for _, coin := range signalCoins {
		rule := ruleFor(coin)
		support := s.rnd.priceBetween(1000, 50000)
		resistance := s.rnd.priceBetween(1000, 50000)
		confidence := rule.confidence

		signals = append(signals, entities.TradingSignal{
			Coin:       coin,
			Signal:     rule.action,
			Confidence: rule.confidence,
			Reason:     rule.reason,
			Analysis: entities.SignalAnalysis{
				Market: entities.MarketAnalysis{
					Trend:           trendFor(rule.action),
					SupportLevel:    &support,
					ResistanceLevel: &resistance,
					RSI:             s.rnd.intBetween(30, 70),
				},
				Sentiment:    s.sentimentScores(),
				AIConfidence: &confidence,
			},
			GeneratedAt: generatedAt,
		})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Confidence > signals[j].Confidence
	})
	return signals
}

// Signal returns the signal of one coin with a risk assessment
func (s *SignalService) Signal(ctx context.Context, coin string) entities.TradingSignal {
	coin = strings.ToUpper(strings.TrimSpace(coin))
	rule := ruleFor(coin)

	return entities.TradingSignal{
		Coin:       coin,
		Signal:     rule.action,
		Confidence: rule.confidence,
		Reason:     rule.reason,
		Analysis: entities.SignalAnalysis{
			Market: entities.MarketAnalysis{
				Trend: trendFor(rule.action),
				RSI:   s.rnd.intBetween(30, 70),
				MACD:  macdFor(rule.action),
			},
			Sentiment: s.sentimentScores(),
			Risk: &entities.RiskAssessment{
				Volatility: s.rnd.choice("low", "medium", "high"),
				RiskScore:  s.rnd.intBetween(1, 10),
			},
		},
		GeneratedAt: utils.RFC3339UTC(s.now()),
	}
}

// Analysis returns the detailed analysis of one coin. The summary falls back to the
// rule reason when the narrator is disabled or fails.
func (s *SignalService) Analysis(ctx context.Context, coin string) entities.CoinAnalysis {
	coin = strings.ToUpper(strings.TrimSpace(coin))
	rule := ruleFor(coin)

	movingAverages := "MA20 < MA50"
	if rule.action == entities.SignalBuy {
		movingAverages = "MA20 > MA50"
	}
	macd := "neutral"
	switch rule.action {
	case entities.SignalBuy:
		macd = "golden cross"
	case entities.SignalSell:
		macd = "death cross"
	}

	analysis := entities.CoinAnalysis{
		Coin:          coin,
		Summary:       rule.reason,
		SummarySource: SummarySourceRules,
		Signal:        rule.action,
		Confidence:    rule.confidence,
		DetailedAnalysis: entities.DetailedAnalysis{
			Technical: entities.TechnicalAnalysis{
				Trend:          trendFor(rule.action),
				RSI:            s.rnd.intBetween(30, 70),
				MACD:           macd,
				MovingAverages: movingAverages,
			},
			Fundamental: entities.FundamentalAnalysis{
				OnChain: entities.OnChainActivity{
					WalletActivity: s.rnd.choice("increasing", "decreasing", "stable"),
					ExchangeFlow:   s.rnd.choice("net inflow", "net outflow"),
				},
				Ecosystem: entities.EcosystemActivity{
					Development:  s.rnd.choice("active", "moderate", "stalled"),
					Partnerships: s.rnd.intBetween(1, 10),
				},
			},
			Sentiment: entities.SentimentBreakdown{
				Overall:          rule.action,
				TwitterSentiment: s.rnd.intBetween(40, 80),
				RedditSentiment:  s.rnd.intBetween(40, 80),
				NewsSentiment:    s.rnd.intBetween(40, 80),
			},
		},
		Recommendation: entities.Recommendation{
			Action: rule.action,
			EntryPriceRange: entities.PriceRange{
				Min: s.rnd.priceBetween(1000, 50000),
				Max: s.rnd.priceBetween(1000, 50000),
			},
			StopLoss:    s.rnd.priceBetween(1000, 50000),
			TakeProfit:  s.rnd.priceBetween(1000, 50000),
			TimeHorizon: s.rnd.choice("short term", "mid term", "long term"),
		},
		GeneratedAt: utils.RFC3339UTC(s.now()),
	}

	if s.narrator != nil && s.narrator.Enabled() {
		summary, err := s.narrator.Summarize(ctx, analysisPrompt(analysis))
		if err != nil {
			logging.WarnWithError(ctx, "Narrator failed, using rule-based summary", err, logging.Fields{
				"coin": coin,
			})
		} else if summary = strings.TrimSpace(summary); summary != "" {
			analysis.Summary = summary
			analysis.SummarySource = SummarySourceOpenAI
		}
	}
	return analysis
}

func (s *SignalService) sentimentScores() entities.SentimentScores {
	return entities.SentimentScores{
		Twitter: s.rnd.intBetween(40, 80),
		Reddit:  s.rnd.intBetween(40, 80),
		News:    s.rnd.intBetween(40, 80),
	}
}

func analysisPrompt(a entities.CoinAnalysis) string {
	t := a.DetailedAnalysis.Technical
	return fmt.Sprintf(
		"Coin: %s\nSignal: %s (confidence %d%%)\nTrend: %s, RSI %d, MACD %s, %s\nRule reason: %s\n"+
			"Write a two sentence market summary for a dashboard. No financial advice disclaimers.",
		a.Coin, a.Signal, a.Confidence, t.Trend, t.RSI, t.MACD, t.MovingAverages, a.Summary,
	)
}
