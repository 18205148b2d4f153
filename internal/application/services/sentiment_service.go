package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
	"github.com/elvis-fintech/busyedge/pkg/utils"
)

type coinMood struct {
	score    int
	label    string
	mentions int
}

var coinMoods = map[string]coinMood{
	"BTC":  {68, "Greed", 28500},
	"ETH":  {72, "Extreme Greed", 18200},
	"SOL":  {45, "Fear", 9800},
	"XRP":  {55, "Neutral", 7600},
	"DOGE": {38, "Fear", 5200},
	"BNB":  {61, "Greed", 4100},
	"ADA":  {52, "Neutral", 3800},
	"AVAX": {48, "Fear", 2900},
}

var defaultCoinMood = coinMood{50, "Neutral", 1000}

// SentimentService serves a fixed social sentiment dataset. Only the history is randomised.
type SentimentService struct {
	rnd *lockedRand
	now func() time.Time
}

// NewSentimentService creates the service. A nil rnd is seeded from the clock.
func NewSentimentService(rnd *rand.Rand) *SentimentService {
	return &SentimentService{rnd: newLockedRand(rnd), now: time.Now}
}

// Overall returns the market-wide sentiment
func (s *SentimentService) Overall(ctx context.Context) entities.OverallSentiment {
	return entities.OverallSentiment{
		OverallScore: 62,
		OverallLabel: "Greed",
		Twitter:      entities.ChannelSentiment{Score: 65, Label: "Greed", MentionCount: 45230, Change24h: 5.2},
		Reddit:       entities.ChannelSentiment{Score: 58, Label: "Neutral", MentionCount: 12840, Change24h: -2.1},
		News:         entities.ChannelSentiment{Score: 63, Label: "Greed", ArticleCount: 234, Change24h: 8.3},
		DataSource:   entities.DataSourceMockSentiment,
		IsMock:       true,
		UpdatedAt:    utils.RFC3339UTC(s.now()),
	}
}

// Coin returns the sentiment of coin, BTC when empty
func (s *SentimentService) Coin(ctx context.Context, coin string) entities.CoinSentiment {
	coin = strings.ToUpper(strings.TrimSpace(coin))
	if coin == "" {
		coin = "BTC"
	}
	mood, ok := coinMoods[coin]
	if !ok {
		mood = defaultCoinMood
	}
	channelMood := strings.ToLower(mood.label)

	twitter := make([]entities.TwitterPost, 0, 3)
	reddit := make([]entities.RedditPost, 0, 3)
	for i := 0; i < 3; i++ {
		twitter = append(twitter, entities.TwitterPost{
			Author: fmt.Sprintf("crypto_user_%d", i),
			Text:   fmt.Sprintf("$%s looking bullish! #crypto", coin),
			Likes:  100 + i*20,
		})
		reddit = append(reddit, entities.RedditPost{
			Author: fmt.Sprintf("reddit_user_%d", i),
			Title:  fmt.Sprintf("Should I buy $%s?", coin),
			Score:  50 + i*10,
		})
	}

	return entities.CoinSentiment{
		Coin:        coin,
		Score:       mood.score,
		Label:       mood.label,
		Mentions24h: mood.mentions,
		Twitter:     entities.TwitterChannel{Sentiment: channelMood, Mentions: mood.mentions * 6 / 10, Posts: twitter},
		Reddit:      entities.RedditChannel{Sentiment: channelMood, Mentions: mood.mentions * 3 / 10, Posts: reddit},
		News: entities.NewsChannel{
			Sentiment: channelMood,
			Articles: []entities.NewsArticle{
				{Title: fmt.Sprintf("$%s surges amid market optimism", coin), Source: "CryptoNews"},
				{Title: fmt.Sprintf("Analysts predict $%s to reach new highs", coin), Source: "CoinDesk"},
			},
		},
		DataSource: entities.DataSourceMockSentiment,
		IsMock:     true,
		UpdatedAt:  utils.RFC3339UTC(s.now()),
	}
}

// Trending returns the trending topics
func (s *SentimentService) Trending(ctx context.Context) []entities.TrendingTopic {
	return []entities.TrendingTopic{
		{Topic: "#Bitcoin", Sentiment: "bullish", Volume: 45230, Change: 5.2},
		{Topic: "#Ethereum", Sentiment: "bullish", Volume: 28400, Change: 3.8},
		{Topic: "#Solana", Sentiment: "bearish", Volume: 12800, Change: -8.5},
		{Topic: "#Memecoins", Sentiment: "neutral", Volume: 8900, Change: 1.2},
		{Topic: "#DeFi", Sentiment: "bullish", Volume: 7600, Change: 2.1},
		{Topic: "#NFT", Sentiment: "bearish", Volume: 5400, Change: -3.5},
	}
}

// History returns days daily points ending today, oldest first. days must be 1..30.
func (s *SentimentService) History(ctx context.Context, days int) ([]entities.SentimentPoint, error) {
	if days < 1 || days > entities.MaxSentimentHistoryDays {
		return nil, &ValidationError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", entities.MaxSentimentHistoryDays)}
	}

	now := s.now()
	points := make([]entities.SentimentPoint, 0, days)
	for i := 0; i < days; i++ {
		day := now.Add(-time.Duration(days-i-1) * 24 * time.Hour)
		score := min(100, max(0, 50+s.rnd.intBetween(-15, 15)))
		points = append(points, entities.SentimentPoint{
			Date:  utils.FormatUnixDate(day.Unix()),
			Score: score,
			Label: entities.SentimentLabel(score),
		})
	}
	return points, nil
}
