package entities

// Mock insight data sources
const (
	DataSourceMockSentiment = "mock_sentiment"
	DataSourceMockOnchain   = "mock_onchain_data"
)

// ChannelSentiment is the aggregate mood of one channel
type ChannelSentiment struct {
	Score        int     `json:"score"`
	Label        string  `json:"label"`
	MentionCount int     `json:"mention_count,omitempty"`
	ArticleCount int     `json:"article_count,omitempty"`
	Change24h    float64 `json:"change_24h"`
}

// OverallSentiment is the market-wide sentiment snapshot
type OverallSentiment struct {
	OverallScore int              `json:"overall_score"`
	OverallLabel string           `json:"overall_label"`
	Twitter      ChannelSentiment `json:"twitter_sentiment"`
	Reddit       ChannelSentiment `json:"reddit_sentiment"`
	News         ChannelSentiment `json:"news_sentiment"`
	DataSource   string           `json:"data_source"`
	IsMock       bool             `json:"is_mock"`
	UpdatedAt    string           `json:"updated_at"`
}

type TwitterPost struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Likes  int    `json:"likes"`
}

type RedditPost struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	Score  int    `json:"score"`
}

type NewsArticle struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

type TwitterChannel struct {
	Sentiment string        `json:"sentiment"`
	Mentions  int           `json:"mentions"`
	Posts     []TwitterPost `json:"posts"`
}

type RedditChannel struct {
	Sentiment string       `json:"sentiment"`
	Mentions  int          `json:"mentions"`
	Posts     []RedditPost `json:"posts"`
}

type NewsChannel struct {
	Sentiment string        `json:"sentiment"`
	Articles  []NewsArticle `json:"articles"`
}

// CoinSentiment is the sentiment breakdown of one coin
type CoinSentiment struct {
	Coin        string         `json:"coin"`
	Score       int            `json:"score"`
	Label       string         `json:"label"`
	Mentions24h int            `json:"mentions_24h"`
	Twitter     TwitterChannel `json:"twitter"`
	Reddit      RedditChannel  `json:"reddit"`
	News        NewsChannel    `json:"news"`
	DataSource  string         `json:"data_source"`
	IsMock      bool           `json:"is_mock"`
	UpdatedAt   string         `json:"updated_at"`
}

// TrendingTopic is a hashtag with its mood and volume
type TrendingTopic struct {
	Topic     string  `json:"topic"`
	Sentiment string  `json:"sentiment"`
	Volume    int     `json:"volume"`
	Change    float64 `json:"change"`
}

// SentimentPoint is one day of sentiment history
type SentimentPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Label string `json:"label"`
}

// MaxSentimentHistoryDays bounds the sentiment history query
const MaxSentimentHistoryDays = 30

// SentimentLabel maps a 0..100 score to its band
func SentimentLabel(score int) string {
	switch {
	case score <= 25:
		return "Extreme Fear"
	case score <= 45:
		return "Fear"
	case score <= 55:
		return "Neutral"
	case score <= 75:
		return "Greed"
	default:
		return "Extreme Greed"
	}
}

// SignalAction is the recommended trade
type SignalAction string

const (
	SignalBuy  SignalAction = "BUY"
	SignalSell SignalAction = "SELL"
	SignalHold SignalAction = "HOLD"
)

// MarketAnalysis is the technical part of a signal
type MarketAnalysis struct {
	Trend           string   `json:"trend"`
	SupportLevel    *float64 `json:"support_level,omitempty"`
	ResistanceLevel *float64 `json:"resistance_level,omitempty"`
	RSI             int      `json:"rsi"`
	MACD            string   `json:"macd,omitempty"`
}

// SentimentScores are per-channel scores feeding a signal
type SentimentScores struct {
	Twitter int `json:"twitter"`
	Reddit  int `json:"reddit"`
	News    int `json:"news"`
}

// RiskAssessment rates the volatility of a coin
type RiskAssessment struct {
	Volatility string `json:"volatility"`
	RiskScore  int    `json:"risk_score"`
}

// SignalAnalysis backs a trading signal
type SignalAnalysis struct {
	Market       MarketAnalysis  `json:"market_analysis"`
	Sentiment    SentimentScores `json:"sentiment_analysis"`
	Risk         *RiskAssessment `json:"risk_assessment,omitempty"`
	AIConfidence *int            `json:"ai_confidence,omitempty"`
}

// TradingSignal is a rule-based trade recommendation for one coin
type TradingSignal struct {
	Coin        string         `json:"coin"`
	Signal      SignalAction   `json:"signal"`
	Confidence  int            `json:"confidence"`
	Reason      string         `json:"reason"`
	Analysis    SignalAnalysis `json:"analysis"`
	GeneratedAt string         `json:"generated_at"`
}

type TechnicalAnalysis struct {
	Trend          string `json:"trend"`
	RSI            int    `json:"rsi"`
	MACD           string `json:"macd"`
	MovingAverages string `json:"moving_averages"`
}

type OnChainActivity struct {
	WalletActivity string `json:"wallet_activity"`
	ExchangeFlow   string `json:"exchange_flow"`
}

type EcosystemActivity struct {
	Development  string `json:"development"`
	Partnerships int    `json:"partnerships"`
}

type FundamentalAnalysis struct {
	OnChain   OnChainActivity   `json:"on_chain"`
	Ecosystem EcosystemActivity `json:"ecosystem"`
}

type SentimentBreakdown struct {
	Overall          SignalAction `json:"overall"`
	TwitterSentiment int          `json:"twitter_sentiment"`
	RedditSentiment  int          `json:"reddit_sentiment"`
	NewsSentiment    int          `json:"news_sentiment"`
}

type DetailedAnalysis struct {
	Technical   TechnicalAnalysis   `json:"technical"`
	Fundamental FundamentalAnalysis `json:"fundamental"`
	Sentiment   SentimentBreakdown  `json:"sentiment"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Recommendation struct {
	Action          SignalAction `json:"action"`
	EntryPriceRange PriceRange   `json:"entry_price_range"`
	StopLoss        float64      `json:"stop_loss"`
	TakeProfit      float64      `json:"take_profit"`
	TimeHorizon     string       `json:"time_horizon"`
}

// CoinAnalysis is the detailed analysis of one coin
type CoinAnalysis struct {
	Coin             string           `json:"coin"`
	Summary          string           `json:"summary"`
	SummarySource    string           `json:"summary_source"`
	Signal           SignalAction     `json:"signal"`
	Confidence       int              `json:"confidence"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
	Recommendation   Recommendation   `json:"recommendation"`
	GeneratedAt      string           `json:"generated_at"`
}

// WhaleTransaction is a large on-chain transfer
type WhaleTransaction struct {
	Hash      string  `json:"hash"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	ValueETH  float64 `json:"value_eth"`
	ValueUSD  float64 `json:"value_usd"`
	Timestamp int64   `json:"timestamp"`
	Type      string  `json:"type"`
}

// ExchangeFlow is the ETH moved in and out of one exchange
type ExchangeFlow struct {
	InflowETH  float64 `json:"inflow_eth"`
	OutflowETH float64 `json:"outflow_eth"`
	NetETH     float64 `json:"net_eth"`
}

// WhaleSummary aggregates whale activity
type WhaleSummary struct {
	WhaleTransactions24h  int                     `json:"whale_transactions_24h"`
	LargeTransactions100k int                     `json:"large_transactions_100k"`
	TotalInflowETH        float64                 `json:"total_inflow_eth"`
	TotalOutflowETH       float64                 `json:"total_outflow_eth"`
	NetFlowETH            float64                 `json:"net_flow_eth"`
	ExchangeFlows         map[string]ExchangeFlow `json:"exchange_flows"`
	DataSource            string                  `json:"data_source"`
	IsMock                bool                    `json:"is_mock"`
	UpdatedAt             string                  `json:"updated_at"`
}

// WhaleWallet is a tracked large wallet
type WhaleWallet struct {
	Address          string  `json:"address"`
	Label            string  `json:"label"`
	TotalReceivedETH float64 `json:"total_received_eth"`
	TotalSentETH     float64 `json:"total_sent_eth"`
	LastActive       int64   `json:"last_active"`
}
