package entities

// FearGreedReading is the latest Fear & Greed index value
type FearGreedReading struct {
	Value               int    `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           int64  `json:"timestamp"`
	TimeUpdated         string `json:"time_updated"`
}

// FearGreedPoint is one day of Fear & Greed history
type FearGreedPoint struct {
	Value               int    `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           int64  `json:"timestamp"`
	Date                string `json:"date"`
}

// MaxFearGreedHistoryDays is the longest history alternative.me returns
const MaxFearGreedHistoryDays = 100
