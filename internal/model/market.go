package model

// Price point types as tagged by the analytics service.
const (
	PriceTypeHistorical = "historical"
	PriceTypePrediction = "prediction"
)

// PricePoint is one row of the merged price series returned by the
// analytics service: a dated price tagged as recorded or forecast.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

// ChartPoint is the chart-ready shape of a PricePoint: the tagged price is
// split into two nullable fields so the chart can draw a solid historical
// line and a dashed prediction line that meet at the boundary date.
type ChartPoint struct {
	Date            string   `json:"date"`
	HistoricalPrice *float64 `json:"historicalPrice"`
	PredictedPrice  *float64 `json:"predictedPrice"`
}

// StockSnapshot is a single watchlist entry with its latest close and the
// day-over-day direction. Color is derived upstream from the sign of the
// change: green up, red down, grey when there is not enough history.
type StockSnapshot struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Color         string  `json:"color"`
	PercentChange float64 `json:"percent_change"`
}

// BollingerBands carries the three band values. Field names follow the
// analytics service payload.
type BollingerBands struct {
	Low float64 `json:"Low"`
	Mid float64 `json:"Mid"`
	Up  float64 `json:"Up"`
}

// Indicators is the technical-indicator report for one ticker.
type Indicators struct {
	Company        string         `json:"company"`
	Ticker         string         `json:"ticker"`
	Impact         float64        `json:"impact"`
	RSI            float64        `json:"RSI"`
	EMA            float64        `json:"EMA"`
	MACD           float64        `json:"MACD"`
	BollingerBands BollingerBands `json:"Bollinger_Bands"`
	OBV            float64        `json:"OBV"`
	TradeDecision  string         `json:"trade_decision"`
}

// NewsReason is one news headline with its classified sentiment tag.
type NewsReason struct {
	Sentiment string `json:"sentiment"`
	Reason    string `json:"reason"`
}

// NewsImpact is the news-sentiment report for one ticker.
type NewsImpact struct {
	Impact  float64      `json:"impact"`
	Reasons []NewsReason `json:"reasons"`
}
