package analytics

import (
	"github.com/stockpulse/stockpulse/internal/model"
)

// ForecastRequest is the body of POST /predict on the analytics service.
type ForecastRequest struct {
	Ticker      string `json:"ticker"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ForecastOut int    `json:"forecast_out"`
}

// ForecastResponse is the merged historical+prediction payload. Data is
// ordered by date with the prediction tail following the historical series.
type ForecastResponse struct {
	Name        string                `json:"name"`
	Data        []model.PricePoint    `json:"data"`
	CurPrice    float64               `json:"curprice"`
	StockPrices []model.StockSnapshot `json:"stock_prices"`
}

// IndicatorRequest is the body of POST /Indicotor (path spelling is the
// analytics service's own).
type IndicatorRequest struct {
	Company    string `json:"company"`
	Ticker     string `json:"ticker"`
	OwnedStock bool   `json:"owned_stock"`
}

// NewsImpactResponse carries the raw impact score and unclassified reason
// texts for a ticker.
type NewsImpactResponse struct {
	Impact  float64  `json:"impact"`
	Reasons []string `json:"reasons"`
}

type forecastEnvelope struct {
	ForecastResponse
	Error string `json:"error"`
}

type indicatorsEnvelope struct {
	model.Indicators
	Error string `json:"error"`
}

type newsImpactEnvelope struct {
	NewsImpactResponse
	Error string `json:"error"`
}

type stockPricesEnvelope struct {
	Stocks []model.StockSnapshot `json:"stocks"`
	Error  string                `json:"error"`
}
