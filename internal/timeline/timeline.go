// Package timeline reshapes the merged price series from the analytics
// service into chart-ready rows with separate historical and predicted
// columns.
package timeline

import (
	"github.com/stockpulse/stockpulse/internal/model"
)

// Reconcile maps each tagged price point to a chart point, 1:1 and in input
// order. Historical rows fill HistoricalPrice, prediction rows fill
// PredictedPrice; the other field stays nil. The chart layer connects across
// nils, so a boundary date present in both sub-series makes the dashed
// prediction tail start exactly where the solid historical line ends.
// Reconcile itself never interpolates.
//
// An empty input yields an empty (non-nil) output so the response encodes as
// [] and the client shows its no-data state rather than an empty chart.
func Reconcile(points []model.PricePoint) []model.ChartPoint {
	out := make([]model.ChartPoint, 0, len(points))
	for _, p := range points {
		row := model.ChartPoint{Date: p.Date}
		price := p.Price
		switch p.Type {
		case model.PriceTypeHistorical:
			row.HistoricalPrice = &price
		case model.PriceTypePrediction:
			row.PredictedPrice = &price
		}
		out = append(out, row)
	}
	return out
}
