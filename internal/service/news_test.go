package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/model"
	"github.com/stockpulse/stockpulse/internal/sentiment"
)

type stubNewsFetcher struct {
	resp *analytics.NewsImpactResponse
	err  error
}

func (s *stubNewsFetcher) NewsImpact(ctx context.Context, ticker string) (*analytics.NewsImpactResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestImpactTagsReasons(t *testing.T) {
	svc := NewNewsService(&stubNewsFetcher{resp: &analytics.NewsImpactResponse{
		Impact: 0.4,
		Reasons: []string{
			"Positive: record quarterly profit",
			"Negative: regulatory probe widens",
			"Board meeting scheduled for March",
		},
	}})

	impact, err := svc.Impact(context.Background(), "INFY.NS")
	if err != nil {
		t.Fatalf("Impact() error = %v", err)
	}
	if impact.Impact != 0.4 {
		t.Errorf("Impact = %v, want 0.4", impact.Impact)
	}

	want := []string{sentiment.Positive, sentiment.Negative, sentiment.Neutral}
	if len(impact.Reasons) != len(want) {
		t.Fatalf("len(Reasons) = %d, want %d", len(impact.Reasons), len(want))
	}
	for i, reason := range impact.Reasons {
		if reason.Sentiment != want[i] {
			t.Errorf("Reasons[%d].Sentiment = %q, want %q", i, reason.Sentiment, want[i])
		}
	}
}

func TestImpactRequiresTicker(t *testing.T) {
	svc := NewNewsService(&stubNewsFetcher{})

	_, err := svc.Impact(context.Background(), "")
	if !errors.Is(err, ErrTickerRequired) {
		t.Errorf("Impact() error = %v, want ErrTickerRequired", err)
	}
}

func TestImpactEmptyReasons(t *testing.T) {
	svc := NewNewsService(&stubNewsFetcher{resp: &analytics.NewsImpactResponse{Impact: 0}})

	impact, err := svc.Impact(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("Impact() error = %v", err)
	}
	if impact.Reasons == nil {
		t.Error("Reasons = nil, want empty non-nil slice")
	}
	if len(impact.Reasons) != 0 {
		t.Errorf("len(Reasons) = %d, want 0", len(impact.Reasons))
	}
}

type stubIndicatorFetcher struct {
	report *model.Indicators
	err    error
}

func (s *stubIndicatorFetcher) Indicators(ctx context.Context, req analytics.IndicatorRequest) (*model.Indicators, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func TestIndicatorReport(t *testing.T) {
	svc := NewIndicatorService(&stubIndicatorFetcher{report: &model.Indicators{
		Ticker:        "INFY.NS",
		RSI:           61.2,
		TradeDecision: "Buy",
	}})

	report, err := svc.Report(context.Background(), analytics.IndicatorRequest{Company: "Infosys", Ticker: "INFY.NS"})
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if report.TradeDecision != "Buy" {
		t.Errorf("TradeDecision = %q, want %q", report.TradeDecision, "Buy")
	}
}

func TestIndicatorReportRequiresTicker(t *testing.T) {
	svc := NewIndicatorService(&stubIndicatorFetcher{})

	_, err := svc.Report(context.Background(), analytics.IndicatorRequest{Company: "Infosys"})
	if !errors.Is(err, ErrTickerRequired) {
		t.Errorf("Report() error = %v, want ErrTickerRequired", err)
	}
}
