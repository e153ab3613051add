package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WatchlistEntry maps a display name to its exchange-qualified ticker.
type WatchlistEntry struct {
	Name   string `yaml:"name" json:"name"`
	Ticker string `yaml:"ticker" json:"ticker"`
}

// Watchlist is the ordered set of stocks shown on the dashboard snapshot.
type Watchlist struct {
	Stocks []WatchlistEntry `yaml:"stocks" json:"stocks"`
}

// defaultWatchlist mirrors the NSE stocks the dashboard ships with.
var defaultWatchlist = []WatchlistEntry{
	{Name: "TCS", Ticker: "TCS.NS"},
	{Name: "Tata Steel", Ticker: "TATASTEEL.NS"},
	{Name: "Reliance", Ticker: "RELIANCE.NS"},
	{Name: "ICICI Bank", Ticker: "ICICIBANK.NS"},
	{Name: "Infosys", Ticker: "INFY.NS"},
	{Name: "HDFC Bank", Ticker: "HDFCBANK.NS"},
	{Name: "Bharti Airtel", Ticker: "BHARTIARTL.NS"},
	{Name: "Hindustan Unilever", Ticker: "HINDUNILVR.NS"},
	{Name: "Asian Paints", Ticker: "ASIANPAINT.NS"},
	{Name: "Maruti Suzuki", Ticker: "MARUTI.NS"},
}

// LoadWatchlist reads the watchlist YAML file. A missing file falls back to
// the built-in default list; a present but malformed file is an error.
func LoadWatchlist(path string) (*Watchlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Watchlist{Stocks: defaultWatchlist}, nil
		}
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	wl := &Watchlist{}
	if err := yaml.Unmarshal(data, wl); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	if len(wl.Stocks) == 0 {
		wl.Stocks = defaultWatchlist
	}
	return wl, nil
}
