package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"golang.org/x/time/rate"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// BinanceFetcher implements Fetcher against the Binance spot REST API.
// The ticker and kline endpoints are public, so API keys are optional.
type BinanceFetcher struct {
	client  *binance.Client
	limiter *rate.Limiter
}

// NewBinanceFetcher creates a fetcher with optional proxy support and a
// rate limiter of 10 requests per second with a burst of 20.
func NewBinanceFetcher(apiKey, secretKey, proxyURL string) *BinanceFetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}

	client := binance.NewClient(apiKey, secretKey)
	client.HTTPClient = &http.Client{
		Timeout:   10 * time.Second,
		Transport: transport,
	}

	return &BinanceFetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// FetchTicker returns the 24-hour rolling statistics for the symbol.
func (f *BinanceFetcher) FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	stats, err := f.client.NewListPriceChangeStatsService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance 24h ticker: %w", err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("binance 24h ticker: no data for %s", symbol)
	}

	st := stats[0]
	return &model.Ticker{
		Symbol:           st.Symbol,
		LastPrice:        toFloat(st.LastPrice),
		ChangePercent24h: toFloat(st.PriceChangePercent),
		Volume24h:        toFloat(st.Volume),
		High24h:          toFloat(st.HighPrice),
		Low24h:           toFloat(st.LowPrice),
		TradeCount:       st.Count,
		FetchedAt:        time.Now(),
	}, nil
}

// FetchKlines returns the most recent limit candles for the interval,
// oldest first, as Binance serves them.
func (f *BinanceFetcher) FetchKlines(ctx context.Context, symbol, interval string, limit int) ([]model.Candle, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	klines, err := f.client.NewKlinesService().
		Symbol(symbol).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance %s klines: %w", interval, err)
	}

	candles := make([]model.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, model.Candle{
			Time:   time.UnixMilli(k.OpenTime),
			Open:   toFloat(k.Open),
			High:   toFloat(k.High),
			Low:    toFloat(k.Low),
			Close:  toFloat(k.Close),
			Volume: toFloat(k.Volume),
		})
	}
	return candles, nil
}

// toFloat parses Binance's string-encoded decimals; malformed values come
// back as 0.
func toFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
