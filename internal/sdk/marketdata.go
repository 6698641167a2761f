package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type marketDataService struct {
	c *restClient
}

func mdPath(suffix string, q url.Values) string {
	path := "/v1/marketdata/" + suffix
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	return path
}

func (s *marketDataService) IntradayQuote(ctx context.Context, symbol string, oddLot bool) (any, error) {
	q := url.Values{"symbol": {symbol}}
	if oddLot {
		q.Set("type", "oddlot")
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("intraday/quote", q), nil)
}

func (s *marketDataService) IntradayTicker(ctx context.Context, symbol string, oddLot bool) (any, error) {
	q := url.Values{"symbol": {symbol}}
	if oddLot {
		q.Set("type", "oddlot")
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("intraday/ticker", q), nil)
}

func (s *marketDataService) IntradayCandles(ctx context.Context, symbol, timeframe string, oddLot bool) (any, error) {
	q := url.Values{"symbol": {symbol}, "timeframe": {timeframe}}
	if oddLot {
		q.Set("type", "oddlot")
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("intraday/candles", q), nil)
}

func (s *marketDataService) IntradayTrades(ctx context.Context, symbol string, limit, offset int) (any, error) {
	q := url.Values{"symbol": {symbol}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("intraday/trades", q), nil)
}

func (s *marketDataService) IntradayVolumes(ctx context.Context, symbol string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, mdPath("intraday/volumes", url.Values{"symbol": {symbol}}), nil)
}

func (s *marketDataService) SnapshotQuotes(ctx context.Context, market string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, mdPath("snapshot/quotes", url.Values{"market": {market}}), nil)
}

func (s *marketDataService) SnapshotMovers(ctx context.Context, market, direction, change string) (any, error) {
	q := url.Values{"market": {market}, "direction": {direction}, "change": {change}}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("snapshot/movers", q), nil)
}

func (s *marketDataService) SnapshotActives(ctx context.Context, market, trade string) (any, error) {
	q := url.Values{"market": {market}, "trade": {trade}}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("snapshot/actives", q), nil)
}

func (s *marketDataService) HistoricalCandles(ctx context.Context, symbol, timeframe, fromDate, toDate string, adjusted bool) (any, error) {
	q := url.Values{"symbol": {symbol}, "timeframe": {timeframe}}
	if fromDate != "" {
		q.Set("from", fromDate)
	}
	if toDate != "" {
		q.Set("to", toDate)
	}
	if adjusted {
		q.Set("adjusted", "true")
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("historical/candles", q), nil)
}

func (s *marketDataService) HistoricalStats(ctx context.Context, symbol string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, mdPath("historical/stats", url.Values{"symbol": {symbol}}), nil)
}

func (s *marketDataService) Tickers(ctx context.Context, tickerType, exchange string) (any, error) {
	q := url.Values{"type": {tickerType}}
	if exchange != "" {
		q.Set("exchange", exchange)
	}
	return s.c.callRaw(ctx, http.MethodGet, mdPath("tickers", q), nil)
}
