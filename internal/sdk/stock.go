package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type stockService struct {
	c *restClient
}

func (s *stockService) accountPath(acc Account, suffix string) string {
	return fmt.Sprintf("/v1/accounts/%s/stock/%s", acc.AccountID, suffix)
}

func (s *stockService) PlaceOrder(ctx context.Context, acc Account, order Order) (*OrderResult, error) {
	var out OrderResult
	if err := s.c.call(ctx, http.MethodPost, s.accountPath(acc, "orders"), order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *stockService) GetOrderResults(ctx context.Context, acc Account) ([]OrderResult, error) {
	var out []OrderResult
	if err := s.c.call(ctx, http.MethodGet, s.accountPath(acc, "orders"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) CancelOrder(ctx context.Context, acc Account, target OrderResult) (*OrderResult, error) {
	var out OrderResult
	path := s.accountPath(acc, "orders/"+target.OrderNo+"/cancel")
	if err := s.c.call(ctx, http.MethodPost, path, target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *stockService) ModifyPrice(ctx context.Context, acc Account, target OrderResult, newPrice string) (*OrderResult, error) {
	var out OrderResult
	body := struct {
		Target OrderResult `json:"target"`
		Price  string      `json:"price"`
	}{target, newPrice}
	path := s.accountPath(acc, "orders/"+target.OrderNo+"/price")
	if err := s.c.call(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *stockService) ModifyQuantity(ctx context.Context, acc Account, target OrderResult, newQuantity int) (*OrderResult, error) {
	var out OrderResult
	body := struct {
		Target   OrderResult `json:"target"`
		Quantity int         `json:"quantity"`
	}{target, newQuantity}
	path := s.accountPath(acc, "orders/"+target.OrderNo+"/quantity")
	if err := s.c.call(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *stockService) OrderHistory(ctx context.Context, acc Account, fromDate, toDate string) ([]OrderResult, error) {
	var out []OrderResult
	path := s.accountPath(acc, fmt.Sprintf("order-history?from=%s&to=%s", fromDate, toDate))
	if err := s.c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) FilledHistory(ctx context.Context, acc Account, fromDate, toDate string) ([]OrderResult, error) {
	var out []OrderResult
	path := s.accountPath(acc, fmt.Sprintf("filled-history?from=%s&to=%s", fromDate, toDate))
	if err := s.c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) BatchPlaceOrder(ctx context.Context, acc Account, orders []Order) ([]OrderResult, error) {
	var out []OrderResult
	if err := s.c.call(ctx, http.MethodPost, s.accountPath(acc, "orders/batch"), orders, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) BatchCancelOrder(ctx context.Context, acc Account, targets []OrderResult) ([]OrderResult, error) {
	var out []OrderResult
	if err := s.c.call(ctx, http.MethodPost, s.accountPath(acc, "orders/batch-cancel"), targets, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *stockService) BatchModifyPrice(ctx context.Context, acc Account, mods []PriceModification) (any, error) {
	return s.c.callRaw(ctx, http.MethodPut, s.accountPath(acc, "orders/batch-price"), mods)
}

func (s *stockService) BatchModifyQuantity(ctx context.Context, acc Account, mods []QuantityModification) (any, error) {
	return s.c.callRaw(ctx, http.MethodPut, s.accountPath(acc, "orders/batch-quantity"), mods)
}

func (s *stockService) OrderDetail(ctx context.Context, acc Account, orderNo string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "orders/"+orderNo+"/detail"), nil)
}

func (s *stockService) CreateBatchOrder(ctx context.Context, acc Account, orders []Order) (any, error) {
	return s.c.callRaw(ctx, http.MethodPost, s.accountPath(acc, "batch-orders"), orders)
}

func (s *stockService) GetBatchOrder(ctx context.Context, acc Account, batchNo string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "batch-orders/"+batchNo), nil)
}

func (s *stockService) GetBatchOrderList(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "batch-orders"), nil)
}

func (s *stockService) QuerySymbolQuote(ctx context.Context, acc Account, symbol string, marketType MarketType) (any, error) {
	q := url.Values{"symbol": {symbol}, "market_type": {string(marketType)}}
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "quotes?"+q.Encode()), nil)
}

func (s *stockService) QuerySymbolSnapshot(ctx context.Context, acc Account, marketType MarketType, stockTypes []string) (any, error) {
	q := url.Values{"market_type": {string(marketType)}}
	if len(stockTypes) > 0 {
		q.Set("stock_types", strings.Join(stockTypes, ","))
	}
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "snapshot?"+q.Encode()), nil)
}

func (s *stockService) MarketPriceChange(ctx context.Context, acc Account, market string) (any, error) {
	suffix := "price-change"
	if market != "" {
		suffix += "?market=" + url.QueryEscape(market)
	}
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, suffix), nil)
}

func (s *stockService) DayTradeQuota(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "day-trade-quota"), nil)
}
