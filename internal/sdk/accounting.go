package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type accountingService struct {
	c *restClient
}

func (s *accountingService) accountPath(acc Account, suffix string) string {
	return fmt.Sprintf("/v1/accounts/%s/accounting/%s", acc.AccountID, suffix)
}

func (s *accountingService) Inventories(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "inventories"), nil)
}

func (s *accountingService) UnrealizedGainsLosses(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "unrealized"), nil)
}

func (s *accountingService) QuerySettlement(ctx context.Context, acc Account, dateRange string) (any, error) {
	path := s.accountPath(acc, "settlement?range="+url.QueryEscape(dateRange))
	return s.c.callRaw(ctx, http.MethodGet, path, nil)
}

func (s *accountingService) MarginQuota(ctx context.Context, acc Account, symbol string) (any, error) {
	path := s.accountPath(acc, "margin-quota?symbol="+url.QueryEscape(symbol))
	return s.c.callRaw(ctx, http.MethodGet, path, nil)
}

func (s *accountingService) BankRemain(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "bank-remain"), nil)
}

func (s *accountingService) Maintenance(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "maintenance"), nil)
}

func (s *accountingService) RealizedProfitLoss(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "realized"), nil)
}

func (s *accountingService) RealizedProfitLossSummary(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "realized-summary"), nil)
}
