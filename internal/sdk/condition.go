package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type conditionService struct {
	c *restClient
}

func (s *conditionService) accountPath(acc Account, futopt bool, suffix string) string {
	segment := "stock"
	if futopt {
		segment = "futopt"
	}
	path := fmt.Sprintf("/v1/accounts/%s/conditions/%s", acc.AccountID, segment)
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}

func (s *conditionService) Create(ctx context.Context, acc Account, spec []byte, futopt bool) (any, error) {
	// The raw spec bypasses structured flags; the brokerage validates it.
	return s.c.callRaw(ctx, http.MethodPost, s.accountPath(acc, futopt, ""), json.RawMessage(spec))
}

func (s *conditionService) List(ctx context.Context, acc Account, futopt bool) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, ""), nil)
}

func (s *conditionService) Get(ctx context.Context, acc Account, guid string, futopt bool) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, guid), nil)
}

func (s *conditionService) Cancel(ctx context.Context, acc Account, guid string, futopt bool) (any, error) {
	return s.c.callRaw(ctx, http.MethodPost, s.accountPath(acc, futopt, guid+"/cancel"), nil)
}

func (s *conditionService) History(ctx context.Context, acc Account, fromDate, toDate string, futopt bool) (any, error) {
	suffix := fmt.Sprintf("history?from=%s&to=%s", fromDate, toDate)
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, suffix), nil)
}

func (s *conditionService) TrailOrders(ctx context.Context, acc Account, futopt bool) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, "trail"), nil)
}

func (s *conditionService) TrailHistory(ctx context.Context, acc Account, fromDate, toDate string, futopt bool) (any, error) {
	suffix := fmt.Sprintf("trail/history?from=%s&to=%s", fromDate, toDate)
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, suffix), nil)
}

func (s *conditionService) TimeSliceOrder(ctx context.Context, acc Account, batchNo string) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, false, "timeslice/"+batchNo), nil)
}

func (s *conditionService) DayTradeConditions(ctx context.Context, acc Account, futopt bool) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, futopt, "daytrade"), nil)
}
