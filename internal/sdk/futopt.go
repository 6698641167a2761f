package sdk

import (
	"context"
	"fmt"
	"net/http"
)

type futOptService struct {
	c *restClient
}

func (s *futOptService) accountPath(acc Account, suffix string) string {
	return fmt.Sprintf("/v1/accounts/%s/futopt/%s", acc.AccountID, suffix)
}

func (s *futOptService) PlaceOrder(ctx context.Context, acc Account, order FutOptOrder) (*OrderResult, error) {
	var out OrderResult
	if err := s.c.call(ctx, http.MethodPost, s.accountPath(acc, "orders"), order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *futOptService) GetOrderResults(ctx context.Context, acc Account) ([]OrderResult, error) {
	var out []OrderResult
	if err := s.c.call(ctx, http.MethodGet, s.accountPath(acc, "orders"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *futOptService) FilledResults(ctx context.Context, acc Account) ([]OrderResult, error) {
	var out []OrderResult
	if err := s.c.call(ctx, http.MethodGet, s.accountPath(acc, "filled"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *futOptService) CancelOrder(ctx context.Context, acc Account, target OrderResult) (*OrderResult, error) {
	var out OrderResult
	path := s.accountPath(acc, "orders/"+target.OrderNo+"/cancel")
	if err := s.c.call(ctx, http.MethodPost, path, target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *futOptService) ModifyPrice(ctx context.Context, acc Account, target OrderResult, newPrice string) (*OrderResult, error) {
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

func (s *futOptService) ModifyQuantity(ctx context.Context, acc Account, target OrderResult, newLot int) (*OrderResult, error) {
	var out OrderResult
	body := struct {
		Target OrderResult `json:"target"`
		Lot    int         `json:"lot"`
	}{target, newLot}
	path := s.accountPath(acc, "orders/"+target.OrderNo+"/quantity")
	if err := s.c.call(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *futOptService) Inventories(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "inventories"), nil)
}

func (s *futOptService) Settlements(ctx context.Context, acc Account) (any, error) {
	return s.c.callRaw(ctx, http.MethodGet, s.accountPath(acc, "settlements"), nil)
}
