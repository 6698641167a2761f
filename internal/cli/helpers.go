package cli

import (
	"context"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
)

// findOrder looks the order number up in the current order results. Cancel
// and modify operations need the full result object, not just the number,
// so unknown numbers fail here with a clear message before any mutation.
func findOrder(results []sdk.OrderResult, orderNo string) (sdk.OrderResult, error) {
	for _, r := range results {
		if r.OrderNo == orderNo {
			return r, nil
		}
	}
	return sdk.OrderResult{}, core.Validationf("Order %s not found in current order results", orderNo)
}

func findStockOrder(ctx context.Context, handle *core.Handle, acc sdk.Account, orderNo string) (sdk.OrderResult, error) {
	results, err := handle.Client.Stock().GetOrderResults(ctx, acc)
	if err != nil {
		return sdk.OrderResult{}, err
	}
	return findOrder(results, orderNo)
}

func findFutOptOrder(ctx context.Context, handle *core.Handle, acc sdk.Account, orderNo string) (sdk.OrderResult, error) {
	results, err := handle.Client.FutOpt().GetOrderResults(ctx, acc)
	if err != nil {
		return sdk.OrderResult{}, err
	}
	return findOrder(results, orderNo)
}

// orderFlags is the shared flag set for buy/sell commands.
type orderFlags struct {
	price        string
	priceType    string
	timeInForce  string
	orderType    string
	marketType   string
	accountIndex int
	userDef      string
}

// build validates the flag spellings and assembles the order. A limit order
// without a price fails before any SDK call.
func (f *orderFlags) build(action sdk.BSAction, symbol string, quantity int) (sdk.Order, error) {
	priceType, err := sdk.ParsePriceType(f.priceType)
	if err != nil {
		return sdk.Order{}, core.Validationf("%s", err)
	}
	tif, err := sdk.ParseTimeInForce(f.timeInForce)
	if err != nil {
		return sdk.Order{}, core.Validationf("%s", err)
	}
	orderType, err := sdk.ParseOrderType(f.orderType)
	if err != nil {
		return sdk.Order{}, core.Validationf("%s", err)
	}
	marketType, err := sdk.ParseMarketType(f.marketType)
	if err != nil {
		return sdk.Order{}, core.Validationf("%s", err)
	}

	if priceType == sdk.PriceLimit && f.price == "" {
		return sdk.Order{}, core.Validationf("--price is required for limit orders")
	}
	if quantity <= 0 {
		return sdk.Order{}, core.Validationf("quantity must be positive, got %d", quantity)
	}

	return sdk.Order{
		BuySell:     action,
		Symbol:      symbol,
		Price:       f.price,
		Quantity:    quantity,
		MarketType:  marketType,
		PriceType:   priceType,
		TimeInForce: tif,
		OrderType:   orderType,
		UserDef:     f.userDef,
	}, nil
}
