// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
)

func (a *App) newStockCommand() *cobra.Command {
	stock := &cobra.Command{
		Use:   "stock",
		Short: "Stock trading operations: buy, sell, modify, cancel orders",
	}

	stock.AddCommand(
		a.newPlaceCommand(sdk.Buy),
		a.newPlaceCommand(sdk.Sell),
		a.newOrdersCommand(),
		a.newCancelCommand(),
		a.newModifyPriceCommand(),
		a.newModifyQuantityCommand(),
		a.newOrderHistoryCommand("order-history", "Query order history",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account, from, to string) (any, error) {
				return handle.Client.Stock().OrderHistory(ctx, acc, from, to)
			}),
		a.newOrderHistoryCommand("filled-history", "Query filled order history",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account, from, to string) (any, error) {
				return handle.Client.Stock().FilledHistory(ctx, acc, from, to)
			}),
		a.newOrderDetailCommand(),
		a.newBatchPlaceCommand(),
		a.newBatchCancelCommand(),
		a.newBatchModifyPriceCommand(),
		a.newBatchModifyQuantityCommand(),
		a.newBatchCreateCommand(),
		a.newBatchGetCommand(),
		a.newBatchListCommand(),
		a.newSymbolQuoteCommand(),
		a.newSymbolSnapshotCommand(),
		a.newPriceChangeCommand(),
	)

	return stock
}

func (a *App) newPlaceCommand(action sdk.BSAction) *cobra.Command {
	use, short := "buy", "Place a stock BUY order"
	if action == sdk.Sell {
		use, short = "sell", "Place a stock SELL order"
	}

	var flags orderFlags
	cmd := &cobra.Command{
		Use:   use + " <symbol> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return core.Validationf("quantity must be an integer, got %q", args[1])
			}

			order, err := flags.build(action, args[0], quantity)
			if err != nil {
				return err
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(flags.accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().PlaceOrder(ctx, acc, order)
			})
		},
	}

	cmd.Flags().StringVar(&flags.price, "price", "", "Limit price. Omit for market/special price types.")
	cmd.Flags().StringVar(&flags.priceType, "price-type", "limit", "Price type: limit|market|limit-up|limit-down|reference")
	cmd.Flags().StringVar(&flags.timeInForce, "time-in-force", "ROD", "Time in force: ROD|IOC|FOK")
	cmd.Flags().StringVar(&flags.orderType, "order-type", "stock", "Order type: stock|margin|short|sbl|day-trade")
	cmd.Flags().StringVar(&flags.marketType, "market-type", "common", "Market type: common|odd|intraday-odd|fixing|emg|emg-odd")
	cmd.Flags().IntVar(&flags.accountIndex, "account-index", 0, "Account index (default: 0)")
	cmd.Flags().StringVar(&flags.userDef, "user-def", "", "User-defined tag (max 10 alphanumeric chars)")

	return cmd
}

func (a *App) newOrdersCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Query current order results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().GetOrderResults(ctx, acc)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newCancelCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "cancel <order-no>",
		Short: "Cancel an existing order by order number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findStockOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().CancelOrder(ctx, acc, target)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newModifyPriceCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "modify-price <order-no> <new-price>",
		Short: "Modify the price of an existing order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findStockOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().ModifyPrice(ctx, acc, target, args[1])
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newModifyQuantityCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "modify-quantity <order-no> <new-quantity>",
		Short: "Modify the quantity of an existing order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return core.Validationf("quantity must be an integer, got %q", args[1])
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findStockOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().ModifyQuantity(ctx, acc, target, quantity)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

type historyFn func(ctx context.Context, handle *core.Handle, acc sdk.Account, from, to string) (any, error)

func (a *App) newOrderHistoryCommand(use, short string, fn historyFn) *cobra.Command {
	var accountIndex int
	var fromDate, toDate string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromDate == "" || toDate == "" {
				return core.Validationf("--from and --to are required (yyyy-MM-dd)")
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return fn(ctx, handle, acc, fromDate, toDate)
			})
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (yyyy-MM-dd, max 30-day range)")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchPlaceCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-place <orders-json>",
		Short: "Place multiple orders from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var orders []sdk.Order
			if err := json.Unmarshal([]byte(args[0]), &orders); err != nil {
				return core.Validationf("invalid orders JSON: %s", err)
			}
			if len(orders) == 0 {
				return core.Validationf("orders JSON must be a non-empty array")
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().BatchPlaceOrder(ctx, acc, orders)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newOrderDetailCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "order-detail <order-no>",
		Short: "Get detailed history for a specific order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().OrderDetail(ctx, acc, args[0])
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchCancelCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-cancel <order-no>...",
		Short: "Cancel multiple orders by order number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}

				results, err := handle.Client.Stock().GetOrderResults(ctx, acc)
				if err != nil {
					return nil, err
				}
				targets := make([]sdk.OrderResult, 0, len(args))
				for _, orderNo := range args {
					target, err := findOrder(results, orderNo)
					if err != nil {
						return nil, err
					}
					targets = append(targets, target)
				}

				return handle.Client.Stock().BatchCancelOrder(ctx, acc, targets)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchModifyPriceCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-modify-price <updates-json>",
		Short: "Modify prices for multiple orders from a JSON array of {order_no, price}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var updates []struct {
				OrderNo string `json:"order_no"`
				Price   string `json:"price"`
			}
			if err := json.Unmarshal([]byte(args[0]), &updates); err != nil {
				return core.Validationf("invalid updates JSON: %s", err)
			}
			if len(updates) == 0 {
				return core.Validationf("updates JSON must be a non-empty array")
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}

				results, err := handle.Client.Stock().GetOrderResults(ctx, acc)
				if err != nil {
					return nil, err
				}
				mods := make([]sdk.PriceModification, 0, len(updates))
				for _, upd := range updates {
					target, err := findOrder(results, upd.OrderNo)
					if err != nil {
						return nil, err
					}
					mods = append(mods, sdk.PriceModification{Target: target, Price: upd.Price})
				}

				return handle.Client.Stock().BatchModifyPrice(ctx, acc, mods)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchModifyQuantityCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-modify-quantity <updates-json>",
		Short: "Modify quantities for multiple orders from a JSON array of {order_no, quantity}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var updates []struct {
				OrderNo  string `json:"order_no"`
				Quantity int    `json:"quantity"`
			}
			if err := json.Unmarshal([]byte(args[0]), &updates); err != nil {
				return core.Validationf("invalid updates JSON: %s", err)
			}
			if len(updates) == 0 {
				return core.Validationf("updates JSON must be a non-empty array")
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}

				results, err := handle.Client.Stock().GetOrderResults(ctx, acc)
				if err != nil {
					return nil, err
				}
				mods := make([]sdk.QuantityModification, 0, len(updates))
				for _, upd := range updates {
					target, err := findOrder(results, upd.OrderNo)
					if err != nil {
						return nil, err
					}
					mods = append(mods, sdk.QuantityModification{Target: target, Quantity: upd.Quantity})
				}

				return handle.Client.Stock().BatchModifyQuantity(ctx, acc, mods)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchCreateCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-create <orders-json>",
		Short: "Create a named batch order from a JSON array (same format as batch-place)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var orders []sdk.Order
			if err := json.Unmarshal([]byte(args[0]), &orders); err != nil {
				return core.Validationf("invalid orders JSON: %s", err)
			}
			if len(orders) == 0 {
				return core.Validationf("orders JSON must be a non-empty array")
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().CreateBatchOrder(ctx, acc, orders)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchGetCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-get <batch-no>",
		Short: "Get details of a named batch order by batch number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().GetBatchOrder(ctx, acc, args[0])
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newBatchListCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "batch-list",
		Short: "List all batch orders for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().GetBatchOrderList(ctx, acc)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newSymbolQuoteCommand() *cobra.Command {
	var accountIndex int
	var marketType string
	cmd := &cobra.Command{
		Use:   "symbol-quote <symbol>",
		Short: "Query real-time stock quote including tradability flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := sdk.ParseMarketType(marketType)
			if err != nil {
				return core.Validationf("%s", err)
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().QuerySymbolQuote(ctx, acc, args[0], mt)
			})
		},
	}
	cmd.Flags().StringVar(&marketType, "market-type", "common", "Market type: common|odd|intraday-odd|fixing|emg|emg-odd")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newSymbolSnapshotCommand() *cobra.Command {
	var accountIndex int
	var marketType, stockTypes string
	cmd := &cobra.Command{
		Use:   "symbol-snapshot",
		Short: "Query full quote snapshot for all holdings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := sdk.ParseMarketType(marketType)
			if err != nil {
				return core.Validationf("%s", err)
			}
			var types []string
			if stockTypes != "" {
				types = strings.Split(stockTypes, ",")
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().QuerySymbolSnapshot(ctx, acc, mt, types)
			})
		},
	}
	cmd.Flags().StringVar(&marketType, "market-type", "common", "Market type: common|odd|intraday-odd|fixing|emg|emg-odd")
	cmd.Flags().StringVar(&stockTypes, "stock-types", "", "Comma-separated stock types filter (e.g. stock,margin,short)")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newPriceChangeCommand() *cobra.Command {
	var accountIndex int
	var market string
	cmd := &cobra.Command{
		Use:   "price-change",
		Short: "Query up/down limit price change report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Empty market queries all holdings.
			if market != "" {
				if _, err := marketArg(market); err != nil {
					return err
				}
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Stock().MarketPriceChange(ctx, acc, market)
			})
		},
	}
	cmd.Flags().StringVar(&market, "market", "", "Market to query: TSE|OTC|ESB|TIB|PSB. Omit to query all holdings.")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}
