package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
)

func (a *App) newFutOptCommand() *cobra.Command {
	futopt := &cobra.Command{
		Use:   "futopt",
		Short: "Futures and options trading operations",
	}

	futopt.AddCommand(
		a.newFutOptPlaceCommand(sdk.Buy),
		a.newFutOptPlaceCommand(sdk.Sell),
		a.newFutOptQuery("orders", "Query current futures/options order results",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.FutOpt().GetOrderResults(ctx, acc)
			}),
		a.newFutOptQuery("filled", "Query filled futures/options orders",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.FutOpt().FilledResults(ctx, acc)
			}),
		a.newFutOptCancelCommand(),
		a.newFutOptModifyPriceCommand(),
		a.newFutOptModifyQuantityCommand(),
		a.newFutOptQuery("inventories", "Query futures/options positions",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.FutOpt().Inventories(ctx, acc)
			}),
		a.newFutOptQuery("settlements", "Query futures/options settlements",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.FutOpt().Settlements(ctx, acc)
			}),
	)

	return futopt
}

func (a *App) newFutOptPlaceCommand(action sdk.BSAction) *cobra.Command {
	use, short := "buy", "Place a futures/options BUY order"
	if action == sdk.Sell {
		use, short = "sell", "Place a futures/options SELL order"
	}

	var price, priceType, timeInForce, orderType, marketType string
	var accountIndex int

	cmd := &cobra.Command{
		Use:   use + " <symbol> <lot>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lot, err := strconv.Atoi(args[1])
			if err != nil {
				return core.Validationf("lot must be an integer, got %q", args[1])
			}
			if lot <= 0 {
				return core.Validationf("lot must be positive, got %d", lot)
			}

			pt, err := sdk.ParseFutOptPriceType(priceType)
			if err != nil {
				return core.Validationf("%s", err)
			}
			tif, err := sdk.ParseTimeInForce(timeInForce)
			if err != nil {
				return core.Validationf("%s", err)
			}
			ot, err := sdk.ParseFutOptOrderType(orderType)
			if err != nil {
				return core.Validationf("%s", err)
			}
			mt, err := sdk.ParseFutOptMarketType(marketType)
			if err != nil {
				return core.Validationf("%s", err)
			}
			if pt == sdk.FutOptPriceLimit && price == "" {
				return core.Validationf("--price is required for limit orders")
			}

			order := sdk.FutOptOrder{
				BuySell:     action,
				Symbol:      args[0],
				Price:       price,
				Lot:         lot,
				MarketType:  mt,
				PriceType:   pt,
				TimeInForce: tif,
				OrderType:   ot,
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.FutOpt().PlaceOrder(ctx, acc, order)
			})
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Limit price. Omit for market orders.")
	cmd.Flags().StringVar(&priceType, "price-type", "limit", "Price type: limit|market|market-range")
	cmd.Flags().StringVar(&timeInForce, "time-in-force", "ROD", "Time in force: ROD|IOC|FOK")
	cmd.Flags().StringVar(&orderType, "order-type", "new", "Order type: new|cover|auto")
	cmd.Flags().StringVar(&marketType, "market-type", "future", "Market type: future|future-night|option|option-night")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index (default: 0)")

	return cmd
}

func (a *App) newFutOptQuery(use, short string, fn accountQueryFn) *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return fn(ctx, handle, acc)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newFutOptCancelCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "cancel <order-no>",
		Short: "Cancel a futures/options order by order number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findFutOptOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.FutOpt().CancelOrder(ctx, acc, target)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newFutOptModifyPriceCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "modify-price <order-no> <new-price>",
		Short: "Modify the price of a futures/options order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findFutOptOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.FutOpt().ModifyPrice(ctx, acc, target, args[1])
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newFutOptModifyQuantityCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "modify-quantity <order-no> <new-lot>",
		Short: "Modify the lot count of a futures/options order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lot, err := strconv.Atoi(args[1])
			if err != nil {
				return core.Validationf("lot must be an integer, got %q", args[1])
			}

			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				target, err := findFutOptOrder(ctx, handle, acc, args[0])
				if err != nil {
					return nil, err
				}
				return handle.Client.FutOpt().ModifyQuantity(ctx, acc, target, lot)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}
