package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
)

func (a *App) newMarketCommand() *cobra.Command {
	market := &cobra.Command{
		Use:   "market",
		Short: "Market data: quotes, candles, trades, snapshots, history",
	}

	market.AddCommand(
		a.newMarketQuote(),
		a.newMarketTicker(),
		a.newMarketCandles(),
		a.newMarketTrades(),
		a.newMarketVolumes(),
		a.newMarketSnapshot(),
		a.newMarketMovers(),
		a.newMarketActives(),
		a.newMarketHistory(),
		a.newMarketStats(),
		a.newMarketTickers(),
	)

	return market
}

// marketRun wraps a market-data call in the session + envelope plumbing.
func (a *App) marketRun(cmd *cobra.Command, fn func(ctx context.Context, handle *core.Handle) (any, error)) error {
	return a.withSession(cmd, nil, fn)
}

func (a *App) newMarketQuote() *cobra.Command {
	var oddLot bool
	cmd := &cobra.Command{
		Use:   "quote <symbol>",
		Short: "Query intraday quote for a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().IntradayQuote(ctx, args[0], oddLot)
			})
		},
	}
	cmd.Flags().BoolVar(&oddLot, "odd-lot", false, "Query odd-lot quote")
	return cmd
}

func (a *App) newMarketTicker() *cobra.Command {
	var oddLot bool
	cmd := &cobra.Command{
		Use:   "ticker <symbol>",
		Short: "Query ticker info for a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().IntradayTicker(ctx, args[0], oddLot)
			})
		},
	}
	cmd.Flags().BoolVar(&oddLot, "odd-lot", false, "Query odd-lot ticker info")
	return cmd
}

func (a *App) newMarketCandles() *cobra.Command {
	var timeframe string
	var oddLot bool
	cmd := &cobra.Command{
		Use:   "candles <symbol>",
		Short: "Query intraday candles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().IntradayCandles(ctx, args[0], timeframe, oddLot)
			})
		},
	}
	cmd.Flags().StringVar(&timeframe, "timeframe", "1", "Timeframe in minutes: 1|5|10|15|30|60")
	cmd.Flags().BoolVar(&oddLot, "odd-lot", false, "Query odd-lot candles")
	return cmd
}

func (a *App) newMarketTrades() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "trades <symbol>",
		Short: "Query intraday trades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().IntradayTrades(ctx, args[0], limit, offset)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max number of trades")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset for pagination")
	return cmd
}

func (a *App) newMarketVolumes() *cobra.Command {
	return &cobra.Command{
		Use:   "volumes <symbol>",
		Short: "Query volume distribution by price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().IntradayVolumes(ctx, args[0])
			})
		},
	}
}

func (a *App) newMarketSnapshot() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <market>",
		Short: "Snapshot quotes for a whole market (TSE, OTC, ESB, TIB, PSB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			market, err := marketArg(args[0])
			if err != nil {
				return err
			}
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().SnapshotQuotes(ctx, market)
			})
		},
	}
}

func (a *App) newMarketMovers() *cobra.Command {
	var direction, change string
	cmd := &cobra.Command{
		Use:   "movers <market>",
		Short: "Top gaining or losing stocks in a market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			market, err := marketArg(args[0])
			if err != nil {
				return err
			}
			if direction != "up" && direction != "down" {
				return core.Validationf("unknown direction %q (use up or down)", direction)
			}
			if change != "percent" && change != "value" {
				return core.Validationf("unknown change mode %q (use percent or value)", change)
			}
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().SnapshotMovers(ctx, market, direction, change)
			})
		},
	}
	cmd.Flags().StringVar(&direction, "direction", "up", "Movement direction: up|down")
	cmd.Flags().StringVar(&change, "change", "percent", "Ranking basis: percent|value")
	return cmd
}

func (a *App) newMarketActives() *cobra.Command {
	var trade string
	cmd := &cobra.Command{
		Use:   "actives <market>",
		Short: "Most active stocks in a market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			market, err := marketArg(args[0])
			if err != nil {
				return err
			}
			if trade != "volume" && trade != "value" {
				return core.Validationf("unknown trade mode %q (use volume or value)", trade)
			}
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().SnapshotActives(ctx, market, trade)
			})
		},
	}
	cmd.Flags().StringVar(&trade, "trade", "volume", "Ranking basis: volume|value")
	return cmd
}

func (a *App) newMarketHistory() *cobra.Command {
	var fromDate, toDate, timeframe string
	var adjusted bool
	cmd := &cobra.Command{
		Use:   "history <symbol>",
		Short: "Query historical candles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().HistoricalCandles(ctx, args[0], timeframe, fromDate, toDate, adjusted)
			})
		},
	}
	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&timeframe, "timeframe", "D", "Timeframe: D|W|M")
	cmd.Flags().BoolVar(&adjusted, "adjusted", false, "Use adjusted prices")
	return cmd
}

func (a *App) newMarketStats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <symbol>",
		Short: "52-week stats for a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().HistoricalStats(ctx, args[0])
			})
		},
	}
}

func (a *App) newMarketTickers() *cobra.Command {
	var tickerType, exchange string
	cmd := &cobra.Command{
		Use:   "tickers",
		Short: "List tickers by type and exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.marketRun(cmd, func(ctx context.Context, handle *core.Handle) (any, error) {
				return handle.Client.MarketData().Tickers(ctx, tickerType, exchange)
			})
		},
	}
	cmd.Flags().StringVar(&tickerType, "type", "", "Ticker type filter (e.g. EQUITY, INDEX)")
	cmd.Flags().StringVar(&exchange, "exchange", "", "Exchange filter (e.g. TWSE, TPEx)")
	return cmd
}

var knownMarkets = map[string]struct{}{
	"TSE": {}, "OTC": {}, "ESB": {}, "TIB": {}, "PSB": {},
}

func marketArg(market string) (string, error) {
	if _, ok := knownMarkets[market]; !ok {
		return "", core.Validationf("unknown market %q (use TSE, OTC, ESB, TIB or PSB)", market)
	}
	return market, nil
}
