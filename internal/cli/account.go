package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
)

type accountQueryFn func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error)

// newAccountQuery builds the common shape of the bookkeeping commands: one
// account-index flag, one SDK query, one envelope.
func (a *App) newAccountQuery(use, short string, fn accountQueryFn) *cobra.Command {
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

func (a *App) newAccountCommand() *cobra.Command {
	account := &cobra.Command{
		Use:   "account",
		Short: "Account queries: inventory, settlement, balances, P&L",
	}

	var dateRange string
	var settlementAccountIndex int
	settlement := &cobra.Command{
		Use:   "settlement",
		Short: "Query settlement information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dateRange != "0d" && dateRange != "1d" && dateRange != "2d" && dateRange != "3d" {
				return core.Validationf("unknown settlement range %q (use 0d, 1d, 2d or 3d)", dateRange)
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(settlementAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Accounting().QuerySettlement(ctx, acc, dateRange)
			})
		},
	}
	settlement.Flags().StringVar(&dateRange, "range", "0d", "Query range: 0d=today, 1d, 2d, 3d")
	settlement.Flags().IntVar(&settlementAccountIndex, "account-index", 0, "Account index")

	var marginAccountIndex int
	marginQuota := &cobra.Command{
		Use:   "margin-quota <symbol>",
		Short: "Query margin/short quota for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(marginAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Accounting().MarginQuota(ctx, acc, args[0])
			})
		},
	}
	marginQuota.Flags().IntVar(&marginAccountIndex, "account-index", 0, "Account index")

	account.AddCommand(
		a.newAccountQuery("inventory", "Query stock inventory",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().Inventories(ctx, acc)
			}),
		a.newAccountQuery("unrealized", "Query unrealized gains and losses",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().UnrealizedGainsLosses(ctx, acc)
			}),
		settlement,
		marginQuota,
		a.newAccountQuery("bank-balance", "Query bank account balance",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().BankRemain(ctx, acc)
			}),
		a.newAccountQuery("maintenance", "Query margin maintenance",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().Maintenance(ctx, acc)
			}),
		a.newAccountQuery("realized", "Query realized profit and loss",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().RealizedProfitLoss(ctx, acc)
			}),
		a.newAccountQuery("realized-summary", "Query realized profit and loss summary",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Accounting().RealizedProfitLossSummary(ctx, acc)
			}),
		a.newAccountQuery("day-trade-quota", "Query day trade quota",
			func(ctx context.Context, handle *core.Handle, acc sdk.Account) (any, error) {
				return handle.Client.Stock().DayTradeQuota(ctx, acc)
			}),
	)

	return account
}
