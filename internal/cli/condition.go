package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
)

func (a *App) newConditionCommand() *cobra.Command {
	condition := &cobra.Command{
		Use:   "condition",
		Short: "Server-held conditional orders",
	}

	var createFutOpt bool
	var createAccountIndex int
	create := &cobra.Command{
		Use:   "create <spec-json>",
		Short: "Create a conditional order from a raw JSON specification",
		Long: "The specification is passed to the brokerage unmodified; the server\n" +
			"validates the condition and returns its guid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(args[0])) {
				return core.Validationf("invalid condition JSON")
			}
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(createAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().Create(ctx, acc, []byte(args[0]), createFutOpt)
			})
		},
	}
	create.Flags().BoolVar(&createFutOpt, "futopt", false, "Create a futures/options condition")
	create.Flags().IntVar(&createAccountIndex, "account-index", 0, "Account index")

	var listFutOpt bool
	var listAccountIndex int
	list := &cobra.Command{
		Use:   "list",
		Short: "List active conditional orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(listAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().List(ctx, acc, listFutOpt)
			})
		},
	}
	list.Flags().BoolVar(&listFutOpt, "futopt", false, "Query futures/options conditions")
	list.Flags().IntVar(&listAccountIndex, "account-index", 0, "Account index")

	var getFutOpt bool
	var getAccountIndex int
	get := &cobra.Command{
		Use:   "get <guid>",
		Short: "Get one conditional order by guid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(getAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().Get(ctx, acc, args[0], getFutOpt)
			})
		},
	}
	get.Flags().BoolVar(&getFutOpt, "futopt", false, "Query futures/options conditions")
	get.Flags().IntVar(&getAccountIndex, "account-index", 0, "Account index")

	var cancelFutOpt bool
	var cancelAccountIndex int
	cancel := &cobra.Command{
		Use:   "cancel <guid>",
		Short: "Cancel a conditional order by guid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(cancelAccountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().Cancel(ctx, acc, args[0], cancelFutOpt)
			})
		},
	}
	cancel.Flags().BoolVar(&cancelFutOpt, "futopt", false, "Cancel a futures/options condition")
	cancel.Flags().IntVar(&cancelAccountIndex, "account-index", 0, "Account index")

	condition.AddCommand(
		create, list, get, cancel,
		a.newConditionHistoryCommand(),
		a.newTrailListCommand(),
		a.newTrailHistoryCommand(),
		a.newTimeSliceGetCommand(),
		a.newDayTradeListCommand(),
	)
	return condition
}

func (a *App) newConditionHistoryCommand() *cobra.Command {
	var futopt bool
	var accountIndex int
	var fromDate, toDate string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query historical condition orders within a date range",
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
				return handle.Client.Condition().History(ctx, acc, fromDate, toDate, futopt)
			})
		},
	}
	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (yyyy-MM-dd)")
	cmd.Flags().BoolVar(&futopt, "futopt", false, "Query futures/options conditions")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newTrailListCommand() *cobra.Command {
	var futopt bool
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "trail-list",
		Short: "List active trailing stop/profit orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().TrailOrders(ctx, acc, futopt)
			})
		},
	}
	cmd.Flags().BoolVar(&futopt, "futopt", false, "Query futures/options trailing orders")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newTrailHistoryCommand() *cobra.Command {
	var futopt bool
	var accountIndex int
	var fromDate, toDate string
	cmd := &cobra.Command{
		Use:   "trail-history",
		Short: "Query historical trailing stop/profit orders within a date range",
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
				return handle.Client.Condition().TrailHistory(ctx, acc, fromDate, toDate, futopt)
			})
		},
	}
	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (yyyy-MM-dd)")
	cmd.Flags().BoolVar(&futopt, "futopt", false, "Query futures/options trailing orders")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newTimeSliceGetCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "timeslice-get <batch-no>",
		Short: "Get time-slice (TWAP) order details by batch number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().TimeSliceOrder(ctx, acc, args[0])
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

func (a *App) newDayTradeListCommand() *cobra.Command {
	var futopt bool
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "day-trade-list",
		Short: "List active day-trade condition orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, nil, func(ctx context.Context, handle *core.Handle) (any, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Condition().DayTradeConditions(ctx, acc, futopt)
			})
		},
	}
	cmd.Flags().BoolVar(&futopt, "futopt", false, "Query futures/options day-trade conditions")
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}
