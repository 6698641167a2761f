package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
)

func (a *App) newRealtimeCommand() *cobra.Command {
	realtime := &cobra.Command{
		Use:   "realtime",
		Short: "Streaming market data and order callbacks (NDJSON on stdout)",
	}

	realtime.AddCommand(a.newSubscribeCommand(), a.newCallbacksCommand())
	return realtime
}

var knownChannels = map[string]struct{}{
	"trades": {}, "aggregates": {}, "candles": {},
}

func (a *App) newSubscribeCommand() *cobra.Command {
	var channel string
	cmd := &cobra.Command{
		Use:   "subscribe <symbol>",
		Short: "Stream realtime data for a stock, one JSON line per event",
		Long: "Streams until interrupted. Each event is one compact JSON line.\n" +
			"Press Ctrl+C to stop.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := knownChannels[channel]; !ok {
				return core.Validationf("unknown channel %q (use trades, aggregates or candles)", channel)
			}

			return a.stream(cmd, func(ctx context.Context, handle *core.Handle) (<-chan sdk.Event, error) {
				return handle.Client.Realtime().Subscribe(ctx, sdk.SubscribeRequest{
					Channel: channel,
					Symbol:  args[0],
				})
			})
		},
	}
	cmd.Flags().StringVar(&channel, "channel", "trades", "Data channel: trades|aggregates|candles")
	return cmd
}

func (a *App) newCallbacksCommand() *cobra.Command {
	var accountIndex int
	cmd := &cobra.Command{
		Use:   "callbacks",
		Short: "Stream order and fill notifications, one JSON line per event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stream(cmd, func(ctx context.Context, handle *core.Handle) (<-chan sdk.Event, error) {
				acc, err := handle.Account(accountIndex)
				if err != nil {
					return nil, err
				}
				return handle.Client.Realtime().Notifications(ctx, acc)
			})
		},
	}
	cmd.Flags().IntVar(&accountIndex, "account-index", 0, "Account index")
	return cmd
}

// stream runs an event channel to exhaustion, emitting one NDJSON line per
// event. SIGINT/SIGTERM cancel the context, which closes the transport and
// in turn the channel; a clean interrupt is a successful exit. A channel
// that closes without the user asking means the venue dropped the stream,
// which is an error.
func (a *App) stream(cmd *cobra.Command, open func(ctx context.Context, handle *core.Handle) (<-chan sdk.Event, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handle, err := a.sessions.Resolve(ctx, nil)
	if err != nil {
		return err
	}
	defer handle.Client.Close()

	events, err := open(ctx, handle)
	if err != nil {
		return err
	}

	for event := range events {
		if err := a.emitter.Event(event); err != nil {
			return err
		}
	}

	if ctx.Err() == nil {
		return sdk.ErrStreamClosed
	}
	return nil
}
