// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/config"
	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/internal/session"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// App wires the command tree to its collaborators. Commands never touch
// process globals; everything they need hangs off the App.
type App struct {
	sessions *core.SessionManager
	store    *session.Store
	aiStore  *config.AssistantStore
	emitter  *core.Emitter
	out      io.Writer
	log      *logger.Logger
}

// New assembles an App. out is where the welcome screen goes; the emitter
// owns all envelope output.
func New(
	sessions *core.SessionManager,
	store *session.Store,
	aiStore *config.AssistantStore,
	emitter *core.Emitter,
	out io.Writer,
	log *logger.Logger,
) *App {
	return &App{
		sessions: sessions,
		store:    store,
		aiStore:  aiStore,
		emitter:  emitter,
		out:      out,
		log:      log,
	}
}

// Execute runs the command tree and returns the process exit code. Any
// command error becomes the error envelope on stdout and exit code 1;
// commands that already emitted output return nil and exit 0.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.newRootCommand()
	if args == nil {
		// cobra treats nil as "use os.Args"; an empty slice means the bare
		// invocation.
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if emitErr := a.emitter.Failure(err); emitErr != nil {
			a.log.Error().Err(emitErr).Msg("failed to write error envelope")
		}
		return 1
	}

	return 0
}

// withSession resolves an authenticated handle (stored credentials, fresh
// login), runs fn, and emits the result in the success envelope. Errors
// propagate to Execute which emits the error envelope.
func (a *App) withSession(cmd *cobra.Command, creds *models.Credentials, fn func(ctx context.Context, handle *core.Handle) (any, error)) error {
	ctx := cmd.Context()

	handle, err := a.sessions.Resolve(ctx, creds)
	if err != nil {
		return err
	}
	defer handle.Client.Close()

	data, err := fn(ctx, handle)
	if err != nil {
		return err
	}

	return a.emitter.Success(data)
}
