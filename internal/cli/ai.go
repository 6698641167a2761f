package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/assistant"
)

func (a *App) newAskCommand() *cobra.Command {
	var execute, jsonOut bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the AI assistant about trading or fubon commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aiCfg, err := a.aiStore.Resolve()
			if err != nil {
				return err
			}
			ai, err := assistant.New(aiCfg, a.log)
			if err != nil {
				return err
			}

			if !jsonOut {
				fmt.Fprintln(a.out, welcomeDimStyle.Render("  … thinking"))
			}

			answer, err := ai.Ask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			commands := assistant.ExtractCommands(answer)

			if jsonOut {
				return a.emitter.Success(map[string]any{
					"question":           args[0],
					"answer":             answer,
					"suggested_commands": commands,
				})
			}

			fmt.Fprintln(a.out, answer)
			if execute {
				a.offerToExecute(cmd, commands)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&execute, "execute", "x", false, "Confirm and run suggested commands interactively")
	cmd.Flags().BoolVar(&jsonOut, "json-output", false, "Emit {question, answer, suggested_commands} as JSON (agent mode)")
	return cmd
}

// offerToExecute walks the suggested commands and runs the confirmed ones.
// Commands that place or change orders require a typed "yes"; read-only
// commands accept y/n.
func (a *App) offerToExecute(cmd *cobra.Command, commands []string) {
	if len(commands) == 0 {
		fmt.Fprintln(a.out, welcomeDimStyle.Render("  no runnable commands suggested"))
		return
	}

	runner := assistant.NewRunner(a.log)
	reader := bufio.NewReader(os.Stdin)

	for _, command := range commands {
		trading := assistant.IsTradingCommand(command)
		if trading {
			fmt.Fprintf(a.out, "\n%s\n  this places or changes an order. Type yes to run: ", welcomeCmdStyle.Render(command))
		} else {
			fmt.Fprintf(a.out, "\n%s\n  run? [y/N]: ", welcomeCmdStyle.Render(command))
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		answer := strings.ToLower(strings.TrimSpace(line))

		confirmed := answer == "yes" || (!trading && answer == "y")
		if !confirmed {
			fmt.Fprintln(a.out, welcomeDimStyle.Render("  skipped"))
			continue
		}

		out, err := runner.Run(cmd.Context(), command)
		if err != nil {
			fmt.Fprintln(a.out, welcomeDimStyle.Render("  error: "+err.Error()))
			continue
		}
		fmt.Fprintln(a.out, out)
	}
}

func (a *App) newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive AI chat with command execution",
		Long: "Built-in commands:\n" +
			"  /run N  run the Nth suggested command (with confirmation)\n" +
			"  /clear  reset the conversation\n" +
			"  exit    leave",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aiCfg, err := a.aiStore.Resolve()
			if err != nil {
				return err
			}
			ai, err := assistant.New(aiCfg, a.log)
			if err != nil {
				return err
			}

			return assistant.RunChat(cmd.Context(), ai, assistant.NewRunner(a.log))
		},
	}
}

func (a *App) newConfigCommand() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage assistant settings (API key, model)",
	}

	cfg.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a config entry (openai-key, ai-model, base-url)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.aiStore.Set(args[0], args[1]); err != nil {
					return err
				}
				return a.emitter.Success(map[string]any{
					"key":   args[0],
					"value": maskConfigValue(args[0], args[1]),
				})
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get one config entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := a.aiStore.Get(args[0])
				if err != nil {
					return err
				}
				return a.emitter.Success(map[string]any{
					"key":   args[0],
					"value": maskConfigValue(args[0], value),
				})
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show all config entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				stored := a.aiStore.Load()
				return a.emitter.Success(map[string]any{
					"openai_api_key": maskConfigValue("openai-key", stored.OpenAIAPIKey),
					"ai_model":       stored.AIModel,
					"base_url":       stored.BaseURL,
				})
			},
		},
	)

	return cfg
}

// maskConfigValue hides all but a short prefix of secret-bearing values.
func maskConfigValue(key, value string) string {
	if value == "" || !strings.Contains(key, "key") {
		return value
	}
	if len(value) <= 8 {
		return "..."
	}
	return value[:8] + "..."
}
