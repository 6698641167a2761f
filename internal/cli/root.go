package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	welcomeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	welcomeBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	welcomeDimStyle   = lipgloss.NewStyle().Faint(true)
	welcomeCmdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fubon",
		Short: "Fubon Neo trading CLI, JSON output for agents and scripts",
		Long: "Fubon Neo trading CLI. All commands output JSON for easy parsing.\n" +
			"Login first with: fubon login --id <ID> --password <PW> --cert-path <PATH>",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: human-facing welcome, no envelope.
			fmt.Fprintln(a.out, a.welcomeScreen())
			return nil
		},
	}

	root.AddCommand(
		a.newLoginCommand(),
		a.newStockCommand(),
		a.newAccountCommand(),
		a.newMarketCommand(),
		a.newRealtimeCommand(),
		a.newFutOptCommand(),
		a.newConditionCommand(),
		a.newAskCommand(),
		a.newChatCommand(),
		a.newConfigCommand(),
	)

	return root
}

func (a *App) welcomeScreen() string {
	lines := welcomeTitleStyle.Render("fubon — Fubon Neo Trading CLI") + "\n\n" +
		"Get started:\n" +
		"  " + welcomeCmdStyle.Render("fubon login --id <ID> --password <PW> --cert-path <PATH>") + "\n" +
		"  " + welcomeCmdStyle.Render("fubon stock buy 2330 1000 --price 580") + "\n" +
		"  " + welcomeCmdStyle.Render("fubon market quote 2330") + "\n" +
		"  " + welcomeCmdStyle.Render("fubon ask \"how do I check my inventory?\"") + "\n\n" +
		welcomeDimStyle.Render("fubon <command> --help shows details. All output is JSON.")

	return welcomeBoxStyle.Render(lines)
}
