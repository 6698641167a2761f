package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/models"
)

func (a *App) newLoginCommand() *cobra.Command {
	var creds models.Credentials

	login := &cobra.Command{
		Use:   "login",
		Short: "Login, logout, and session management",
		Long: "Login:   fubon login --id <ID> --password <PW> --cert-path <PATH>\n" +
			"Logout:  fubon login logout\n" +
			"Status:  fubon login status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.PersonalID == "" || creds.Password == "" || creds.CertPath == "" {
				return core.Validationf(
					"Missing required options. Usage: fubon login --id <ID> --password <PW> --cert-path <PATH> [--cert-password <PW>]")
			}

			return a.withSession(cmd, &creds, func(_ context.Context, handle *core.Handle) (any, error) {
				return map[string]any{"accounts": handle.Accounts}, nil
			})
		},
	}

	login.Flags().StringVar(&creds.PersonalID, "id", "", "Personal ID")
	login.Flags().StringVar(&creds.Password, "password", "", "Login password")
	login.Flags().StringVar(&creds.CertPath, "cert-path", "", "Path to certificate file")
	login.Flags().StringVar(&creds.CertPassword, "cert-password", "", "Certificate password (optional)")

	login.AddCommand(
		&cobra.Command{
			Use:   "logout",
			Short: "Clear saved session credentials",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.store.Clear(); err != nil {
					return err
				}
				return a.emitter.Success(map[string]any{"message": "Logged out successfully"})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Check current login status",
			RunE: func(cmd *cobra.Command, args []string) error {
				stored, err := a.store.Load()
				if err != nil {
					// Absent or unreadable session is a successful "not
					// logged in", not an error.
					return a.emitter.Success(map[string]any{"logged_in": false})
				}

				return a.emitter.Success(map[string]any{
					"logged_in":   true,
					"personal_id": maskPersonalID(stored.PersonalID),
					"cert_path":   stored.CertPath,
				})
			},
		},
	)

	return login
}

// maskPersonalID keeps the three leading characters of the identity and
// hides the rest.
func maskPersonalID(id string) string {
	if len(id) <= 3 {
		return id
	}
	return id[:3] + "***"
}
