package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"task-scheduling-advisor/pkg/gcalendar"
)

func calendarAuthCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `Run once with OAuth desktop credentials to create the token file
configured at google_calendar.token_path. Service account credentials need no token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.GoogleCalendar.Enabled() {
				return fmt.Errorf("google_calendar.credentials_path is not set")
			}

			data, err := os.ReadFile(cfg.GoogleCalendar.CredentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", cfg.GoogleCalendar.CredentialsPath, err)
			}
			auth, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, auth.AuthCodeURL("state-token"))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := auth.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(cfg.GoogleCalendar.TokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s\n", cfg.GoogleCalendar.TokenPath)
			return nil
		},
	}
}
