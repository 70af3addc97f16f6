package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akarpin/tracklog/internal/api"
	"github.com/akarpin/tracklog/internal/auth"
	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against a tracker instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			if baseURL == "" {
				baseURL = app.Config.BaseURL
			}
			if token == "" {
				token = app.Config.Token
			}

			if (baseURL == "" || token == "") && app.interactive() {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Tracker URL").
							Placeholder("https://tracker.example.com").
							Value(&baseURL).
							Validate(validateRequired("URL")),
						huh.NewInput().
							Title("Permanent token").
							EchoMode(huh.EchoModePassword).
							Value(&token).
							Validate(validateRequired("token")),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if baseURL == "" || token == "" {
				return fmt.Errorf("both --url and --token are required")
			}
			baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

			client := api.NewClient(baseURL, token, app.Config.TimeoutMs)
			me, err := client.Me(context.Background())
			if err != nil {
				app.record("login", start, "failed", err.Error())
				return fmt.Errorf("verifying credentials: %w", err)
			}

			sess := &auth.Session{
				BaseURL:  baseURL,
				Token:    token,
				Login:    me.Login,
				FullName: me.FullName,
			}
			if err := app.Auth.Save(sess); err != nil {
				app.record("login", start, "failed", err.Error())
				return err
			}

			app.record("login", start, "success", "")
			fmt.Printf("Logged in as %s (%s)\n", formatter.Bold(me.DisplayName()), baseURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Tracker base URL")
	cmd.Flags().StringVar(&token, "token", "", "Permanent token")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Clear(); err != nil {
				return err
			}
			app.record("logout", time.Now(), "success", "")
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Auth.Current()
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s) @ %s\n",
				formatter.Bold(sess.DisplayName()),
				sess.Login,
				formatter.Dim(sess.BaseURL),
			)
			return nil
		},
	}
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}
