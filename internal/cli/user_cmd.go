package cli

import (
	"context"
	"fmt"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect tracker accounts",
	}

	cmd.AddCommand(newUserListCmd(app), newUserShowCmd(app))
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []domain.User
			err := app.withSpinner("Fetching users...", func() error {
				var err error
				users, err = app.Users.ListUsers(context.Background(), query)
				return err
			})
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			headers := []string{"LOGIN", "NAME", "EMAIL", "STATUS"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				status := formatter.StyleGreen.Render("● Active")
				if u.Banned {
					status = formatter.StyleRed.Render("✖ Banned")
				}
				rows = append(rows, []string{
					formatter.Bold(u.Login),
					u.FullName,
					formatter.Dim(u.Email),
					status,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search string")
	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show LOGIN",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.GetUser(context.Background(), args[0])
			if err != nil {
				return err
			}

			detail := formatter.Bold(u.DisplayName()) + " " + formatter.Dim("("+u.Login+")") + "\n"
			if u.Email != "" {
				detail += formatter.Dim("Email: ") + u.Email + "\n"
			}
			if u.Banned {
				detail += formatter.StyleRed.Render("This account is banned.") + "\n"
			}
			fmt.Print(formatter.RenderBox("User", detail))
			fmt.Println()
			return nil
		},
	}
}
