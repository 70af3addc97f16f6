// Package cli wires cobra commands over the tracklog services.
package cli

import (
	"context"
	"time"

	"github.com/akarpin/tracklog/internal/audit"
	"github.com/akarpin/tracklog/internal/auth"
	"github.com/akarpin/tracklog/internal/config"
	"github.com/akarpin/tracklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Time     service.TimeTrackingService
	Issues   service.IssueService
	Projects service.ProjectService
	Articles service.ArticleService
	Users    service.UserService

	Auth   *auth.Store
	Config config.Config

	// Audit is nil when auditing is disabled.
	Audit *audit.Log

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts and TUIs only run when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tracklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracklog",
		Short:         "Command-line client for the issue tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newIssueCmd(app),
		newProjectCmd(app),
		newArticleCmd(app),
		newUserCmd(app),
		newTimeCmd(app),
		newAuditCmd(app),
	)

	return root
}

// record appends an audit entry when auditing is enabled.
func (app *App) record(command string, start time.Time, status, message string) {
	if app.Audit == nil {
		return
	}
	_ = app.Audit.Record(context.Background(), audit.Entry{
		Command:    command,
		Status:     status,
		Message:    message,
		DurationMs: time.Since(start).Milliseconds(),
	})
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
