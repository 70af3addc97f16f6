package main

import (
	"fmt"
	"os"

	"github.com/akarpin/tracklog/internal/api"
	"github.com/akarpin/tracklog/internal/audit"
	"github.com/akarpin/tracklog/internal/auth"
	"github.com/akarpin/tracklog/internal/cli"
	"github.com/akarpin/tracklog/internal/config"
	"github.com/akarpin/tracklog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envCreds prefers environment-supplied credentials over the stored
// session, so CI can run without a credentials file.
type envCreds struct {
	cfg   config.Config
	store *auth.Store
}

func (c *envCreds) Current() (*auth.Session, error) {
	if c.cfg.BaseURL != "" && c.cfg.Token != "" {
		return &auth.Session{BaseURL: c.cfg.BaseURL, Token: c.cfg.Token}, nil
	}
	return c.store.Current()
}

func run() error {
	cfg := config.LoadConfig()
	if cfg.ConfigDir == "" {
		return fmt.Errorf("cannot determine config directory; set TRACKLOG_CONFIG_DIR")
	}
	if cfg.NoColor {
		// lipgloss honors the NO_COLOR convention.
		os.Setenv("NO_COLOR", "1")
	}

	store := auth.NewStore(cfg.CredentialsPath())
	creds := &envCreds{cfg: cfg, store: store}

	// The client is built from whatever session exists; commands that
	// need one fail with a "not authenticated" outcome before any call.
	baseURL, token := "", ""
	if sess, err := creds.Current(); err == nil {
		baseURL, token = sess.BaseURL, sess.Token
	}
	client := api.NewClient(baseURL, token, cfg.TimeoutMs)

	var auditLog *audit.Log
	if cfg.AuditEnabled {
		var err error
		auditLog, err = audit.Open(cfg.AuditDBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit log unavailable: %v\n", err)
			auditLog = nil
		} else {
			defer auditLog.Close()
		}
	}

	app := &cli.App{
		Time:     service.NewTimeTrackingService(client, creds),
		Issues:   client,
		Projects: client,
		Articles: client,
		Users:    client,
		Auth:     store,
		Config:   cfg,
		Audit:    auditLog,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
