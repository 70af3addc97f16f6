package cli

import (
	"errors"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/service"
)

// outcomeErr converts a non-success outcome into a command error. cobra
// prints it to stderr and exits non-zero.
func outcomeErr(o service.Outcome) error {
	if o.OK() {
		return nil
	}
	return errors.New(o.Message)
}

// withSpinner runs fn with an animated spinner when attached to a
// terminal.
func (app *App) withSpinner(message string, fn func() error) error {
	if !app.interactive() {
		return fn()
	}
	sp := formatter.NewSpinner(message)
	sp.Start()
	defer sp.Stop()
	return fn()
}
