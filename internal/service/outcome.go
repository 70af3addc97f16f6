package service

import (
	"errors"

	"github.com/akarpin/tracklog/internal/api"
)

// Status tags an operation outcome. Every public operation returns one of
// these instead of propagating errors, so the CLI decides the user-facing
// text and exit code in one place.
type Status string

const (
	StatusSuccess         Status = "success"
	StatusInvalid         Status = "invalid"
	StatusUnauthenticated Status = "unauthenticated"
	StatusFailed          Status = "failed"
)

// Outcome is the tagged success/error result shared by all time-tracking
// operations.
type Outcome struct {
	Status  Status
	Message string
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

func success() Outcome {
	return Outcome{Status: StatusSuccess}
}

func invalid(msg string) Outcome {
	return Outcome{Status: StatusInvalid, Message: msg}
}

func unauthenticated() Outcome {
	return Outcome{Status: StatusUnauthenticated, Message: "not authenticated: run 'tracklog login' first"}
}

// outcomeFromErr maps a collaborator error to an outcome. A token the
// tracker rejects mid-call surfaces as unauthenticated; everything else is
// an operation failure carrying the collaborator's error text.
func outcomeFromErr(err error) Outcome {
	if errors.Is(err, api.ErrUnauthorized) {
		return Outcome{Status: StatusUnauthenticated, Message: err.Error()}
	}
	return Outcome{Status: StatusFailed, Message: err.Error()}
}
