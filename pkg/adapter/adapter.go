// Package adapter turns raw screen payloads into results that rendering code
// can switch on. Each adapter call performs one fetch, validates the payload
// synchronously and returns a Result whose Props are always fully populated:
// on error they are the adapter's fixed stub.
package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/logging"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/transport"
)

// State is the outcome of one adapter call.
type State string

const (
	StateSuccess State = "success"
	StateEmpty   State = "empty"
	StateError   State = "error"
	StateBlocked State = "blocked"
)

// Result is what an adapter hands to the screen. Err carries the cause of an
// error state for diagnostics and is never rendered.
type Result[P any] struct {
	State State `json:"state"`
	Props P     `json:"props"`
	Err   error `json:"-"`
}

// ResponseError is a payload that arrived but failed validation.
type ResponseError struct {
	Screen   string
	Adapter  string
	Endpoint source.Endpoint
	TaskID   string
	Err      error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Adapter, e.Endpoint, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// Adapters binds the screen adapters to one data source.
type Adapters struct {
	src source.DataSource
	log logging.ErrorLogger
}

// New returns adapters reading from src. Fetch failures are reported to log;
// a nil log discards them.
func New(src source.DataSource, log logging.ErrorLogger) *Adapters {
	if log == nil {
		log = logging.Nop()
	}
	return &Adapters{src: src, log: log}
}

// Mode reports which source the adapters read from.
func (a *Adapters) Mode() source.Mode { return a.src.Mode() }

// call describes one adapter invocation.
type call struct {
	screen   string
	adapter  string
	endpoint source.Endpoint
	taskID   string
}

func (c call) meta() map[string]any {
	m := map[string]any{"endpoint": c.endpoint.Path}
	if c.taskID != "" {
		m["taskId"] = c.taskID
	}
	return m
}

// run is the shared fetch, validate, project pass.
func run[P any](
	ctx context.Context,
	a *Adapters,
	c call,
	fetch func(context.Context) (any, error),
	stub func() P,
	project func(raw any) (State, P, error),
) Result[P] {
	raw, err := fetch(ctx)
	if err != nil {
		terr := transport.AsError(err)
		meta := c.meta()
		if terr.StatusCode != 0 {
			meta["statusCode"] = terr.StatusCode
		}
		if terr.RequestID != "" {
			meta["requestId"] = terr.RequestID
		}
		a.log.LogError(logging.DomainNetwork, string(terr.Code), terr.Message, meta)
		return Result[P]{State: StateError, Props: stub(), Err: terr}
	}

	state, props, err := project(raw)
	if err != nil {
		return Result[P]{
			State: StateError,
			Props: stub(),
			Err: &ResponseError{
				Screen:   c.screen,
				Adapter:  c.adapter,
				Endpoint: c.endpoint,
				TaskID:   c.taskID,
				Err:      err,
			},
		}
	}
	return Result[P]{State: state, Props: props}
}

// Observe reports a validation failure carried by r as INVALID_RESPONSE. It
// is called by the code that renders r, once per result; fetch failures were
// already reported by the adapter and are ignored here.
func Observe[P any](log logging.ErrorLogger, r Result[P]) Result[P] {
	var rerr *ResponseError
	if r.State != StateError || !errors.As(r.Err, &rerr) {
		return r
	}
	meta := map[string]any{
		"screen":   rerr.Screen,
		"adapter":  rerr.Adapter,
		"endpoint": rerr.Endpoint.Path,
	}
	if rerr.TaskID != "" {
		meta["taskId"] = rerr.TaskID
	}
	log.LogError(logging.DomainAdapter, string(transport.CodeInvalidResponse), rerr.Err.Error(), meta)
	return r
}
