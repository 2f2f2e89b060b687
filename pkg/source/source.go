// Package source decides where screen payloads come from: the live API or
// the embedded fixture set. The choice is made once, when the DataSource is
// built, and never changes afterwards.
package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Mode selects the payload source.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

func (m Mode) IsLive() bool { return m == ModeLive }
func (m Mode) IsMock() bool { return m == ModeMock }

// ParseMode accepts "live" or "mock".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLive, ModeMock:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown source mode %q (want %q or %q)", s, ModeLive, ModeMock)
	}
}

// Endpoint is a logical API call.
type Endpoint struct {
	Method string
	Path   string
}

func (e Endpoint) String() string { return e.Method + " " + e.Path }

// Endpoints used by the screens.
func HomeEndpoint() Endpoint { return Endpoint{http.MethodGet, "/api/hustler/home"} }
func FeedEndpoint() Endpoint { return Endpoint{http.MethodGet, "/api/tasks"} }
func XPEndpoint() Endpoint { return Endpoint{http.MethodGet, "/api/xp"} }

func TaskEndpoint(taskID string) Endpoint {
	return Endpoint{http.MethodGet, "/api/tasks/" + url.PathEscape(taskID)}
}

func ProgressEndpoint(taskID string) Endpoint {
	return Endpoint{http.MethodGet, "/api/tasks/" + url.PathEscape(taskID) + "/progress"}
}

func CompletionEndpoint(taskID string) Endpoint {
	return Endpoint{http.MethodGet, "/api/tasks/" + url.PathEscape(taskID) + "/completion"}
}

// DataSource returns the raw, decoded payload for each screen. A non-nil
// error is a fetch failure (usually a *transport.Error); payload shape is
// not checked here.
type DataSource interface {
	Mode() Mode
	FetchHome(ctx context.Context) (any, error)
	FetchTasks(ctx context.Context) (any, error)
	FetchTask(ctx context.Context, taskID string) (any, error)
	FetchTaskProgress(ctx context.Context, taskID string) (any, error)
	FetchTaskCompletion(ctx context.Context, taskID string) (any, error)
	FetchXP(ctx context.Context) (any, error)
}

// Select returns mock when mode is mock and live otherwise.
func Select(mode Mode, live, mock DataSource) DataSource {
	if mode.IsMock() {
		return mock
	}
	return live
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
