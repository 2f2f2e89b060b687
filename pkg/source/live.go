package source

import (
	"context"
	"time"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/transport"
)

// Live fetches payloads from the HustleXP API.
type Live struct {
	client  *transport.Client
	baseURL string
	timeout time.Duration
}

// NewLive returns a live source. A zero timeout uses transport.DefaultTimeout.
func NewLive(client *transport.Client, baseURL string, timeout time.Duration) *Live {
	return &Live{client: client, baseURL: baseURL, timeout: timeout}
}

func (l *Live) Mode() Mode { return ModeLive }

func (l *Live) fetch(ctx context.Context, ep Endpoint) (any, error) {
	return l.client.Request(ctx, joinURL(l.baseURL, ep.Path), transport.Options{
		Method:  ep.Method,
		Timeout: l.timeout,
	})
}

func (l *Live) FetchHome(ctx context.Context) (any, error) {
	return l.fetch(ctx, HomeEndpoint())
}

func (l *Live) FetchTasks(ctx context.Context) (any, error) {
	return l.fetch(ctx, FeedEndpoint())
}

func (l *Live) FetchTask(ctx context.Context, taskID string) (any, error) {
	return l.fetch(ctx, TaskEndpoint(taskID))
}

func (l *Live) FetchTaskProgress(ctx context.Context, taskID string) (any, error) {
	return l.fetch(ctx, ProgressEndpoint(taskID))
}

func (l *Live) FetchTaskCompletion(ctx context.Context, taskID string) (any, error) {
	return l.fetch(ctx, CompletionEndpoint(taskID))
}

func (l *Live) FetchXP(ctx context.Context) (any, error) {
	return l.fetch(ctx, XPEndpoint())
}
