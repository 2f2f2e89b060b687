package source

import (
	"context"
	"errors"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/fixture"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/transport"
)

// Fixture serves payloads from a fixture set without touching the network.
type Fixture struct {
	set *fixture.Set
}

// NewFixture returns a mock source over set, or over the embedded fixtures
// when set is nil.
func NewFixture(set *fixture.Set) *Fixture {
	if set == nil {
		set = fixture.Default()
	}
	return &Fixture{set: set}
}

func (f *Fixture) Mode() Mode { return ModeMock }

func (f *Fixture) read(path ...string) (any, error) {
	v, err := f.set.Read(path...)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, fixture.ErrNotFound) {
		return nil, &transport.Error{Code: transport.CodeNotFound, Message: err.Error()}
	}
	return nil, &transport.Error{Code: transport.CodeInvalidJSON, Message: err.Error()}
}

func (f *Fixture) FetchHome(ctx context.Context) (any, error) {
	return f.read("home")
}

func (f *Fixture) FetchTasks(ctx context.Context) (any, error) {
	return f.read("tasks")
}

func (f *Fixture) FetchTask(ctx context.Context, taskID string) (any, error) {
	return f.read("task", taskID, "detail")
}

func (f *Fixture) FetchTaskProgress(ctx context.Context, taskID string) (any, error) {
	return f.read("task", taskID, "progress")
}

func (f *Fixture) FetchTaskCompletion(ctx context.Context, taskID string) (any, error) {
	return f.read("task", taskID, "completion")
}

func (f *Fixture) FetchXP(ctx context.Context) (any, error) {
	return f.read("xp")
}
