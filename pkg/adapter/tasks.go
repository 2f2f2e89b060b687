package adapter

import (
	"context"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/entity"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/guard"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/model"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
)

// stubTask is the task shown by every task screen stub.
func stubTask() model.Task {
	return model.Task{Status: model.StatusOpen, PriceCurrency: model.DefaultCurrency}
}

// FeedProps feeds the task feed.
type FeedProps struct {
	Tasks         []model.Task `json:"tasks"`
	LastUpdatedAt string       `json:"lastUpdatedAt"`
}

func FeedStub() FeedProps {
	return FeedProps{Tasks: []model.Task{}}
}

// TaskFeed loads GET /api/tasks. A feed with no tasks, including one whose
// tasks field is not an array, is empty rather than an error.
func (a *Adapters) TaskFeed(ctx context.Context) Result[FeedProps] {
	c := call{screen: "TaskFeedScreen", adapter: "taskFeed", endpoint: source.FeedEndpoint()}
	return run(ctx, a, c, a.src.FetchTasks, FeedStub, projectFeed)
}

func projectFeed(raw any) (State, FeedProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", FeedProps{}, err
	}
	var props FeedProps
	if props.LastUpdatedAt, err = p.String("lastUpdatedAt"); err != nil {
		return "", FeedProps{}, err
	}
	if props.Tasks, err = entity.ParseTasks(guard.ToArrayOrEmpty(p.Get("tasks")), model.StatusOpen); err != nil {
		return "", FeedProps{}, err
	}
	if len(props.Tasks) == 0 {
		return StateEmpty, props, nil
	}
	return StateSuccess, props, nil
}

// TaskDetailProps feeds the task detail screen.
type TaskDetailProps struct {
	Task              model.Task   `json:"task"`
	Poster            model.Poster `json:"poster"`
	EligibilityStatus string       `json:"eligibilityStatus"`
	EligibilityReason *string      `json:"eligibilityReason"`
}

func TaskDetailStub() TaskDetailProps {
	return TaskDetailProps{Task: stubTask(), EligibilityStatus: model.EligibilityIneligible}
}

// TaskDetail loads GET /api/tasks/:taskId. An ineligible hustler gets a
// blocked result with full props.
func (a *Adapters) TaskDetail(ctx context.Context, taskID string) Result[TaskDetailProps] {
	c := call{screen: "TaskDetailScreen", adapter: "taskDetail", endpoint: source.TaskEndpoint(taskID), taskID: taskID}
	fetch := func(ctx context.Context) (any, error) { return a.src.FetchTask(ctx, taskID) }
	return run(ctx, a, c, fetch, TaskDetailStub, projectTaskDetail)
}

func projectTaskDetail(raw any) (State, TaskDetailProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", TaskDetailProps{}, err
	}
	var props TaskDetailProps
	if props.Task, err = entity.ParseTask(p.Get("task")); err != nil {
		return "", TaskDetailProps{}, err
	}
	if props.Poster, err = entity.ParsePoster(p.Get("poster")); err != nil {
		return "", TaskDetailProps{}, err
	}
	eligibility, err := entity.ParseEligibility(p.Get("eligibility"))
	if err != nil {
		return "", TaskDetailProps{}, err
	}
	props.EligibilityStatus = eligibility.Status
	props.EligibilityReason = eligibility.Reason
	if eligibility.Status == model.EligibilityIneligible {
		return StateBlocked, props, nil
	}
	return StateSuccess, props, nil
}

// TaskProgressProps feeds the in-progress screen.
type TaskProgressProps struct {
	Task          model.Task        `json:"task"`
	ProgressState string            `json:"progressState"`
	Destination   model.Destination `json:"destination"`
	StartedAt     *string           `json:"startedAt"`
}

func TaskProgressStub() TaskProgressProps {
	return TaskProgressProps{Task: stubTask(), ProgressState: model.ProgressWorking}
}

// TaskProgress loads GET /api/tasks/:taskId/progress.
func (a *Adapters) TaskProgress(ctx context.Context, taskID string) Result[TaskProgressProps] {
	c := call{screen: "TaskInProgressScreen", adapter: "taskProgress", endpoint: source.ProgressEndpoint(taskID), taskID: taskID}
	fetch := func(ctx context.Context) (any, error) { return a.src.FetchTaskProgress(ctx, taskID) }
	return run(ctx, a, c, fetch, TaskProgressStub, projectTaskProgress)
}

func projectTaskProgress(raw any) (State, TaskProgressProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", TaskProgressProps{}, err
	}
	var props TaskProgressProps
	if props.Task, err = entity.ParseTask(p.Get("task")); err != nil {
		return "", TaskProgressProps{}, err
	}
	if props.ProgressState, err = p.Enum("state", model.ProgressStates...); err != nil {
		return "", TaskProgressProps{}, err
	}
	if props.Destination, err = entity.ParseDestination(p.Get("destination")); err != nil {
		return "", TaskProgressProps{}, err
	}
	if props.StartedAt, err = p.NullableString("startedAt"); err != nil {
		return "", TaskProgressProps{}, err
	}
	return StateSuccess, props, nil
}

// TaskCompletionProps feeds the completion screen.
type TaskCompletionProps struct {
	Task             model.Task `json:"task"`
	EarningsAmount   float64    `json:"earningsAmount"`
	XPAwarded        *float64   `json:"xpAwarded"`
	SubmissionStatus string     `json:"submissionStatus"`
	RejectionReason  *string    `json:"rejectionReason"`
}

func TaskCompletionStub() TaskCompletionProps {
	return TaskCompletionProps{Task: stubTask(), SubmissionStatus: model.SubmissionPending}
}

// TaskCompletion loads GET /api/tasks/:taskId/completion. A missing
// submission is pending.
func (a *Adapters) TaskCompletion(ctx context.Context, taskID string) Result[TaskCompletionProps] {
	c := call{screen: "TaskCompletionScreen", adapter: "taskCompletion", endpoint: source.CompletionEndpoint(taskID), taskID: taskID}
	fetch := func(ctx context.Context) (any, error) { return a.src.FetchTaskCompletion(ctx, taskID) }
	return run(ctx, a, c, fetch, TaskCompletionStub, projectTaskCompletion)
}

func projectTaskCompletion(raw any) (State, TaskCompletionProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", TaskCompletionProps{}, err
	}
	var props TaskCompletionProps
	if props.Task, err = entity.ParseTask(p.Get("task")); err != nil {
		return "", TaskCompletionProps{}, err
	}
	earnings, err := entity.ParseEarnings(p.Get("earnings"))
	if err != nil {
		return "", TaskCompletionProps{}, err
	}
	submission, err := entity.ParseSubmission(p.Get("submission"))
	if err != nil {
		return "", TaskCompletionProps{}, err
	}
	props.EarningsAmount = earnings.Amount
	props.XPAwarded = earnings.XPAwarded
	props.SubmissionStatus = submission.Status
	props.RejectionReason = submission.RejectionReason
	return StateSuccess, props, nil
}
