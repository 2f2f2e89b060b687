package adapter

import (
	"context"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/entity"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/model"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
)

// HomeProps feeds the hustler home dashboard.
type HomeProps struct {
	User                model.User          `json:"user"`
	ActiveTask          *model.Task         `json:"activeTask"`
	AvailableTasksCount float64             `json:"availableTasksCount"`
	RecentEarnings      float64             `json:"recentEarnings"`
	WeeklyTaskCount     float64             `json:"weeklyTaskCount"`
	CurrentStreak       float64             `json:"currentStreak"`
	SystemStatus        *model.SystemStatus `json:"systemStatus"`
}

// HomeStub is returned with every home dashboard error.
func HomeStub() HomeProps {
	return HomeProps{}
}

// HomeDashboard loads GET /api/hustler/home.
func (a *Adapters) HomeDashboard(ctx context.Context) Result[HomeProps] {
	c := call{screen: "HomeScreen", adapter: "homeDashboard", endpoint: source.HomeEndpoint()}
	return run(ctx, a, c, a.src.FetchHome, HomeStub, projectHome)
}

func projectHome(raw any) (State, HomeProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", HomeProps{}, err
	}
	var props HomeProps
	if props.User, err = entity.ParseUser(p.Get("user")); err != nil {
		return "", HomeProps{}, err
	}
	if props.ActiveTask, err = entity.ParseNullableTask(p.Get("activeTask")); err != nil {
		return "", HomeProps{}, err
	}
	if props.AvailableTasksCount, err = p.Number("availableTasksCount"); err != nil {
		return "", HomeProps{}, err
	}
	if props.RecentEarnings, err = p.Number("recentEarnings"); err != nil {
		return "", HomeProps{}, err
	}
	if props.WeeklyTaskCount, err = p.Number("weeklyTaskCount"); err != nil {
		return "", HomeProps{}, err
	}
	if props.CurrentStreak, err = p.Number("currentStreak"); err != nil {
		return "", HomeProps{}, err
	}
	props.SystemStatus = entity.ParseSystemStatus(p.Get("systemStatus"))
	return StateSuccess, props, nil
}
