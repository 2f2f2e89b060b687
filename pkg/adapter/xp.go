package adapter

import (
	"context"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/entity"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/guard"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/model"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/source"
)

// XPProps feeds the XP summary screen.
type XPProps struct {
	TotalXP       float64             `json:"totalXP"`
	Level         float64             `json:"level"`
	XPToNextLevel float64             `json:"xpToNextLevel"`
	XPProgress    float64             `json:"xpProgress"`
	History       []model.XPEntry     `json:"history"`
	Breakdown     []model.XPBreakdown `json:"breakdown"`
}

func XPStub() XPProps {
	return XPProps{History: []model.XPEntry{}, Breakdown: []model.XPBreakdown{}}
}

// XPSummary loads GET /api/xp. It is empty when both history and breakdown
// are empty after coercion.
func (a *Adapters) XPSummary(ctx context.Context) Result[XPProps] {
	c := call{screen: "XPScreen", adapter: "xpSummary", endpoint: source.XPEndpoint()}
	return run(ctx, a, c, a.src.FetchXP, XPStub, projectXP)
}

func projectXP(raw any) (State, XPProps, error) {
	p, err := entity.ParsePayload(raw)
	if err != nil {
		return "", XPProps{}, err
	}
	var props XPProps
	if props.TotalXP, err = p.Number("totalXP"); err != nil {
		return "", XPProps{}, err
	}
	if props.Level, err = p.Number("level"); err != nil {
		return "", XPProps{}, err
	}
	if props.XPToNextLevel, err = p.Number("xpToNextLevel"); err != nil {
		return "", XPProps{}, err
	}
	if props.XPProgress, err = p.OptionalNumber("xpProgress", 0); err != nil {
		return "", XPProps{}, err
	}
	if props.History, err = entity.ParseXPHistory(guard.ToArrayOrEmpty(p.Get("history"))); err != nil {
		return "", XPProps{}, err
	}
	if props.Breakdown, err = entity.ParseXPBreakdown(guard.ToArrayOrEmpty(p.Get("breakdown"))); err != nil {
		return "", XPProps{}, err
	}
	if len(props.History) == 0 && len(props.Breakdown) == 0 {
		return StateEmpty, props, nil
	}
	return StateSuccess, props, nil
}
