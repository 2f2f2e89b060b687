// Package entity validates raw API payloads and projects them into the
// value types of package model. Parsers either accept every required leaf of
// an object or reject the whole object; nothing is partially filled.
package entity

import (
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/model"
)

// ParseTask validates a task object. statuses narrows the accepted status
// values; when empty every model.TaskStatuses value is accepted.
func ParseTask(raw any, statuses ...string) (model.Task, error) {
	return parseTaskAs(raw, "task", statuses)
}

// ParseNullableTask returns nil for a null or absent task.
func ParseNullableTask(raw any, statuses ...string) (*model.Task, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := ParseTask(raw, statuses...)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseTasks validates every element of an already coerced array. One bad
// element rejects the whole list.
func ParseTasks(items []any, statuses ...string) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(items))
	for i, item := range items {
		t, err := parseTaskAs(item, indexField("tasks", i), statuses)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func parseTaskAs(raw any, name string, statuses []string) (model.Task, error) {
	if len(statuses) == 0 {
		statuses = model.TaskStatuses
	}
	return parseObject(raw, name, func(obj map[string]any) (model.Task, error) {
		var (
			t   model.Task
			err error
		)
		if t.ID, err = requiredString(obj, "id"); err != nil {
			return t, err
		}
		if t.Title, err = requiredString(obj, "title"); err != nil {
			return t, err
		}
		if t.Status, err = enum(obj, "status", statuses...); err != nil {
			return t, err
		}
		if t.PriceAmount, err = requiredNumber(obj, "priceAmount"); err != nil {
			return t, err
		}
		if t.PriceAmount < 0 {
			return t, invalid("priceAmount", "must not be negative")
		}
		if t.Description, err = optionalString(obj, "description", ""); err != nil {
			return t, err
		}
		if t.PriceCurrency, err = optionalString(obj, "priceCurrency", model.DefaultCurrency); err != nil {
			return t, err
		}
		if t.PriceCurrency == "" {
			t.PriceCurrency = model.DefaultCurrency
		}
		if t.EstimatedDuration, err = optionalNumber(obj, "estimatedDuration", 0); err != nil {
			return t, err
		}
		if t.RequiredTrustTier, err = optionalNumber(obj, "requiredTrustTier", 0); err != nil {
			return t, err
		}
		if t.Category, err = optionalString(obj, "category", ""); err != nil {
			return t, err
		}
		if t.CreatedAt, err = optionalString(obj, "createdAt", ""); err != nil {
			return t, err
		}
		if t.ExpiresAt, err = nullableString(obj, "expiresAt"); err != nil {
			return t, err
		}
		if raw := obj["location"]; raw != nil {
			if t.Location, err = parseLocation(raw); err != nil {
				return t, err
			}
		}
		return t, nil
	})
}

func parseLocation(raw any) (model.Location, error) {
	return parseObject(raw, "location", func(obj map[string]any) (model.Location, error) {
		var (
			l   model.Location
			err error
		)
		if l.Address, err = anyString(obj, "address"); err != nil {
			return l, err
		}
		if l.Lat, err = requiredNumber(obj, "lat"); err != nil {
			return l, err
		}
		if l.Lng, err = requiredNumber(obj, "lng"); err != nil {
			return l, err
		}
		return l, nil
	})
}

// ParsePoster validates the poster of a task.
func ParsePoster(raw any) (model.Poster, error) {
	return parseObject(raw, "poster", func(obj map[string]any) (model.Poster, error) {
		var (
			p   model.Poster
			err error
		)
		if p.Name, err = requiredString(obj, "name"); err != nil {
			return p, err
		}
		if p.Rating, err = requiredNumber(obj, "rating"); err != nil {
			return p, err
		}
		if p.TaskCount, err = requiredNumber(obj, "taskCount"); err != nil {
			return p, err
		}
		return p, nil
	})
}

// ParseEligibility validates the eligibility block of a task detail.
func ParseEligibility(raw any) (model.Eligibility, error) {
	return parseObject(raw, "eligibility", func(obj map[string]any) (model.Eligibility, error) {
		var (
			e   model.Eligibility
			err error
		)
		if e.Status, err = enum(obj, "status", model.EligibilityStatuses...); err != nil {
			return e, err
		}
		if e.Reason, err = nullableString(obj, "reason"); err != nil {
			return e, err
		}
		return e, nil
	})
}
