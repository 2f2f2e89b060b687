package entity

import (
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/guard"
	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/model"
)

// ParseUser validates the hustler summary. All three fields are required.
func ParseUser(raw any) (model.User, error) {
	return parseObject(raw, "user", func(obj map[string]any) (model.User, error) {
		var (
			u   model.User
			err error
		)
		if u.XP, err = requiredNumber(obj, "xp"); err != nil {
			return u, err
		}
		if u.Level, err = requiredNumber(obj, "level"); err != nil {
			return u, err
		}
		if u.TrustTier, err = requiredNumber(obj, "trustTier"); err != nil {
			return u, err
		}
		return u, nil
	})
}

// ParseDestination validates where the hustler is heading.
func ParseDestination(raw any) (model.Destination, error) {
	return parseObject(raw, "destination", func(obj map[string]any) (model.Destination, error) {
		var (
			d   model.Destination
			err error
		)
		if d.Lat, err = requiredNumber(obj, "lat"); err != nil {
			return d, err
		}
		if d.Lng, err = requiredNumber(obj, "lng"); err != nil {
			return d, err
		}
		if d.Address, err = anyString(obj, "address"); err != nil {
			return d, err
		}
		return d, nil
	})
}

// ParseEarnings validates a payout. A missing xpAwarded is reported as nil.
func ParseEarnings(raw any) (model.Earnings, error) {
	return parseObject(raw, "earnings", func(obj map[string]any) (model.Earnings, error) {
		var (
			e   model.Earnings
			err error
		)
		if e.Amount, err = requiredNumber(obj, "amount"); err != nil {
			return e, err
		}
		if e.XPAwarded, err = nullableNumber(obj, "xpAwarded"); err != nil {
			return e, err
		}
		return e, nil
	})
}

// ParseSubmission validates the review state of completed work. A null or
// absent submission is pending with no rejection reason.
func ParseSubmission(raw any) (model.Submission, error) {
	if raw == nil {
		return model.Submission{Status: model.SubmissionPending}, nil
	}
	return parseObject(raw, "submission", func(obj map[string]any) (model.Submission, error) {
		s := model.Submission{Status: model.SubmissionPending}
		var err error
		if v, present := obj["status"]; present && v != nil {
			if s.Status, err = enum(obj, "status", model.SubmissionStatuses...); err != nil {
				return s, err
			}
		}
		if s.RejectionReason, err = nullableString(obj, "rejectionReason"); err != nil {
			return s, err
		}
		return s, nil
	})
}

// ParseSystemStatus copies a status banner without failing: anything that
// is not an object yields nil.
func ParseSystemStatus(raw any) *model.SystemStatus {
	obj, ok := guard.AsObject(raw)
	if !ok {
		return nil
	}
	s := &model.SystemStatus{}
	s.Tone, _ = guard.String(obj["tone"])
	s.Message, _ = guard.String(obj["message"])
	return s
}

// ParseXPHistory validates a coerced history array.
func ParseXPHistory(items []any) ([]model.XPEntry, error) {
	entries := make([]model.XPEntry, 0, len(items))
	for i, item := range items {
		e, err := parseObject(item, indexField("history", i), func(obj map[string]any) (model.XPEntry, error) {
			var (
				e   model.XPEntry
				err error
			)
			if e.ID, err = requiredString(obj, "id"); err != nil {
				return e, err
			}
			if e.Amount, err = requiredNumber(obj, "amount"); err != nil {
				return e, err
			}
			if e.Reason, err = optionalString(obj, "reason", ""); err != nil {
				return e, err
			}
			if e.CreatedAt, err = optionalString(obj, "createdAt", ""); err != nil {
				return e, err
			}
			return e, nil
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseXPBreakdown validates a coerced breakdown array.
func ParseXPBreakdown(items []any) ([]model.XPBreakdown, error) {
	out := make([]model.XPBreakdown, 0, len(items))
	for i, item := range items {
		b, err := parseObject(item, indexField("breakdown", i), func(obj map[string]any) (model.XPBreakdown, error) {
			var (
				b   model.XPBreakdown
				err error
			)
			if b.Category, err = requiredString(obj, "category"); err != nil {
				return b, err
			}
			if b.XP, err = requiredNumber(obj, "xp"); err != nil {
				return b, err
			}
			return b, nil
		})
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
