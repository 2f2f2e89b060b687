package entity

import (
	"strconv"
	"strings"

	"github.com/Sebdysart/HUSTLEXPFINAL1-sub003/pkg/guard"
)

// object returns raw as a JSON object or a ValidationError naming field.
func object(raw any, field string) (map[string]any, error) {
	obj, ok := guard.AsObject(raw)
	if !ok {
		if raw == nil {
			return nil, invalid(field, "missing or null")
		}
		return nil, invalid(field, "not an object")
	}
	return obj, nil
}

func requiredString(obj map[string]any, key string) (string, error) {
	v := obj[key]
	if !guard.IsNonEmptyString(v) {
		return "", invalid(key, "must be a non-empty string")
	}
	return v.(string), nil
}

// anyString accepts the empty string but still requires the key.
func anyString(obj map[string]any, key string) (string, error) {
	s, ok := guard.String(obj[key])
	if !ok {
		return "", invalid(key, "must be a string")
	}
	return s, nil
}

func requiredNumber(obj map[string]any, key string) (float64, error) {
	f, ok := guard.Number(obj[key])
	if !ok {
		return 0, invalid(key, "must be a finite number")
	}
	return f, nil
}

// optionalString returns def when key is absent or null.
func optionalString(obj map[string]any, key, def string) (string, error) {
	v, present := obj[key]
	if !present || v == nil {
		return def, nil
	}
	s, ok := guard.String(v)
	if !ok {
		return "", invalid(key, "must be a string")
	}
	return s, nil
}

func optionalNumber(obj map[string]any, key string, def float64) (float64, error) {
	v, present := obj[key]
	if !present || v == nil {
		return def, nil
	}
	f, ok := guard.Number(v)
	if !ok {
		return 0, invalid(key, "must be a finite number")
	}
	return f, nil
}

func nullableString(obj map[string]any, key string) (*string, error) {
	s, ok := guard.NullableString(obj[key])
	if !ok {
		return nil, invalid(key, "must be a string or null")
	}
	return s, nil
}

func nullableNumber(obj map[string]any, key string) (*float64, error) {
	f, ok := guard.NullableNumber(obj[key])
	if !ok {
		return nil, invalid(key, "must be a number or null")
	}
	return f, nil
}

func enum(obj map[string]any, key string, allowed ...string) (string, error) {
	v := obj[key]
	if !guard.IsOneOf(v, allowed...) {
		return "", invalid(key, "must be one of "+strings.Join(allowed, ", "))
	}
	return v.(string), nil
}

// parseObject checks that raw is an object and runs fn over it, prefixing
// any field error with name.
func parseObject[T any](raw any, name string, fn func(obj map[string]any) (T, error)) (T, error) {
	var zero T
	obj, err := object(raw, name)
	if err != nil {
		return zero, err
	}
	v, err := fn(obj)
	if err != nil {
		return zero, nested(name, err)
	}
	return v, nil
}

func indexField(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
