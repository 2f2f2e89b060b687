package entity

// Payload is a validated top-level response object. Its accessors apply the
// same rules as the entity parsers.
type Payload map[string]any

// ParsePayload requires the response body to be a JSON object.
func ParsePayload(raw any) (Payload, error) {
	obj, err := object(raw, "payload")
	if err != nil {
		return nil, err
	}
	return Payload(obj), nil
}

// Get returns the raw value stored under key.
func (p Payload) Get(key string) any { return p[key] }

// Number returns a required finite number.
func (p Payload) Number(key string) (float64, error) { return requiredNumber(p, key) }

// OptionalNumber returns def when key is absent or null.
func (p Payload) OptionalNumber(key string, def float64) (float64, error) {
	return optionalNumber(p, key, def)
}

// String returns a required non-empty string.
func (p Payload) String(key string) (string, error) { return requiredString(p, key) }

// NullableString returns nil for an absent or null key.
func (p Payload) NullableString(key string) (*string, error) { return nullableString(p, key) }

// Enum returns a required string that exactly matches one of allowed.
func (p Payload) Enum(key string, allowed ...string) (string, error) {
	return enum(p, key, allowed...)
}
