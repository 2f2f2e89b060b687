package guard

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFiniteNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"float", 12.5, true},
		{"zero", 0.0, true},
		{"negative", -3.0, true},
		{"int", 7, true},
		{"int64", int64(7), true},
		{"uint8", uint8(1), true},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"bool true", true, false},
		{"bool false", false, false},
		{"numeric string", "42", false},
		{"nil", nil, false},
		{"object", map[string]any{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsFiniteNumber(tc.in))
		})
	}
}

func TestIsNonEmptyString(t *testing.T) {
	assert.True(t, IsNonEmptyString("a"))
	assert.True(t, IsNonEmptyString(" "))
	assert.False(t, IsNonEmptyString(""))
	assert.False(t, IsNonEmptyString(nil))
	assert.False(t, IsNonEmptyString(1.0))
	assert.False(t, IsNonEmptyString([]any{"a"}))
}

func TestNullableGuards(t *testing.T) {
	assert.True(t, IsNullableString(nil))
	assert.True(t, IsNullableString(""))
	assert.False(t, IsNullableString(3.0))

	assert.True(t, IsNullableNumber(nil))
	assert.True(t, IsNullableNumber(2.0))
	assert.False(t, IsNullableNumber("2"))
	assert.False(t, IsNullableNumber(false))

	s, ok := NullableString(nil)
	require.True(t, ok)
	assert.Nil(t, s)

	s, ok = NullableString("why")
	require.True(t, ok)
	require.NotNil(t, s)
	assert.Equal(t, "why", *s)

	_, ok = NullableString(1.0)
	assert.False(t, ok)

	n, ok := NullableNumber(nil)
	require.True(t, ok)
	assert.Nil(t, n)

	n, ok = NullableNumber(25.0)
	require.True(t, ok)
	require.NotNil(t, n)
	assert.Equal(t, 25.0, *n)

	_, ok = NullableNumber(true)
	assert.False(t, ok)
}

func TestIsOneOf(t *testing.T) {
	set := []string{"pending", "submitted", "approved", "rejected"}

	assert.True(t, IsOneOf("approved", set...))
	assert.False(t, IsOneOf("Approved", set...))
	assert.False(t, IsOneOf("APPROVED", set...))
	assert.False(t, IsOneOf("", set...))
	assert.False(t, IsOneOf(nil, set...))
	assert.False(t, IsOneOf(1.0, set...))
	assert.False(t, IsOneOf("approved"))
}

func TestToArrayOrEmpty(t *testing.T) {
	arr := []any{1.0, "two"}
	assert.Equal(t, arr, ToArrayOrEmpty(arr))

	for _, in := range []any{nil, "not-array", 3.0, map[string]any{"a": 1.0}, true} {
		out := ToArrayOrEmpty(in)
		require.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestAsObject(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &decoded))

	obj, ok := AsObject(decoded)
	require.True(t, ok)
	assert.Equal(t, 1.0, obj["a"])

	var nilMap map[string]any
	_, ok = AsObject(nilMap)
	assert.False(t, ok)

	_, ok = AsObject(nil)
	assert.False(t, ok)

	_, ok = AsObject([]any{})
	assert.False(t, ok)
}
