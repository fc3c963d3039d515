package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoercePriority(t *testing.T) {
	tests := map[string]int{
		``:        3,
		`null`:    3,
		`4`:       4,
		`"2"`:     2,
		`" 5 "`:   5,
		`2.6`:     3,
		`9`:       5,
		`0`:       1,
		`-7`:      1,
		`"high"`:  3,
		`true`:    3,
		`{"a":1}`: 3,
		`1e10`:    5,
		`1e19`:    5,
		`1e300`:   5,
		`"1e20"`:  5,
		`-1e19`:   1,
		`4.4`:     4,
	}
	for raw, want := range tests {
		assert.Equal(t, want, coercePriority(json.RawMessage(raw)), "input %q", raw)
	}
}

func TestCoerceContactAttempts(t *testing.T) {
	tests := map[string]int{
		``:      0,
		`2`:     2,
		`"3"`:   3,
		`-1`:    0,
		`"abc"`: 0,
		`1.9`:   1,
	}
	for raw, want := range tests {
		assert.Equal(t, want, coerceContactAttempts(json.RawMessage(raw)), "input %q", raw)
	}
}

func TestCoerceTime(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		lagos = time.FixedZone("WAT", 3600)
	}

	got, ok := coerceTime(json.RawMessage(`"2024-01-02T03:04:05Z"`), lagos)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	got, ok = coerceTime(json.RawMessage(`"2024-01-02"`), lagos)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, lagos)))

	got, ok = coerceTime(json.RawMessage(`1704164645000`), time.UTC)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	got, ok = coerceTime(json.RawMessage(`"1704164645000"`), time.UTC)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	for _, raw := range []string{``, `null`, `"yesterday"`, `true`, `{}`, `1e19`, `-1e300`, `1e300`, `"9223372036854775807"`} {
		_, ok := coerceTime(json.RawMessage(raw), time.UTC)
		assert.False(t, ok, "input %q", raw)
	}
}

func TestCoerceBadges(t *testing.T) {
	assert.Equal(t, []string{"new"}, coerceBadges(nil))
	assert.Equal(t, []string{"new"}, coerceBadges(json.RawMessage(`[]`)))
	assert.Equal(t, []string{"new"}, coerceBadges(json.RawMessage(`["", "  "]`)))
	assert.Equal(t, []string{"vip"}, coerceBadges(json.RawMessage(`["vip", 3, null]`)))
	assert.Equal(t, []string{"vip", "hot"}, coerceBadges(json.RawMessage(`"vip, hot,"`)))
	assert.Equal(t, []string{"new"}, coerceBadges(json.RawMessage(`42`)))
}

func TestCoerceText(t *testing.T) {
	blank := "  "
	site := " https://example.com/landing "
	assert.Equal(t, "N/A", coerceText(nil))
	assert.Equal(t, "N/A", coerceText(&blank))
	assert.Equal(t, "https://example.com/landing", coerceText(&site))
}
