package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/models"
)

// Optional submission fields come from HTML forms and ad-platform webhooks
// with loose typing. Each coercer below accepts what it can and otherwise
// returns the documented default; none of them fail.

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// rawNumber reads a JSON number or a numeric string
func rawNumber(raw json.RawMessage) (float64, bool) {
	if isAbsent(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coercePriority(raw json.RawMessage) int {
	f, ok := rawNumber(raw)
	if !ok {
		return models.DefaultPriority
	}
	// clamp before converting; float to int overflow is implementation-defined
	if f >= models.MaxPriority {
		return models.MaxPriority
	}
	if f <= models.MinPriority {
		return models.MinPriority
	}
	return int(math.Round(f))
}

func coerceContactAttempts(raw json.RawMessage) int {
	f, ok := rawNumber(raw)
	if !ok || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(f))
}

// Epoch milliseconds are accepted for years 1 through 9999
const (
	minEpochMillis = -62135596800000
	maxEpochMillis = 253402300799999
)

func epochMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || ms < minEpochMillis || ms > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// coerceTime accepts RFC 3339, a bare date in loc, or epoch milliseconds
func coerceTime(raw json.RawMessage, loc *time.Location) (time.Time, bool) {
	if isAbsent(raw) {
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
			return t, true
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return epochMillis(float64(ms))
		}
		return time.Time{}, false
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return epochMillis(ms)
	}
	return time.Time{}, false
}

// coerceBadges accepts an array of strings or a comma-separated string.
// Blank tags are dropped before the emptiness check.
func coerceBadges(raw json.RawMessage) []string {
	var items []string
	if !isAbsent(raw) {
		var list []interface{}
		var s string
		if err := json.Unmarshal(raw, &list); err == nil {
			for _, item := range list {
				if str, ok := item.(string); ok {
					items = append(items, str)
				}
			}
		} else if err := json.Unmarshal(raw, &s); err == nil {
			items = strings.Split(s, ",")
		}
	}

	badges := make([]string, 0, len(items))
	for _, b := range items {
		if b = strings.TrimSpace(b); b != "" {
			badges = append(badges, b)
		}
	}
	if len(badges) == 0 {
		return []string{models.DefaultBadge}
	}
	return badges
}

func coerceText(s *string) string {
	if s == nil {
		return models.NotAvailable
	}
	if v := strings.TrimSpace(*s); v != "" {
		return v
	}
	return models.NotAvailable
}
