package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/plantel/internal/types"
)

// DateLayout is the format accepted by date flags
const DateLayout = "2006-01-02"

// DateTimeLayouts are accepted by date-time flags, tried in order
var DateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseDate parses an optional YYYY-MM-DD flag. Empty yields the zero time.
func ParseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// ParseDateTime parses a date-time flag in local time
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time '%s' (want YYYY-MM-DD HH:MM)", value)
}

// ParseIDs parses positional id arguments
func ParseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id '%s'", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AthleteIDs converts plain ints from flags
func AthleteIDs(ids []int) []types.AthleteID {
	out := make([]types.AthleteID, len(ids))
	for i, id := range ids {
		out[i] = types.AthleteIDFromInt(id)
	}
	return out
}

// ParseFields parses repeated field flags into a JSON-ready map.
// key=value stores a string, key:=value stores raw JSON (numbers, booleans).
func ParseFields(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(strings.TrimSuffix(key, ":")) == "" {
			return nil, fmt.Errorf("invalid field '%s' (want key=value or key:=json)", pair)
		}
		if raw, isRaw := strings.CutSuffix(key, ":"); isRaw {
			var v any
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return nil, fmt.Errorf("invalid JSON for field '%s': %w", raw, err)
			}
			fields[strings.TrimSpace(raw)] = v
			continue
		}
		fields[strings.TrimSpace(key)] = value
	}
	return fields, nil
}
