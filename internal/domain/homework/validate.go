package homework

import (
	"encoding/json"
	"math"
	"strconv"
)

// API payload keys.
const (
	keyHomeworks    = "homeworks"
	keyCurrentDate  = "current_date"
	keyHomeworkName = "homework_name"
	keyStatus       = "status"
)

// Validate checks a decoded API payload and turns it into a PollResult.
// raw is what encoding/json produces for an arbitrary document (maps, slices,
// json.Number or float64 for numbers). An empty homeworks list is a valid
// no-update result.
func Validate(raw any) (PollResult, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return PollResult{}, malformed("", "API response is not an object")
	}

	hwRaw, ok := doc[keyHomeworks]
	if !ok {
		return PollResult{}, missing(keyHomeworks)
	}
	homeworks, ok := hwRaw.([]any)
	if !ok {
		return PollResult{}, malformed(keyHomeworks, `key "homeworks" is not a list`)
	}

	dateRaw, ok := doc[keyCurrentDate]
	if !ok {
		return PollResult{}, missing(keyCurrentDate)
	}
	next, err := parseCursor(dateRaw)
	if err != nil {
		return PollResult{}, err
	}

	if len(homeworks) == 0 {
		return NoUpdate(next), nil
	}

	rec, err := parseRecord(homeworks[0])
	if err != nil {
		return PollResult{}, err
	}
	return Update(rec, next), nil
}

func parseRecord(raw any) (Record, error) {
	hw, ok := raw.(map[string]any)
	if !ok {
		// A non-object entry has no homework_name to read.
		return Record{}, missing(keyHomeworkName)
	}

	name, err := stringField(hw, keyHomeworkName)
	if err != nil {
		return Record{}, err
	}
	status, err := stringField(hw, keyStatus)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Status: Status(status)}, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", missing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", malformed(key, strconv.Quote(key)+" is not a string")
	}
	return s, nil
}

func parseCursor(v any) (Cursor, error) {
	bad := malformed(keyCurrentDate, `key "current_date" is not an integer`)
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, bad
		}
		return Cursor(i), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, bad
		}
		return Cursor(int64(n)), nil
	case int:
		return Cursor(n), nil
	case int64:
		return Cursor(n), nil
	default:
		return 0, bad
	}
}
