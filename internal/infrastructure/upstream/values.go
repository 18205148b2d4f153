package upstream

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Helpers that read optional JSON fields. Missing and null fields become nil;
// numbers sent as strings are parsed.

func isAbsent(res gjson.Result) bool {
	return !res.Exists() || res.Type == gjson.Null
}

// OptFloat returns res as *float64
func OptFloat(res gjson.Result) *float64 {
	if isAbsent(res) {
		return nil
	}
	switch res.Type {
	case gjson.Number:
		v := res.Float()
		return &v
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
		if err != nil {
			return nil
		}
		return &v
	default:
		return nil
	}
}

// OptInt returns res as *int64
func OptInt(res gjson.Result) *int64 {
	if isAbsent(res) {
		return nil
	}
	switch res.Type {
	case gjson.Number:
		v := res.Int()
		return &v
	case gjson.String:
		v, err := strconv.ParseInt(strings.TrimSpace(res.Str), 10, 64)
		if err != nil {
			return nil
		}
		return &v
	default:
		return nil
	}
}

// OptString returns res as *string
func OptString(res gjson.Result) *string {
	if isAbsent(res) {
		return nil
	}
	v := res.String()
	return &v
}

// RawValue returns the raw JSON token of res, or nil when absent
func RawValue(res gjson.Result) json.RawMessage {
	if isAbsent(res) {
		return nil
	}
	return json.RawMessage(res.Raw)
}
