package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// Fold case-folds and trims a facet or query value
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// str returns the first key holding a non-empty string. Numbers are
// rendered in their JSON form; objects yield their name field.
func str(rec portalapi.Record, keys ...string) string {
	for _, key := range keys {
		if v := scalarString(rec[key]); v != "" {
			return v
		}
	}
	return ""
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '{':
		var obj portalapi.Record
		if err := json.Unmarshal(raw, &obj); err != nil {
			return ""
		}
		return str(obj, "companyName", "name", "title")
	case '[', 'n', 't', 'f':
		return ""
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	}
}

// text is like str but joins list values with newlines
func text(rec portalapi.Record, keys ...string) string {
	for _, key := range keys {
		if v := scalarString(rec[key]); v != "" {
			return v
		}
		if items := listOf(rec[key]); len(items) > 0 {
			return strings.Join(items, "\n")
		}
	}
	return ""
}

// number reads a JSON number or a numeric string
func number(rec portalapi.Record, keys ...string) float64 {
	for _, key := range keys {
		raw := bytes.TrimSpace(rec[key])
		if len(raw) == 0 {
			continue
		}

		var f float64
		if err := json.Unmarshal(raw, &f); err == nil && !math.IsNaN(f) {
			return f
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func integer(rec portalapi.Record, keys ...string) int {
	return int(number(rec, keys...))
}

// list reads an array of strings. A bare string becomes a single element
// and anything else an empty list; the result is never nil.
func list(rec portalapi.Record, keys ...string) []string {
	for _, key := range keys {
		if _, ok := rec[key]; !ok {
			continue
		}
		if items := listOf(rec[key]); len(items) > 0 {
			return items
		}
		if v := scalarString(rec[key]); v != "" {
			return []string{v}
		}
	}
	return []string{}
}

func listOf(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := scalarString(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// object reads a nested object, nil when the key holds something else
func object(rec portalapi.Record, key string) portalapi.Record {
	raw := bytes.TrimSpace(rec[key])
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	var obj portalapi.Record
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func boolean(rec portalapi.Record, key string) bool {
	var b bool
	if err := json.Unmarshal(rec[key], &b); err != nil {
		return false
	}
	return b
}
