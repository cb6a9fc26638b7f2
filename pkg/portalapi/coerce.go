package portalapi

import (
	"bytes"
	"encoding/json"
)

// CoerceList turns a list payload into its elements. Arrays pass through,
// an object yields its values in document order, and any other shape
// (including malformed JSON) yields an empty list.
func CoerceList(body []byte) []json.RawMessage {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return []json.RawMessage{}
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return []json.RawMessage{}
	}

	out := []json.RawMessage{}
	switch delim {
	case '[':
		for dec.More() {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return []json.RawMessage{}
			}
			out = append(out, raw)
		}
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return []json.RawMessage{}
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return []json.RawMessage{}
			}
			out = append(out, raw)
		}
	default:
		return []json.RawMessage{}
	}

	if _, err := dec.Token(); err != nil {
		return []json.RawMessage{}
	}
	return out
}

// CoerceArray accepts only arrays; anything else yields an empty list
func CoerceArray(body []byte) []json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []json.RawMessage{}
	}
	return CoerceList(trimmed)
}

// Records decodes each element into a Record. Elements that are not
// objects become empty records so positions stay aligned with the payload.
func Records(items []json.RawMessage) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil || rec == nil {
			rec = Record{}
		}
		out = append(out, rec)
	}
	return out
}
