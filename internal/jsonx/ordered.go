// Package jsonx decodes the single-key-object arrays used by the campaign data
// files ([{"name": {...}}, ...]) without losing key order.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Member is one key of a JSON object with its undecoded value.
type Member struct {
	Key   string
	Value json.RawMessage
}

// OrderedObject returns the members of a JSON object in document order.
func OrderedObject(raw json.RawMessage) ([]Member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var members []Member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		members = append(members, Member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// NamedEntries flattens an array of objects into their members, in order.
func NamedEntries(entries []json.RawMessage) ([]Member, error) {
	var out []Member
	for i, raw := range entries {
		members, err := OrderedObject(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, members...)
	}
	return out, nil
}
