package models

import (
	"encoding/json"
	"strings"
)

// StringList decodes from either a JSON array of strings or a single
// comma-separated string. Items are trimmed and empty items dropped, so
// "a, b,,c" and ["a", " b", "", "c"] both become [a b c].
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var items []string
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		items = strings.Split(s, ",")
	} else if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(StringList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}

// MarshalJSON writes an empty array instead of null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
