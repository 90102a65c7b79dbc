package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var jsonNull = []byte("null")

// FlexString holds a scalar JSON value in text form. Catalog backends
// disagree on whether ids and years are numbers or strings; both decode.
type FlexString string

// FlexInt wraps an integer, mostly for records built in code and tests
func FlexInt(n int) FlexString {
	return FlexString(strconv.Itoa(n))
}

func (f FlexString) String() string {
	return string(f)
}

// UnmarshalJSON accepts strings, numbers and booleans. Null leaves the value
// empty; objects and arrays are kept as their JSON text.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	*f = FlexString(data)
	return nil
}

// MarshalJSON writes numeric values back as JSON numbers
func (f FlexString) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(f), 64); err == nil && json.Valid([]byte(f)) {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// SynonymList is the synonyms of a record. Entries may be plain names or
// objects carrying a name; anything else is kept as JSON text.
type SynonymList []string

func (l *SynonymList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*l = nil
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		// a single synonym instead of a list
		entries = []json.RawMessage{data}
	}

	names := make(SynonymList, 0, len(entries))
	for _, entry := range entries {
		if name := synonymName(entry); name != "" {
			names = append(names, name)
		}
	}
	*l = names
	return nil
}

func synonymName(entry json.RawMessage) string {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		return name
	}

	var obj struct {
		Name           string `json:"name"`
		ScientificName string `json:"scientific_name"`
	}
	if err := json.Unmarshal(entry, &obj); err == nil {
		if obj.Name != "" {
			return obj.Name
		}
		if obj.ScientificName != "" {
			return obj.ScientificName
		}
	}

	var text FlexString
	if err := text.UnmarshalJSON(entry); err != nil {
		return ""
	}
	return text.String()
}
