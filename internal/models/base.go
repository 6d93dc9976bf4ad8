package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedText is a bilingual text value stored as a JSON column.
// Arabic is the primary language; English may be empty.
type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan unmarshals a JSON column into the struct. A NULL or empty column
// scans to the zero value so callers never see raw JSON or nil.
func (t *LocalizedText) Scan(src interface{}) error {
	b, err := columnBytes("LocalizedText", src)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*t = LocalizedText{}
		return nil
	}
	return json.Unmarshal(b, t)
}

// IsZero reports whether both translations are empty.
func (t LocalizedText) IsZero() bool {
	return t.Ar == "" && t.En == ""
}

// StringSlice is a JSON array column of strings (image URL lists etc.).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan unmarshals a JSON column. NULL scans to an empty slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, err := columnBytes("StringSlice", src)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(b, s)
}

func columnBytes(typ string, src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: expected []byte or string, got %T", typ, src)
	}
}
