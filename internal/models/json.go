package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONStringArray is a custom type for handling ordered string lists in
// JSON-typed columns.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONStringMap is a custom type for string-keyed string maps in JSON-typed
// columns (social links, color schemes).
type JSONStringMap map[string]string

// Value implements the driver.Valuer interface
func (m JSONStringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONStringMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONStringMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// JSONValueMap is a custom type for freeform string-keyed maps in JSON-typed
// columns (analytics counters and interaction data).
type JSONValueMap map[string]interface{}

// Value implements the driver.Valuer interface
func (m JSONValueMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONValueMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONValueMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}
