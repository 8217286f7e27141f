package dbx

import "encoding/json"

// JSONValue marshals v for storage in a JSONB column. Nil slices and maps
// become empty JSON containers rather than SQL NULL, so columns can stay
// NOT NULL.
func JSONValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

// ScanJSON unmarshals a JSONB column value into dst. Empty input leaves dst
// untouched.
func ScanJSON(src []byte, dst any) error {
	if len(src) == 0 {
		return nil
	}
	return json.Unmarshal(src, dst)
}
