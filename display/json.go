package display

import (
	"encoding/json"
)

// MarshalJSON marshals JSON with two-space indentation
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
