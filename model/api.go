package model

import (
	"bytes"
	"encoding/json"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// NumericString accepts a JSON string or number and keeps its text, so that
// malformed numbers reach validation instead of failing to decode.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

func (n NumericString) String() string {
	return string(n)
}
