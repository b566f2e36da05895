package wire

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON wraps an arbitrary Go value that is sent as a length-prefixed UTF-8
// string carrying a JSON document: status responses and kick reasons both
// take this shape.
type JSON struct {
	Value interface{}
}

func (j JSON) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(j.Value)
	if err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return String(data).WriteTo(w)
}

// ReadJSON reads a length-prefixed JSON string and unmarshals it into v.
func ReadJSON(r io.Reader, v interface{}) error {
	s, err := ReadString(r)
	if err != nil {
		return fmt.Errorf("failed to read the JSON string: %w", err)
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
