package helper

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ByteToStruct decodes a single JSON document into result. Unknown fields
// and trailing data are rejected.
func ByteToStruct[I any](payload []byte, result *I) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return errors.New("empty json payload")
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(result); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after json payload")
	}
	return nil
}
