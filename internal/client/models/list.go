package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeList decodes a collection response. The backend returns either a
// bare JSON array or an object wrapping the array in "data".
func DecodeList[T any](b []byte) ([]T, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []T{}, nil
	}

	if b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return env.Data, nil
}
