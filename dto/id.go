package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a numeric identifier in a request body. Browser forms send select
// values as strings, so both 7 and "7" decode.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("id %q is not a number", s)
		}
		*id = ID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id %s is not a number", data)
	}
	*id = ID(n)
	return nil
}

func (id ID) Int64() int64 { return int64(id) }
