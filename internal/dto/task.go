package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID accepts either a JSON number or a numeric string. Admin screens
// submit ids from form inputs, so both shapes arrive on the wire and are
// coerced to integers here.
type FlexID uint

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(f), 10)), nil
}
