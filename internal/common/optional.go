package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OptionalInt is a numeric input that may be left blank. Blank means null.
// In JSON it accepts a number, a numeric string, an empty string, or null.
type OptionalInt string

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*o = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OptionalInt(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("optional int: %w", err)
	}
	*o = OptionalInt(n.String())

	return nil
}

// IntPtr returns nil for a blank value. A value that is not a whole number is
// recorded on v under field and nil is returned.
func (o OptionalInt) IntPtr(v *Validator, field string) *int {
	return o.parse(v, field, 64)
}

// Int32Ptr is IntPtr for values stored in an INTEGER column.
func (o OptionalInt) Int32Ptr(v *Validator, field string) *int {
	return o.parse(v, field, 32)
}

func (o OptionalInt) parse(v *Validator, field string, bitSize int) *int {
	s := strings.TrimSpace(string(o))
	if s == "" {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && bitSize == 32 {
			v.AddError(field, fmt.Sprintf("must be a whole number between %d and %d", math.MinInt32, math.MaxInt32))
			return nil
		}
		v.AddError(field, "must be a whole number")
		return nil
	}

	i := int(n)
	return &i
}

// OptionalIntOf formats n for use in a request; nil becomes blank.
func OptionalIntOf(n *int) OptionalInt {
	if n == nil {
		return ""
	}
	return OptionalInt(strconv.Itoa(*n))
}
