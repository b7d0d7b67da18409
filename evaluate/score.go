// SPDX-License-Identifier: MIT

package evaluate

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Score is a metric value that may be undefined.
// The zero value is Undefined.
type Score struct {
	value   float64
	defined bool
}

// Undefined marks a metric that cannot be computed for a partition.
var Undefined = Score{}

// Defined wraps a computed metric value.
func Defined(v float64) Score { return Score{value: v, defined: true} }

// IsDefined reports whether the score holds a value.
func (s Score) IsDefined() bool { return s.defined }

// Value returns the metric value and whether it is defined.
func (s Score) Value() (float64, bool) { return s.value, s.defined }

// String renders the value, or "undefined".
func (s Score) String() string {
	if !s.defined {
		return "undefined"
	}

	return strconv.FormatFloat(s.value, 'g', -1, 64)
}

// MarshalJSON renders Undefined as null.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.defined {
		return []byte("null"), nil
	}

	return json.Marshal(s.value)
}

// UnmarshalJSON reads null as Undefined.
func (s *Score) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = Undefined
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Defined(v)

	return nil
}

// MarshalYAML renders Undefined as null.
func (s Score) MarshalYAML() (interface{}, error) {
	if !s.defined {
		return nil, nil
	}

	return s.value, nil
}

// UnmarshalYAML reads null as Undefined.
func (s *Score) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*s = Undefined
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*s = Defined(v)

	return nil
}
