package models

import (
	"encoding/json"
	"errors"
)

// Selection is the option(s) a respondent chose in one submission. It is a
// tagged union: a single option name when the poll was in single-select
// mode at submission time, or an ordered list of names when multi-select
// was enabled. The JSON form follows the persisted schema (bare string vs
// array of strings).
type Selection struct {
	multi  bool
	values []string
}

// Single builds a single-select selection.
func Single(name string) Selection {
	return Selection{multi: false, values: []string{name}}
}

// Multiple builds a multi-select selection. The slice is copied.
func Multiple(names []string) Selection {
	vals := make([]string, len(names))
	copy(vals, names)
	return Selection{multi: true, values: vals}
}

// IsMulti reports whether the selection was recorded in multi-select mode.
func (s Selection) IsMulti() bool { return s.multi }

// Len returns the number of chosen options.
func (s Selection) Len() int { return len(s.values) }

// Values flattens the selection into a uniform sequence of option names.
// The returned slice is a copy.
func (s Selection) Values() []string {
	vals := make([]string, len(s.values))
	copy(vals, s.values)
	return vals
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.multi {
		return json.Marshal(s.values)
	}
	if len(s.values) != 1 {
		return nil, errors.New("single selection must hold exactly one option")
	}
	return json.Marshal(s.values[0])
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = Single(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("option must be a string or an array of strings")
	}
	*s = Multiple(many)
	return nil
}
