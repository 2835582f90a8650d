package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bool accepts the usual spelling variants for booleans in YAML
// and on the command line.
type Bool bool

// ParseBool maps yes/true/t/y/1 to true and no/false/f/n/0 to false,
// case insensitively.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "t", "y", "1":
		return true, nil
	case "no", "false", "f", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("boolean value expected, got %q", s)
}

func (b *Bool) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseBool(value.Value)
	if err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}

func (b Bool) Bool() bool { return bool(b) }
