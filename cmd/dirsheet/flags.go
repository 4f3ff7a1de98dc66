package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/sets"
)

// enumFlag is a string flag restricted to a fixed set of values
type enumFlag struct {
	value   string
	allowed sets.Set[string]
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(defaultValue string, allowed ...string) *enumFlag {
	return &enumFlag{
		value:   defaultValue,
		allowed: sets.New(allowed...),
	}
}

func (f *enumFlag) String() string {
	return f.value
}

func (f *enumFlag) Set(value string) error {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !f.allowed.Has(normalized) {
		return fmt.Errorf("must be one of: %s", strings.Join(sets.List(f.allowed), ", "))
	}
	f.value = normalized
	return nil
}

func (f *enumFlag) Type() string {
	return "string"
}

// Values returns the accepted values in sorted order, for help text
func (f *enumFlag) Values() string {
	return strings.Join(sets.List(f.allowed), "|")
}
