package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	formatTable = "table"
	formatTSV   = "tsv"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// mutuallyExclusive ensures that only one of the provided flags is active at the same time.
func mutuallyExclusive(flagA bool, nameA string, flagB bool, nameB string) error {
	if flagA && flagB {
		return fmt.Errorf("cannot use both %s and %s flags together", nameA, nameB)
	}
	return nil
}

// resolveColor decides whether output written to w should be colored.
// In auto mode that requires a terminal and no NO_COLOR override.
func resolveColor(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}

	if color.NoColor {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// currentOutputFormat returns the selected --output value
func currentOutputFormat() string {
	if outputFormat == nil {
		return formatTable
	}
	return outputFormat.String()
}
