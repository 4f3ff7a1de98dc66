package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"sigs.k8s.io/yaml"

	"dirsheet/pkg"
	"dirsheet/pkg/sheet"
)

type sheetStructuredOutput struct {
	Directory string             `json:"directory"`
	MaxLines  int                `json:"maxLines"`
	Widths    sheet.ColumnWidths `json:"widths"`
	Rows      []sheet.Row        `json:"rows"`
	Skipped   []skippedEntry     `json:"skipped"`
	Summary   sheetSummary       `json:"summary"`
}

type skippedEntry struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type sheetSummary struct {
	Rows    int `json:"rows"`
	Skipped int `json:"skipped"`
}

// displaySheet writes the scan result in the selected output format
func displaySheet(w io.Writer, result *pkg.ScanResult, renderer *sheet.Renderer) error {
	switch format := currentOutputFormat(); format {
	case formatJSON, formatYAML:
		return writeStructuredSheetOutput(w, result, renderer, format)
	case formatTSV:
		return writeLines(w, sheet.TSV(result.Rows))
	case formatTable:
		return writeLines(w, renderer.Render(result.Rows))
	default:
		return pkg.NewConfigurationError("display_sheet", fmt.Sprintf("unsupported output format %q", format))
	}
}

func writeLines(w io.Writer, lines iter.Seq[string]) error {
	if err := sheet.WriteLines(w, lines); err != nil {
		return pkg.NewOutputError("write_table", err)
	}
	return nil
}

func writeStructuredSheetOutput(w io.Writer, result *pkg.ScanResult, renderer *sheet.Renderer, format string) error {
	payload := buildSheetStructuredOutput(result, renderer)

	var (
		data []byte
		err  error
	)

	switch format {
	case formatYAML:
		data, err = yaml.Marshal(payload)
	default:
		data, err = json.MarshalIndent(payload, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("failed to render %s output: %w", format, err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimSuffix(string(data), "\n")); err != nil {
		return pkg.NewOutputError("write_"+format, err)
	}
	return nil
}

func buildSheetStructuredOutput(result *pkg.ScanResult, renderer *sheet.Renderer) sheetStructuredOutput {
	output := sheetStructuredOutput{
		Directory: result.Directory,
		MaxLines:  result.MaxLines,
		Widths:    renderer.Measure(result.Rows),
		Rows:      make([]sheet.Row, 0, len(result.Rows)),
		Skipped:   make([]skippedEntry, 0, len(result.Skipped)),
		Summary: sheetSummary{
			Rows:    len(result.Rows),
			Skipped: len(result.Skipped),
		},
	}

	output.Rows = append(output.Rows, result.Rows...)

	for _, skipped := range result.Skipped {
		output.Skipped = append(output.Skipped, skippedEntry{
			Path:   skipped.Path,
			Reason: skipped.Reason,
		})
	}

	return output
}
