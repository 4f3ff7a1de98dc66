package pkg

import (
	"fmt"
	"strings"

	"dirsheet/pkg/sheet"
)

// ScanOption defines a functional option for configuring the scanner
type ScanOption func(*ScanConfig) error

// ScanConfig holds configuration options for a directory scan
type ScanConfig struct {
	MaxLines   int
	SortByName bool
	Logger     Logger
	Lister     DirectoryLister
	Extractor  LineExtractor
}

// DefaultScanConfig returns default scan configuration
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{
		MaxLines:   sheet.DefaultMaxLines,
		SortByName: false,
		Logger:     nopLogger{},
		Lister:     OSLister{},
		Extractor:  FileExtractor{},
	}
}

// WithMaxLines sets how many leading lines are captured per file
func WithMaxLines(lines int) ScanOption {
	return func(config *ScanConfig) error {
		if lines < 1 {
			return NewValidationError("scan_config", "max_lines",
				"line count must be at least 1")
		}
		if lines > sheet.MaxLinesLimit {
			return NewValidationError("scan_config", "max_lines",
				fmt.Sprintf("line count cannot exceed %d", sheet.MaxLinesLimit))
		}
		config.MaxLines = lines
		return nil
	}
}

// WithSortByName orders rows by file name instead of directory order
func WithSortByName(sorted bool) ScanOption {
	return func(config *ScanConfig) error {
		config.SortByName = sorted
		return nil
	}
}

// WithLogger sets the diagnostics sink
func WithLogger(logger Logger) ScanOption {
	return func(config *ScanConfig) error {
		if logger == nil {
			return NewValidationError("scan_config", "logger",
				"logger cannot be nil")
		}
		config.Logger = logger
		return nil
	}
}

// WithDirectoryLister replaces the operating system directory listing
func WithDirectoryLister(lister DirectoryLister) ScanOption {
	return func(config *ScanConfig) error {
		if lister == nil {
			return NewValidationError("scan_config", "lister",
				"directory lister cannot be nil")
		}
		config.Lister = lister
		return nil
	}
}

// WithLineExtractor replaces the file line reader
func WithLineExtractor(extractor LineExtractor) ScanOption {
	return func(config *ScanConfig) error {
		if extractor == nil {
			return NewValidationError("scan_config", "extractor",
				"line extractor cannot be nil")
		}
		config.Extractor = extractor
		return nil
	}
}

// RenderOption defines a functional option for table rendering
type RenderOption func(*sheet.Renderer) error

// WithStyle sets the cell style strategy
func WithStyle(style sheet.Style) RenderOption {
	return func(r *sheet.Renderer) error {
		if style == nil {
			return NewValidationError("render_options", "style",
				"style cannot be nil")
		}
		r.Style = style
		return nil
	}
}

// WithSeparator sets the text placed after the name and between cells
func WithSeparator(separator string) RenderOption {
	return func(r *sheet.Renderer) error {
		if strings.ContainsAny(separator, "\r\n") {
			return NewValidationError("render_options", "separator",
				"separator cannot contain line breaks")
		}
		r.Separator = separator
		return nil
	}
}

// NewRendererWithOptions creates a renderer with functional options
func NewRendererWithOptions(maxLines int, options ...RenderOption) (*sheet.Renderer, error) {
	if maxLines < 1 || maxLines > sheet.MaxLinesLimit {
		return nil, NewValidationError("render_options", "max_lines",
			fmt.Sprintf("line count must be between 1 and %d", sheet.MaxLinesLimit))
	}

	r := sheet.NewRenderer(maxLines)

	// Apply all options
	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}
