package pkg

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"dirsheet/pkg/sheet"
)

// SkippedEntry records a directory entry that contributed no row
type SkippedEntry struct {
	Path   string
	Reason string
	Err    error
}

// ScanResult is the complete row set of one directory
type ScanResult struct {
	Directory string
	MaxLines  int
	Rows      []sheet.Row
	Skipped   []SkippedEntry
}

// SkippedError aggregates the per-entry failures, nil when nothing was skipped
func (r *ScanResult) SkippedError() error {
	errs := make([]error, 0, len(r.Skipped))
	for _, skipped := range r.Skipped {
		errs = append(errs, skipped.Err)
	}
	return utilerrors.NewAggregate(errs)
}

// Scanner builds rows from the regular files of one directory
type Scanner struct {
	config *ScanConfig
}

// NewScanner creates a scanner with functional options
func NewScanner(options ...ScanOption) (*Scanner, error) {
	config := DefaultScanConfig()

	// Apply all options
	for _, option := range options {
		if err := option(config); err != nil {
			return nil, err
		}
	}

	return &Scanner{config: config}, nil
}

// Config returns the effective configuration
func (s *Scanner) Config() ScanConfig {
	return *s.config
}

// Scan lists dir once and extracts a row for every regular file in it.
// Entries whose type or content cannot be read are logged and skipped, as
// is the tail of a listing that fails part way. Only a target that cannot
// be listed as a directory at all is an error.
func (s *Scanner) Scan(ctx context.Context, dir string) (*ScanResult, error) {
	logger := s.config.Logger

	entries, err := s.config.Lister.ReadDir(dir)
	if IsFatal(err) {
		return nil, EnhanceError(err, "list_directory "+dir)
	}

	logger.Log(LevelDebug, fmt.Sprintf("Found %d entries in %s", len(entries), dir), nil)

	result := &ScanResult{
		Directory: dir,
		MaxLines:  s.config.MaxLines,
		Rows:      make([]sheet.Row, 0, len(entries)),
	}

	// the listing stopped early; keep what was read
	if err != nil {
		s.skip(result, dir, "read_dir", fmt.Sprintf("Couldn't read entries of %s", dir), err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())

		mode, err := entryType(entry)
		if err != nil {
			s.skip(result, path, "file_type", fmt.Sprintf("Couldn't get file type for %s", path), err)
			continue
		}
		if !mode.IsRegular() {
			logger.Log(LevelDebug, fmt.Sprintf("Skipping %s (%s)", path, mode), nil)
			continue
		}

		lines, err := s.config.Extractor.Extract(path, s.config.MaxLines)
		if err != nil {
			s.skip(result, path, "read_file", fmt.Sprintf("Couldn't read file %s", path), err)
			continue
		}

		result.Rows = append(result.Rows, sheet.NewRow(entry.Name(), lines))
	}

	if s.config.SortByName {
		slices.SortStableFunc(result.Rows, func(a, b sheet.Row) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}

	logger.Log(LevelDebug, fmt.Sprintf("Collected %d rows, skipped %d entries", len(result.Rows), len(result.Skipped)), nil)

	return result, nil
}

// entryType returns the type bits recorded by the listing. Info is only
// consulted when the listing could not tell, so a file removed after the
// listing still classifies as regular and fails on open instead.
func entryType(entry fs.DirEntry) (fs.FileMode, error) {
	mode := entry.Type()
	if mode&fs.ModeIrregular == 0 {
		return mode, nil
	}

	info, err := entry.Info()
	if err != nil {
		return 0, err
	}
	return info.Mode().Type(), nil
}

func (s *Scanner) skip(result *ScanResult, path, op, message string, err error) {
	var entryErr error = NewEntryError(op, path, err)
	if errors.Is(err, ErrEntry) {
		entryErr = err
	}
	s.config.Logger.Log(LevelError, message, entryErr)
	result.Skipped = append(result.Skipped, SkippedEntry{
		Path:   path,
		Reason: message,
		Err:    entryErr,
	})
}
