package testutils

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"dirsheet/pkg"
)

// LogEntry is one recorded diagnostic
type LogEntry struct {
	Level   pkg.Level
	Message string
	Err     error
}

// MockLogger records every diagnostic it receives
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockLogger creates an empty recording logger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Log records the diagnostic
func (m *MockLogger) Log(level pkg.Level, message string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: message, Err: err})
}

// Entries returns the recorded diagnostics of the given level
func (m *MockLogger) Entries(level pkg.Level) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []LogEntry
	for _, entry := range m.entries {
		if entry.Level == level {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Messages returns the messages of the given level in order
func (m *MockLogger) Messages(level pkg.Level) []string {
	var messages []string
	for _, entry := range m.Entries(level) {
		messages = append(messages, entry.Message)
	}
	return messages
}

// MockDirEntry is an fs.DirEntry whose Info can be made to fail
type MockDirEntry struct {
	EntryName string
	Mode      fs.FileMode
	InfoErr   error
}

// NewFileEntry returns a regular file entry
func NewFileEntry(name string) *MockDirEntry {
	return &MockDirEntry{EntryName: name}
}

// NewDirEntry returns a directory entry
func NewDirEntry(name string) *MockDirEntry {
	return &MockDirEntry{EntryName: name, Mode: fs.ModeDir | 0o755}
}

// NewBrokenEntry returns an entry the listing could not type and whose
// Info lookup fails
func NewBrokenEntry(name string, err error) *MockDirEntry {
	return &MockDirEntry{EntryName: name, Mode: fs.ModeIrregular, InfoErr: err}
}

func (e *MockDirEntry) Name() string      { return e.EntryName }
func (e *MockDirEntry) IsDir() bool       { return e.Mode.IsDir() }
func (e *MockDirEntry) Type() fs.FileMode { return e.Mode.Type() }

func (e *MockDirEntry) Info() (fs.FileInfo, error) {
	if e.InfoErr != nil {
		return nil, e.InfoErr
	}
	return mockFileInfo{name: e.EntryName, mode: e.Mode}, nil
}

type mockFileInfo struct {
	name string
	mode fs.FileMode
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return 0 }
func (i mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i mockFileInfo) Sys() any           { return nil }

// MockLister returns a fixed entry list for any directory. Err is
// returned alongside Entries, so a partial listing can be simulated.
type MockLister struct {
	Entries []fs.DirEntry
	Err     error
	Calls   []string
}

// NewMockLister creates a lister returning entries in the given order
func NewMockLister(entries ...fs.DirEntry) *MockLister {
	return &MockLister{Entries: entries}
}

func (l *MockLister) ReadDir(path string) ([]fs.DirEntry, error) {
	l.Calls = append(l.Calls, path)
	return l.Entries, l.Err
}

// ErrMockNotFound is returned by MockExtractor for unknown files
var ErrMockNotFound = errors.New("mock file not found")

// MockExtractor serves file contents from memory, keyed by base name
type MockExtractor struct {
	Files  map[string][]string
	Errors map[string]error
	Calls  []string
}

// NewMockExtractor creates an extractor over the given files
func NewMockExtractor(files map[string][]string) *MockExtractor {
	return &MockExtractor{
		Files:  files,
		Errors: make(map[string]error),
	}
}

// FailOn makes the extraction of name fail with err
func (m *MockExtractor) FailOn(name string, err error) *MockExtractor {
	m.Errors[name] = err
	return m
}

func (m *MockExtractor) Extract(path string, maxLines int) ([]string, error) {
	name := filepath.Base(path)
	m.Calls = append(m.Calls, name)

	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	lines, ok := m.Files[name]
	if !ok {
		return nil, ErrMockNotFound
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines, nil
}
