package sheet

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Extract reads at most maxLines leading lines of the file at path.
// The only error is a failure to open the file; everything after that
// degrades to empty lines instead of failing.
func Extract(path string, maxLines int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLines(f, maxLines), nil
}

// ReadLines returns up to maxLines lines from r with their terminators
// removed. Lines that are not valid UTF-8 are replaced by "". A read
// error other than EOF yields one empty line and ends the read.
func ReadLines(r io.Reader, maxLines int) []string {
	lines := make([]string, 0, max(maxLines, 0))
	reader := bufio.NewReader(r)

	for len(lines) < maxLines {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			lines = append(lines, "")
			break
		}
		if raw == "" && err != nil {
			break
		}

		lines = append(lines, decodeLine(raw))
		if err != nil {
			break
		}
	}

	return lines
}

func decodeLine(raw string) string {
	line := raw
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	if !utf8.ValidString(line) {
		return ""
	}
	return line
}
