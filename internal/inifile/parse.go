// Package inifile reads line-oriented key-value configuration files such as
// INI-style themes and lexer style sheets.
package inifile

import (
	"strings"
)

// commentMarkers are the leading characters of comment and section lines.
const commentMarkers = ";#["

// Entry is a key-value assignment found on one line of a document.
type Entry struct {
	Line  int // 1-based
	Key   string
	Value string
}

// ParseKeyValue extracts the key and value from a single "key = value" line.
// It reports ok == false for blank lines, comment or section lines and lines
// without a non-empty key and value. Only the first '=' separates the key, so
// the value keeps any further '=' characters.
func ParseKeyValue(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.IndexByte(commentMarkers, line[0]) >= 0 {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}

	return key, value, true
}

// Parse splits a whole document into lines and returns the entries that
// ParseKeyValue accepts, in document order. "\n", "\r\n" and "\r" are all
// treated as line endings. A leading byte order mark is left in place and
// becomes part of the first line.
func Parse(data []byte) []Entry {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var entries []Entry
	for i, line := range strings.Split(text, "\n") {
		key, value, ok := ParseKeyValue(line)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Line: i + 1, Key: key, Value: value})
	}

	return entries
}
