package inifile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/colourcount/internal/security"
)

// MaxDecompressedSize caps how much a compressed input may expand to.
var MaxDecompressedSize int64 = 64 * 1024 * 1024

// IsRegularFile reports whether path exists and is a regular file.
// Symbolic links are followed.
func IsRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the whole document at path into memory. Files with an
// ".xz" extension are decompressed. The file is closed before ReadFile
// returns, and the content must be valid UTF-8.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xzr, err := xz.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = security.NewLimitedReader(xzr, MaxDecompressedSize)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to decode %s: not valid UTF-8", path)
	}

	return data, nil
}
