package inifile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/colourcount/internal/security"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestIsRegularFile(t *testing.T) {
	path := writeFile(t, "theme.ini", []byte("a = b\n"))

	if !IsRegularFile(path) {
		t.Errorf("IsRegularFile(%q) = false, want true", path)
	}
	if IsRegularFile(filepath.Dir(path)) {
		t.Error("IsRegularFile(dir) = true, want false")
	}
	if IsRegularFile(filepath.Join(t.TempDir(), "missing.ini")) {
		t.Error("IsRegularFile(missing) = true, want false")
	}
	if IsRegularFile("") {
		t.Error("IsRegularFile(\"\") = true, want false")
	}
}

func TestReadFile(t *testing.T) {
	content := "background = #FF0000\n"
	path := writeFile(t, "theme.ini", []byte(content))

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != content {
		t.Errorf("ReadFile() = %q, want %q", data, content)
	}
}

func compressXZ(t *testing.T, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Failed to compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close xz writer: %v", err)
	}
	return buf.Bytes()
}

func TestReadFileXZ(t *testing.T) {
	content := "[lexer]\nstyle.default = fore:#000000,back:#FFFFFF\n"
	path := writeFile(t, "theme.ini.xz", compressXZ(t, []byte(content)))

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != content {
		t.Errorf("ReadFile() = %q, want %q", data, content)
	}
}

func TestReadFileXZSizeLimit(t *testing.T) {
	orig := MaxDecompressedSize
	MaxDecompressedSize = 64
	t.Cleanup(func() { MaxDecompressedSize = orig })

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "at limit", size: 64},
		{name: "over limit", size: 4096, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := bytes.Repeat([]byte("a"), tt.size)
			path := writeFile(t, "big.ini.xz", compressXZ(t, content))

			data, err := ReadFile(path)
			if tt.wantErr {
				if !errors.Is(err, security.ErrSizeLimit) {
					t.Fatalf("ReadFile() error = %v, want %v", err, security.ErrSizeLimit)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if len(data) != tt.size {
				t.Errorf("ReadFile() returned %d bytes, want %d", len(data), tt.size)
			}
		})
	}
}

func TestReadFileCorruptXZ(t *testing.T) {
	path := writeFile(t, "broken.xz", []byte("not xz data"))

	if _, err := ReadFile(path); err == nil {
		t.Fatal("Expected error for corrupt xz input")
	}
}

func TestReadFileInvalidUTF8(t *testing.T) {
	path := writeFile(t, "latin1.ini", []byte("name = caf\xe9 #FF0000\n"))

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("Expected error for invalid UTF-8")
	}
	if !strings.Contains(err.Error(), "UTF-8") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
