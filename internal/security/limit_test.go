package security

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLimitedReaderWithinLimit(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hello"), 16)

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadAll() = %q, want %q", data, "hello")
	}
}

func TestLimitedReaderExactLimit(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hello"), 5)

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadAll() = %q, want %q", data, "hello")
	}
}

func TestLimitedReaderExceedsLimit(t *testing.T) {
	r := NewLimitedReader(bytes.NewReader(make([]byte, 64)), 10)

	_, err := io.ReadAll(r)
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("ReadAll() error = %v, want ErrSizeLimit", err)
	}
}
