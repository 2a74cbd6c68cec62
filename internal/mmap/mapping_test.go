package mmap

import (
	"errors"
	"testing"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(1 << 16)
	if err != nil {
		t.Fatalf("MapAnon failed: %v", err)
	}
	defer m.Close()

	if m.Size() != 1<<16 {
		t.Errorf("expected size %d, got %d", 1<<16, m.Size())
	}

	data := m.Bytes()
	if len(data) != 1<<16 {
		t.Fatalf("expected len %d, got %d", 1<<16, len(data))
	}

	// Anonymous mappings must be zero-filled and writable.
	for i := 0; i < len(data); i += 4096 {
		if data[i] != 0 {
			t.Fatalf("byte %d not zero", i)
		}
		data[i] = 0xAB
	}
	for i := 0; i < len(data); i += 4096 {
		if data[i] != 0xAB {
			t.Fatalf("readback mismatch at %d", i)
		}
	}
}

func TestMapAnon_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := MapAnon(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestMapping_CloseIdempotent(t *testing.T) {
	m, err := MapAnon(4096)
	if err != nil {
		t.Fatalf("MapAnon failed: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if m.Bytes() != nil {
		t.Error("Bytes() after Close should return nil")
	}
}
