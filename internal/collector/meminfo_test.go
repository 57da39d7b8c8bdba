package collector

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleMeminfo = `MemTotal:       16384000 kB
MemFree:         8192000 kB
MemAvailable:   12288000 kB
Buffers:          512000 kB
Cached:          2048000 kB
SwapCached:            0 kB
Active:          3145728 kB
`

func TestParseMeminfo(t *testing.T) {
	m := ParseMeminfo(sampleMeminfo)

	if want := uint64(16384000) * 1024; m.Total != want {
		t.Errorf("Total = %d, want %d", m.Total, want)
	}
	if want := uint64(8192000) * 1024; m.Free != want {
		t.Errorf("Free = %d, want %d", m.Free, want)
	}
	if want := uint64(12288000) * 1024; m.Available != want {
		t.Errorf("Available = %d, want %d", m.Available, want)
	}
	if want := uint64(512000) * 1024; m.Buffers != want {
		t.Errorf("Buffers = %d, want %d", m.Buffers, want)
	}
	if want := uint64(2048000) * 1024; m.Cached != want {
		t.Errorf("Cached = %d, want %d", m.Cached, want)
	}
}

func TestParseMeminfoMissingKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"unrecognized only", "Slab: 100 kB\nShmem: 200 kB\n"},
		{"garbage", "not a meminfo table at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseMeminfo(tt.data)
			if m != (Memory{}) {
				t.Errorf("expected all-zero Memory, got %+v", m)
			}
		})
	}
}

func TestParseMeminfoSkipsMalformedValues(t *testing.T) {
	m := ParseMeminfo("MemTotal: notanumber kB\nMemFree: 100 kB\n")
	if m.Total != 0 {
		t.Errorf("Total = %d, want 0 for malformed value", m.Total)
	}
	if want := uint64(100) * 1024; m.Free != want {
		t.Errorf("Free = %d, want %d", m.Free, want)
	}
}

func TestReadMemory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "meminfo"), []byte(sampleMeminfo), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadMemory(dir)
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	if m.Total == 0 {
		t.Error("expected non-zero Total")
	}
}

func TestReadMemoryMissingFile(t *testing.T) {
	if _, err := ReadMemory(t.TempDir()); err == nil {
		t.Fatal("expected error for missing meminfo")
	}
}

func TestReadHostname(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hostname")
	if err := os.WriteFile(path, []byte("web-01\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	host, err := ReadHostname(path)
	if err != nil {
		t.Fatalf("ReadHostname: %v", err)
	}
	if host != "web-01" {
		t.Errorf("hostname = %q, want %q", host, "web-01")
	}
}

func TestReadHostnameMissingFile(t *testing.T) {
	if _, err := ReadHostname(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing hostname file")
	}
}
