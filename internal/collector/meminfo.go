// Package collector reads runtime metrics from local host state.
package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Memory holds the recognized meminfo counters, in bytes.
type Memory struct {
	Total     uint64
	Free      uint64
	Available uint64
	Buffers   uint64
	Cached    uint64
}

// meminfo reports values in kibibytes.
const kibibyte = 1024

// ParseMeminfo extracts the five recognized counters from a meminfo-style
// key/value table. Lines are matched by prefix; the second whitespace
// token is the value. Unrecognized lines are skipped and missing keys stay
// zero.
func ParseMeminfo(data string) Memory {
	var m Memory
	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		v *= kibibyte

		switch {
		case strings.HasPrefix(line, "MemTotal"):
			m.Total = v
		case strings.HasPrefix(line, "MemAvailable"):
			m.Available = v
		case strings.HasPrefix(line, "MemFree"):
			m.Free = v
		case strings.HasPrefix(line, "Buffers"):
			m.Buffers = v
		case strings.HasPrefix(line, "Cached"):
			m.Cached = v
		}
	}
	return m
}

// ReadMemory reads and parses procDir/meminfo.
func ReadMemory(procDir string) (Memory, error) {
	data, err := os.ReadFile(filepath.Join(procDir, "meminfo"))
	if err != nil {
		return Memory{}, fmt.Errorf("reading meminfo: %w", err)
	}
	return ParseMeminfo(string(data)), nil
}

// ReadHostname reads the hostname file and trims surrounding whitespace.
func ReadHostname(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading hostname: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
