package collector

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Rendering a meminfo table from arbitrary counters and parsing it back
// should recover every counter converted to bytes, regardless of the
// unrecognized lines around them.
func TestParseMeminfoRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genKB := gen.UInt64Range(0, 1<<40)

	properties.Property("parse recovers rendered counters in bytes", prop.ForAll(
		func(total, free, available, buffers, cached uint64) bool {
			table := fmt.Sprintf(
				"MemTotal:       %d kB\nMemFree:        %d kB\nMemAvailable:   %d kB\nBuffers:        %d kB\nCached:         %d kB\nSwapTotal:      0 kB\n",
				total, free, available, buffers, cached,
			)

			m := ParseMeminfo(table)
			return m.Total == total*1024 &&
				m.Free == free*1024 &&
				m.Available == available*1024 &&
				m.Buffers == buffers*1024 &&
				m.Cached == cached*1024
		},
		genKB, genKB, genKB, genKB, genKB,
	))

	properties.Property("parse never fails on arbitrary text", prop.ForAll(
		func(s string) bool {
			_ = ParseMeminfo(s)
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
