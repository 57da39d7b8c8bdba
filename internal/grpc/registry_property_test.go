package grpc

import (
	"fmt"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Concurrent registrations must never corrupt the registry: whatever the
// interleaving, the final size equals the number of registrations and
// every entry remains reachable through a snapshot.
func TestRegistryConcurrentAdds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("final size equals number of concurrent registrations", prop.ForAll(
		func(n int) bool {
			r := NewRegistry(3, nil, nil)

			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					r.Add(testConn(fmt.Sprintf("10.0.0.%d:4000", i)))
				}(i)
			}
			wg.Wait()

			if r.Len() != n {
				return false
			}
			seen := make(map[string]bool, n)
			for _, c := range r.Snapshot() {
				seen[c.ID] = true
			}
			return len(seen) == n
		},
		gen.IntRange(1, 50),
	))

	properties.Property("snapshots during concurrent adds observe consistent prefixes", prop.ForAll(
		func(n int) bool {
			r := NewRegistry(3, nil, nil)

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < n; i++ {
					r.Add(testConn(fmt.Sprintf("10.0.1.%d:4000", i)))
				}
			}()

			ok := true
			for i := 0; i < n; i++ {
				snap := r.Snapshot()
				for _, c := range snap {
					if c == nil {
						ok = false
					}
				}
				if len(snap) > n {
					ok = false
				}
			}
			wg.Wait()
			return ok && r.Len() == n
		},
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}
