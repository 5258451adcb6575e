// Package discover implements the shape-discovery scan: an
// embarrassingly parallel, read-only pass over the grid that finds
// every UNPROCESSED group, canonicalizes its shape, and registers any
// not already in the library. Per spec.md §5, this is the one phase
// of the solver that runs multiple goroutines at once; the grid is
// never mutated here.
package discover

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	xsync "github.com/puzpuzpuz/xsync/v3"

	"github.com/vlaran/nurikabe/grid"
	"github.com/vlaran/nurikabe/group"
	"github.com/vlaran/nurikabe/shape"
	"github.com/vlaran/nurikabe/tile"
)

// Summary reports how a scan's candidate shapes split between newly
// registered and already-known.
type Summary struct {
	Rows     int
	New      int
	Existing int
}

// Scan partitions the grid's rows across workers goroutines (0 or
// negative means GOMAXPROCS), flood-fills every UNPROCESSED group each
// worker encounters, and registers canonical shapes not yet in lib.
// The shared claim map (rather than a bare mutex) is what makes
// concurrent Register calls race-free: LoadOrStore guarantees exactly
// one goroutine wins the right to register a given canonical shape,
// even if several workers independently flood-fill the same
// boundary-straddling group.
func Scan(g *grid.Grid, lib *shape.Library, workers int) (Summary, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > g.Height {
		workers = g.Height
	}
	if workers < 1 {
		workers = 1
	}

	claimed := xsync.NewMapOf[string, struct{}]()
	var newCount, existingCount atomic.Int64
	var firstErr error
	var errOnce sync.Once

	rowsPerWorker := (g.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startY := w * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > g.Height {
			endY = g.Height
		}
		if startY >= endY {
			continue
		}
		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()
			if err := scanBand(g, lib, claimed, &newCount, &existingCount, startY, endY); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}(startY, endY)
	}
	wg.Wait()

	if firstErr != nil {
		return Summary{}, firstErr
	}
	return Summary{Rows: g.Height, New: int(newCount.Load()), Existing: int(existingCount.Load())}, nil
}

func scanBand(g *grid.Grid, lib *shape.Library, claimed *xsync.MapOf[string, struct{}], newCount, existingCount *atomic.Int64, startY, endY int) error {
	visited := make(map[group.Coord]struct{})
	for y := startY; y < endY; y++ {
		for x := 0; x < g.Width; x++ {
			seed := group.Coord{X: x, Y: y}
			if _, seen := visited[seed]; seen {
				continue
			}
			v, err := g.At(x, y)
			if err != nil {
				return fmt.Errorf("discover: %w", err)
			}
			if v != tile.Unprocessed {
				visited[seed] = struct{}{}
				continue
			}

			cells, err := group.FindGroup(g, x, y)
			if err != nil {
				return fmt.Errorf("discover: %w", err)
			}
			for _, c := range cells {
				visited[c] = struct{}{}
			}

			_, _, canon := group.Normalize(cells)
			key := canonKey(canon)
			if _, loaded := claimed.LoadOrStore(key, struct{}{}); loaded {
				existingCount.Add(1)
				continue
			}
			if _, ok := lib.Lookup(canon, shape.NoParent); ok {
				existingCount.Add(1)
				continue
			}
			if _, err := lib.Register(canon, shape.NoParent, nil); err != nil {
				return fmt.Errorf("discover: %w", err)
			}
			newCount.Add(1)
		}
	}
	return nil
}

func canonKey(canon []group.Coord) string {
	var b strings.Builder
	for _, c := range canon {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}
	return b.String()
}

// Sorted returns the library's shapes in a deterministic order keyed
// by their canonical coordinates, independent of discovery's
// goroutine interleaving — spec.md notes the final shape list must be
// sorted before persistence since worker completion order is not
// meaningful.
func Sorted(lib *shape.Library) []int {
	ids := make([]int, lib.Len())
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(i, j int) bool {
		return canonKey(lib.Get(ids[i]).Group) < canonKey(lib.Get(ids[j]).Group)
	})
	return ids
}
