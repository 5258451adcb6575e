// File: shape/persist.go
// JSON persistence for the shape library file (shape_db.json).
package shape

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vlaran/nurikabe/group"
)

// wireShape mirrors the on-disk JSON schema in spec.md §6 exactly;
// Shape's in-memory Parent uses the NoParent sentinel instead of a
// pointer, so the two types are kept separate and converted at the
// JSON boundary.
type wireShape struct {
	Group         []group.Coord   `json:"group"`
	Solutions     [][]group.Coord `json:"solutions"`
	Parent        *int            `json:"parent,omitempty"`
	UsedSolutions []int           `json:"used_solutions,omitempty"`
}

// Load reads a shape library JSON file and rebuilds the in-memory
// index by scanning every entry, exactly as spec.md §4.3 describes.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shape: read %s: %w", path, err)
	}
	var wire []wireShape
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("shape: parse %s: %w", path, err)
	}

	l := New()
	l.shapes = make([]*Shape, len(wire))
	for i, w := range wire {
		parent := NoParent
		if w.Parent != nil {
			parent = *w.Parent
		}
		l.shapes[i] = &Shape{
			Group:         w.Group,
			Solutions:     w.Solutions,
			Parent:        parent,
			UsedSolutions: w.UsedSolutions,
		}
	}
	for id, s := range l.shapes {
		l.index[canonKey(s.Group, s.Parent)] = id
	}
	return l, nil
}

// Save writes the library to path as a JSON array, in shape-id order.
func (l *Library) Save(path string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	wire := make([]wireShape, len(l.shapes))
	for i, s := range l.shapes {
		w := wireShape{
			Group:         s.Group,
			Solutions:     s.Solutions,
			UsedSolutions: s.UsedSolutions,
		}
		if s.Parent != NoParent {
			p := s.Parent
			w.Parent = &p
		}
		wire[i] = w
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return fmt.Errorf("shape: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("shape: write %s: %w", path, err)
	}
	return nil
}
