package shape

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vlaran/nurikabe/group"
)

func domino() []group.Coord {
	return []group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
}

func TestRegisterAndLookup(t *testing.T) {
	l := New()
	id, err := l.Register(domino(), NoParent, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id != 0 {
		t.Fatalf("id = %d; want 0", id)
	}
	got, ok := l.Lookup(domino(), NoParent)
	if !ok || got != id {
		t.Fatalf("Lookup = %d,%v; want %d,true", got, ok, id)
	}
	if _, ok := l.Lookup(domino(), 5); ok {
		t.Fatalf("Lookup with wrong parent unexpectedly found a shape")
	}
}

func TestRegisterDistinctByParent(t *testing.T) {
	l := New()
	top, _ := l.Register(domino(), NoParent, nil)
	child, err := l.Register([]group.Coord{{X: 0, Y: 0}}, top, []int{0, 1})
	if err != nil {
		t.Fatalf("Register child: %v", err)
	}
	if child == top {
		t.Fatalf("child id collided with top id")
	}
	got := l.Get(child)
	if got.Parent != top {
		t.Fatalf("child.Parent = %d; want %d", got.Parent, top)
	}
}

func TestRegisterRejectsForwardParent(t *testing.T) {
	l := New()
	if _, err := l.Register(domino(), 4, nil); err == nil {
		t.Fatalf("expected ErrBadParent for a parent id that does not exist yet")
	}
}

func TestAddSolutionRejectsDuplicate(t *testing.T) {
	l := New()
	id, _ := l.Register(domino(), NoParent, nil)
	sol := []group.Coord{{X: 0, Y: 0}}
	if err := l.AddSolution(id, sol); err != nil {
		t.Fatalf("AddSolution: %v", err)
	}
	if err := l.AddSolution(id, []group.Coord{{X: 0, Y: 0}}); err == nil {
		t.Fatalf("expected ErrDuplicateSolution")
	}
	if n := len(l.Get(id).Solutions); n != 1 {
		t.Fatalf("len(Solutions) = %d; want 1", n)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l := New()
	top, _ := l.Register(domino(), NoParent, nil)
	_ = l.AddSolution(top, []group.Coord{{X: 0, Y: 0}})
	_, _ = l.Register([]group.Coord{{X: 1, Y: 0}}, top, []int{0})

	dir := t.TempDir()
	path := filepath.Join(dir, "shape_db.json")
	if err := l.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if len(raw) == 0 {
		t.Fatalf("expected non-empty file")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", loaded.Len())
	}
	gotID, ok := loaded.Lookup(domino(), NoParent)
	if !ok || gotID != top {
		t.Fatalf("Lookup after reload = %d,%v", gotID, ok)
	}
	if !reflect.DeepEqual(loaded.Get(top).Solutions, l.Get(top).Solutions) {
		t.Fatalf("solutions did not round-trip")
	}
}

func TestValidateDAG(t *testing.T) {
	l := New()
	top, _ := l.Register([]group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, NoParent, nil)
	_, _ = l.Register([]group.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}}, top, []int{0, 1})
	if err := l.ValidateDAG(); err != nil {
		t.Fatalf("ValidateDAG: %v", err)
	}
}

func TestValidateDAGRejectsNonSubsetChild(t *testing.T) {
	l := New()
	top, _ := l.Register([]group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, NoParent, nil)
	l.shapes = append(l.shapes, &Shape{Group: []group.Coord{{X: 5, Y: 5}}, Parent: top})
	if err := l.ValidateDAG(); err == nil {
		t.Fatalf("expected ValidateDAG to reject a child not contained in its parent")
	}
}

func TestLetterMapAndParseSolution(t *testing.T) {
	tromino := []group.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	letterOf, cellOf, err := LetterMap(tromino)
	if err != nil {
		t.Fatalf("LetterMap: %v", err)
	}
	if letterOf[group.Coord{X: 0, Y: 0}] != '0' || letterOf[group.Coord{X: 2, Y: 0}] != '2' {
		t.Fatalf("letterOf = %v", letterOf)
	}

	active, err := ParseSolution(cellOf, "02")
	if err != nil {
		t.Fatalf("ParseSolution: %v", err)
	}
	want := []group.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}}
	if !reflect.DeepEqual(active, want) {
		t.Fatalf("active = %v; want %v", active, want)
	}

	if _, err := ParseSolution(cellOf, "00"); err == nil {
		t.Fatalf("expected ErrRepeatedLetter")
	}
	if _, err := ParseSolution(cellOf, "9"); err == nil {
		t.Fatalf("expected ErrUnknownLetter")
	}
}
