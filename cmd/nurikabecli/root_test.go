package main

import (
	"reflect"
	"testing"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12,34")
	if err != nil {
		t.Fatalf("parsePoint: %v", err)
	}
	if p != [2]int{12, 34} {
		t.Fatalf("got %v; want [12 34]", p)
	}
	if _, err := parsePoint("12"); err == nil {
		t.Fatalf("expected error for missing y")
	}
	if _, err := parsePoint("a,b"); err == nil {
		t.Fatalf("expected error for non-numeric point")
	}
}

func TestParseSeedsPointsAndRanges(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want [][2]int
	}{
		{
			name: "single point",
			args: []string{"3,4"},
			want: [][2]int{{3, 4}},
		},
		{
			name: "range",
			args: []string{"0..2,5..5"},
			want: [][2]int{{0, 5}, {1, 5}, {2, 5}},
		},
		{
			name: "range with step",
			args: []string{"0..4,1..1:2"},
			want: [][2]int{{0, 1}, {2, 1}, {4, 1}},
		},
		{
			name: "mixed",
			args: []string{"9,9", "1..1,2..3"},
			want: [][2]int{{9, 9}, {1, 2}, {1, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSeeds(tt.args)
			if err != nil {
				t.Fatalf("parseSeeds(%v): %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseSeeds(%v) = %v; want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseSeedsRejectsBadInput(t *testing.T) {
	for _, arg := range []string{"1..0,2..3", "0..2,1..1:0", "0..2", "x..y,0..1"} {
		if _, err := parseSeeds([]string{arg}); err == nil {
			t.Fatalf("parseSeeds(%q): expected error", arg)
		}
	}
}
