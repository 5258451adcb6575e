// Package nurikabe solves a very large Nurikabe-like grid puzzle by
// constraint propagation over curated per-shape candidate solutions.
//
// The grid is a single contiguous byte buffer (~1.56 GB at full size)
// partitioned by numeric clue tiles into connected groups of
// undetermined cells. Each group's canonical polyomino form keys into
// a shape library of enumerated candidate solutions; the solver
// commits exactly those cells that every still-feasible candidate
// agrees on, and cascades the resulting clue changes to neighboring
// groups.
//
// Everything is organized under small single-concern packages:
//
//	tile/       — the shared byte tile alphabet
//	grid/       — contiguous 2D grid store, raw-file persistence
//	group/      — 4-connected flood-fill and canonical normalization
//	shape/      — append-only shape library, index, specialization DAG, curation
//	groupcache/ — (x,y) → (origin, shape) memoization with binary persistence
//	uniqueness/ — per-group feasibility check and candidate intersection
//	propagate/  — the work-queue driver that commits forced cells
//	trial/      — copy-on-write branch search over candidate solutions
//	discover/   — parallel read-only shape-discovery scan
//	datfile/    — unpacker for the packed source format
//	flagdecode/ — recovers the embedded message from a solved grid
//	render/     — PNG and terminal windows for operator inspection
//
// A tiny example: the tromino below has two candidate solutions that
// both mark its left cell ACTIVE, so that cell is forced and the two
// undetermined cells on the right become a child shape of their own.
//
//	■ ? ?
//
// The operator CLI lives in cmd/nurikabecli.
package nurikabe
