// Package gridastar finds shortest paths on uniform-cost grids with A*.
//
// It exposes three entry points:
//
//   - FindPath: the positional form, returning only the path.
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Moves are up, down, left and right with cost 1 and the heuristic is the Manhattan
// distance to the goal, so every returned path is a shortest one. The frontier is a binary
// heap ordered by F, then H, then discovery order; when several shortest paths exist that
// order decides which one is returned.
//
// Each call builds its own node table sized from the grid and discards it on return. A
// search runs on the calling goroutine and never blocks.
package gridastar
