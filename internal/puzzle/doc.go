// Package puzzle holds the solver registry and the small parsing helpers
// shared by the per-day solver packages.
//
// Each day lives in its own package and knows nothing about the others;
// the registry only maps a day number to its Solver.
package puzzle
