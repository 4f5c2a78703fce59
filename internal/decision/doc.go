// Package decision builds the full reachable-state graph of a puzzle: one
// node per distinct board signature, one directed edge per observed
// single-move transition, labeled with a human-readable move description.
//
// The traversal is exhaustive breadth-first search, not a solver — there is
// no heuristic, no shortest-path bias and no cutoff. Memory grows with the
// number of distinct reachable states.
package decision
