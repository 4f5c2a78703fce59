// Package board models a sliding-block (Klotski) puzzle configuration and
// its single-move transitions.
//
// A Board owns an ordered collection of rectangular Blocks on a bounded
// grid. Movement is one grid cell at a time along one axis; legality is
// decided by IsAreaFree with two deliberate exceptions that let the
// designated winning block slide partway out through the configured exit.
// Boards follow a strict clone-on-write discipline: NextStates never mutates
// the receiver, it clones the whole board and moves one block on the clone,
// so every published board value is immutable from its owner's point of
// view.
//
// The canonical signature returned by Hash is the identity of a state: it is
// invariant under block insertion order and is the key the decision package
// deduplicates on.
package board
