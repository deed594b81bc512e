package fst

// arc is one outgoing transition of a state still under construction.
// Exactly one arc per builderState may be "open" at a time (target
// unresolved, pointing at a live child still being extended); every
// other arc already has a resolved target offset because it was closed
// off the moment its subtree could no longer be extended (the next key
// diverged before reaching it).
type arc struct {
	label  byte
	output uint64
	target uint64 // absolute offset once resolved; meaningless while child != nil
	child  *builderState
}

// builderState is a transient (not-yet-frozen) state: the in-memory
// representation described in §4.2's "transient state" lifecycle.
type builderState struct {
	final       bool
	finalOutput uint64
	arcs        []arc
}
