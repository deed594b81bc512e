package fst

import "bytes"

// SetOp identifies which of the four set-algebra operations (§4.8) a
// merge run performs.
type SetOp int

const (
	OpUnion SetOp = iota
	OpIntersection
	OpDifference
	OpSymmetricDifference
)

// operandCursor tracks one operand's position during a streaming
// k-way merge: its current (key, value) and whether it has any pairs
// left.
type operandCursor struct {
	it   *Iterator
	key  []byte
	val  uint64
	live bool
}

func newOperandCursor(it *Iterator) (*operandCursor, error) {
	c := &operandCursor{it: it}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *operandCursor) load() error {
	k, v := c.it.Current()
	if k == nil {
		c.live = false
		return nil
	}
	c.key, c.val, c.live = k, v, true
	return nil
}

func (c *operandCursor) advance() error {
	err := c.it.Next()
	if err == ErrIteratorDone {
		c.live = false
		return nil
	}
	if err != nil {
		return err
	}
	return c.load()
}

// MergeSetAlgebra runs a streaming k-way merge over iters according to
// op and policy, pushing the result into dst. This is the shared
// engine behind Map/Set Union, Intersection, Difference, and
// SymmetricDifference: at each round it finds the smallest key any
// live operand still holds, decides whether the combination of
// operands currently sitting on that key satisfies op, and if so
// writes one (key, value) pair before advancing every operand that
// was sitting on that key.
func MergeSetAlgebra(dst *Builder, op SetOp, policy Policy, iters []*Iterator) error {
	cursors := make([]*operandCursor, len(iters))
	for i, it := range iters {
		c, err := newOperandCursor(it)
		if err != nil {
			return err
		}
		cursors[i] = c
	}

	for {
		minKey, any := smallestLiveKey(cursors)
		if !any {
			return nil
		}

		matched := operandsAt(cursors, minKey)
		if setOpIncludes(op, matched, len(cursors)) {
			values := make([]uint64, 0, len(matched))
			for _, idx := range matched {
				values = append(values, cursors[idx].val)
			}
			if err := dst.Push(minKey, selectValue(policy, values)); err != nil {
				return err
			}
		}

		for _, idx := range matched {
			if err := cursors[idx].advance(); err != nil {
				return err
			}
		}
	}
}

func smallestLiveKey(cursors []*operandCursor) ([]byte, bool) {
	var min []byte
	found := false
	for _, c := range cursors {
		if !c.live {
			continue
		}
		if !found || bytes.Compare(c.key, min) < 0 {
			min = c.key
			found = true
		}
	}
	return min, found
}

// operandsAt returns the indices of cursors currently sitting exactly on key.
func operandsAt(cursors []*operandCursor, key []byte) []int {
	var idx []int
	for i, c := range cursors {
		if c.live && bytes.Equal(c.key, key) {
			idx = append(idx, i)
		}
	}
	return idx
}

func setOpIncludes(op SetOp, present []int, numOperands int) bool {
	switch op {
	case OpUnion:
		return len(present) > 0
	case OpIntersection:
		return len(present) == numOperands
	case OpDifference:
		// Keep a key only when the first operand holds it and no
		// other operand does.
		if len(present) != 1 {
			return false
		}
		return present[0] == 0
	case OpSymmetricDifference:
		return len(present)%2 == 1
	default:
		return false
	}
}
