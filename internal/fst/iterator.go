package fst

import "bytes"

// Iterator is a single-pass, forward-only cursor over (key, value)
// pairs in strict ascending order (§4.6). It is the shared engine
// behind Reader.Iter, Reader.Range, and Reader.Search: every one of
// those is this same depth-first cursor parameterized by a lower/upper
// bound and an Automaton. Iterators hold a stack of frames, one per
// depth of the current path, and are not restartable once exhausted --
// the shape and naming of pointTo/Next/Seek below follow the
// FSTIterator in couchbase/vellum (retrieved as an fst_iterator.go
// reference), adapted to this package's node/automaton types.
type Iterator struct {
	r   *Reader
	aut Automaton

	lower Bound
	upper Bound

	nodesStack  []node
	keysStack   []byte
	resumeStack []int // index to resume transition scanning from, per frame
	valsStack   []uint64
	autStack    []int

	done bool
}

func newIterator(r *Reader, aut Automaton, lower, upper Bound) (*Iterator, error) {
	it := &Iterator{r: r, aut: aut, lower: lower, upper: upper}
	var start []byte
	if lower.kind != boundUnbounded {
		start = lower.key
	}
	if err := it.pointTo(start); err != nil {
		return nil, err
	}
	if lower.kind == boundExclusive {
		if k, _ := it.Current(); k != nil && bytes.Equal(k, lower.key) {
			if err := it.Next(); err != nil && err != ErrIteratorDone {
				return nil, err
			}
		}
	}
	return it, nil
}

// pointTo repositions the cursor at the first key >= target (the root
// is always part of the path, even for target == nil).
func (it *Iterator) pointTo(target []byte) error {
	root, err := it.r.root()
	if err != nil {
		return err
	}
	it.nodesStack = it.nodesStack[:0]
	it.keysStack = it.keysStack[:0]
	it.resumeStack = it.resumeStack[:0]
	it.valsStack = it.valsStack[:0]
	it.autStack = it.autStack[:0]
	it.done = false

	it.nodesStack = append(it.nodesStack, root)
	it.autStack = append(it.autStack, it.aut.Start())

	lastOffset := -1
	for j := 0; j < len(target); j++ {
		cur := it.nodesStack[len(it.nodesStack)-1]
		curAut := it.autStack[len(it.autStack)-1]

		idx, output, tgt, ok := cur.TransitionFor(target[j])
		if !ok {
			lastOffset = it.lastTransitionBefore(cur, target[j])
			break
		}
		nextAut := it.aut.Step(curAut, target[j])
		nextNode, err := decodeNode(it.r.data, tgt)
		if err != nil {
			return err
		}
		it.nodesStack = append(it.nodesStack, nextNode)
		it.keysStack = append(it.keysStack, target[j])
		it.resumeStack = append(it.resumeStack, idx)
		it.valsStack = append(it.valsStack, output)
		it.autStack = append(it.autStack, nextAut)
	}

	top := it.nodesStack[len(it.nodesStack)-1]
	topAut := it.autStack[len(it.autStack)-1]
	var advErr error
	if !top.Final() || !it.aut.IsMatch(topAut) || bytes.Compare(it.keysStack, target) < 0 {
		advErr = it.advance(lastOffset)
	} else {
		advErr = it.checkUpper()
	}
	// Landing on an empty result (no key in range, or the automaton
	// prunes everything) is a valid, merely-exhausted iterator, not a
	// failure to construct one -- only a real decoding error should
	// propagate out of pointTo.
	if advErr != nil && advErr != ErrIteratorDone {
		return advErr
	}
	return nil
}

// lastTransitionBefore returns the index of the last transition of cur
// whose label is < b, or -1 if none.
func (it *Iterator) lastTransitionBefore(cur node, b byte) int {
	c := cur.Cursor()
	last := -1
	for i := 0; i < cur.NumTransitions(); i++ {
		label, _, _, ok := c.Next()
		if !ok {
			break
		}
		if label < b {
			last = i
		}
	}
	return last
}

// Current returns the key/value pair the cursor currently sits on, or
// (nil, 0) if it isn't on a final node (only possible before the first
// advance completes, or after exhaustion).
func (it *Iterator) Current() ([]byte, uint64) {
	if it.done || len(it.nodesStack) == 0 {
		return nil, 0
	}
	top := it.nodesStack[len(it.nodesStack)-1]
	if !top.Final() {
		return nil, 0
	}
	var total uint64
	for _, v := range it.valsStack {
		total += v
	}
	key := it.keysStack
	if key == nil {
		// The empty key sits at the root; report it as a non-nil key.
		key = []byte{}
	}
	return key, total + top.FinalOutput()
}

// Next advances to the following key in ascending order.
func (it *Iterator) Next() error {
	if it.done {
		return ErrIteratorDone
	}
	return it.advance(-1)
}

// advance runs the depth-first search forward from lastOffset (the
// transition index last taken at the top frame, or -1 to mean "haven't
// taken one at this frame yet"), stopping at the next final node whose
// key is strictly greater than the key the cursor started this call at.
func (it *Iterator) advance(lastOffset int) error {
	startKey := append([]byte(nil), it.keysStack...)

	for {
		cur := it.nodesStack[len(it.nodesStack)-1]
		curAut := it.autStack[len(it.autStack)-1]

		if cur.Final() && it.aut.IsMatch(curAut) && bytes.Compare(it.keysStack, startKey) > 0 {
			return it.checkUpper()
		}

		nextIdx := lastOffset + 1
		if nextIdx < cur.NumTransitions() {
			label, output, tgt, ok := cur.TransitionAt(nextIdx)
			if !ok {
				return ErrFormat
			}
			nextAut := it.aut.Step(curAut, label)
			if it.aut.CanMatch(nextAut) {
				nextNode, err := decodeNode(it.r.data, tgt)
				if err != nil {
					return err
				}
				it.nodesStack = append(it.nodesStack, nextNode)
				it.keysStack = append(it.keysStack, label)
				it.resumeStack = append(it.resumeStack, nextIdx)
				it.valsStack = append(it.valsStack, output)
				it.autStack = append(it.autStack, nextAut)
				lastOffset = -1

				if it.upper.kind != boundUnbounded && it.pastUpper(it.keysStack) {
					it.done = true
					return ErrIteratorDone
				}
			} else {
				lastOffset = nextIdx
			}
			continue
		}

		if len(it.nodesStack) > 1 {
			it.nodesStack = it.nodesStack[:len(it.nodesStack)-1]
			it.keysStack = it.keysStack[:len(it.keysStack)-1]
			lastOffset = it.resumeStack[len(it.resumeStack)-1]
			it.resumeStack = it.resumeStack[:len(it.resumeStack)-1]
			it.valsStack = it.valsStack[:len(it.valsStack)-1]
			it.autStack = it.autStack[:len(it.autStack)-1]
			continue
		}

		it.done = true
		return ErrIteratorDone
	}
}

// pastUpper reports whether key has already gone beyond the upper
// bound: for Le, strictly greater; for Lt, greater-or-equal.
func (it *Iterator) pastUpper(key []byte) bool {
	cmp := bytes.Compare(key, it.upper.key)
	if it.upper.kind == boundExclusive {
		return cmp >= 0
	}
	return cmp > 0
}

func (it *Iterator) checkUpper() error {
	if it.upper.kind != boundUnbounded && it.pastUpper(it.keysStack) {
		it.done = true
		return ErrIteratorDone
	}
	return nil
}

// Seek advances the cursor to key, or the next key after it if key
// itself is absent. Seeking to a key at or before the current one
// leaves the cursor where it is. Seek returns ErrIteratorDone once the
// cursor is exhausted or has advanced past its upper bound.
func (it *Iterator) Seek(key []byte) error {
	if it.done {
		return ErrIteratorDone
	}
	if cur, _ := it.Current(); cur != nil && bytes.Compare(key, cur) <= 0 {
		return nil
	}
	if err := it.pointTo(key); err != nil {
		return err
	}
	if it.done {
		return ErrIteratorDone
	}
	return nil
}
