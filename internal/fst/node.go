package fst

import "encoding/binary"

// Serialized node layout (§4.2). Nodes are written children-before-parents
// so that a transition's target is always at a smaller byte offset than
// the node it lives in; the serialized form stores that distance as a
// backward delta rather than an absolute offset, which is what lets
// finish() avoid a relocation pass.
//
//	byte     finalFlag   (0 or 1)
//	[uvarint finalOutput]  present only when finalFlag == 1
//	uvarint  numTransitions
//	numTransitions * (byte label, uvarint output, uvarint targetDelta)
//
// Transitions are written in ascending label order, which the builder
// guarantees by construction (keys are pushed in strictly ascending
// order, so any two transitions leaving a given state are discovered in
// ascending label order too).

// appendUvarint appends x to buf using the standard LEB128-style
// varint encoding and returns the extended slice.
func appendUvarint(buf []byte, x uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], x)
	return append(buf, tmp[:n]...)
}

// encodeNode serializes a resolved builder state (every arc's target
// already known) at the given self offset, appending to buf.
func encodeNode(buf []byte, st *builderState, selfOffset uint64) []byte {
	if st.final {
		buf = append(buf, 1)
		buf = appendUvarint(buf, st.finalOutput)
	} else {
		buf = append(buf, 0)
	}
	buf = appendUvarint(buf, uint64(len(st.arcs)))
	for _, a := range st.arcs {
		buf = append(buf, a.label)
		buf = appendUvarint(buf, a.output)
		buf = appendUvarint(buf, selfOffset-a.target)
	}
	return buf
}

// node is a read-only, zero-copy view of a single frozen node within an
// image. It holds no allocation beyond the fields below (the image
// slice itself is shared, not copied);
// transitions are decoded on demand via a transitionCursor so that a
// full scan of a node's transitions costs O(transitions) time and O(1)
// extra memory, per §4.2.
type node struct {
	data        []byte
	selfOffset  uint64
	final       bool
	finalOutput uint64
	numTrans    int
	transStart  int
}

// decodeNode parses the node whose header begins at offset within data.
func decodeNode(data []byte, offset uint64) (node, error) {
	pos := int(offset)
	if pos < 0 || pos >= len(data) {
		return node{}, ErrFormat
	}
	flag := data[pos]
	pos++
	var final bool
	var finalOutput uint64
	switch flag {
	case 0:
	case 1:
		final = true
		v, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return node{}, ErrFormat
		}
		finalOutput = v
		pos += n
	default:
		return node{}, ErrFormat
	}
	numTrans, n := binary.Uvarint(data[pos:])
	if n <= 0 {
		return node{}, ErrFormat
	}
	pos += n
	return node{
		data:        data,
		selfOffset:  offset,
		final:       final,
		finalOutput: finalOutput,
		numTrans:    int(numTrans),
		transStart:  pos,
	}, nil
}

// Final reports whether this node accepts the input consumed so far.
func (n node) Final() bool { return n.final }

// FinalOutput is the addend contributed when a path terminates here.
func (n node) FinalOutput() uint64 { return n.finalOutput }

// NumTransitions returns the number of outgoing transitions.
func (n node) NumTransitions() int { return n.numTrans }

// transitionCursor walks a node's transitions forward exactly once,
// decoding variable-width records as it goes.
type transitionCursor struct {
	n   node
	idx int
	pos int
}

// Cursor returns a fresh forward cursor over n's transitions.
func (n node) Cursor() transitionCursor {
	return transitionCursor{n: n, idx: 0, pos: n.transStart}
}

// Next decodes the next transition, or reports ok=false once exhausted.
func (c *transitionCursor) Next() (label byte, output uint64, target uint64, ok bool) {
	if c.idx >= c.n.numTrans {
		return 0, 0, 0, false
	}
	pos := c.pos
	label = c.n.data[pos]
	pos++
	out, n1 := binary.Uvarint(c.n.data[pos:])
	pos += n1
	delta, n2 := binary.Uvarint(c.n.data[pos:])
	pos += n2
	c.pos = pos
	c.idx++
	return label, out, c.n.selfOffset - delta, true
}

// TransitionAt decodes the i'th transition (0-indexed), scanning from
// the start of the transition table.
func (n node) TransitionAt(i int) (label byte, output uint64, target uint64, ok bool) {
	c := n.Cursor()
	for j := 0; j <= i; j++ {
		label, output, target, ok = c.Next()
		if !ok {
			return 0, 0, 0, false
		}
	}
	return label, output, target, true
}

// TransitionFor finds the transition leaving n labeled b, if any.
// Transitions are stored in ascending label order so the scan stops
// as soon as a larger label is seen.
func (n node) TransitionFor(b byte) (idx int, output uint64, target uint64, ok bool) {
	c := n.Cursor()
	for i := 0; i < n.numTrans; i++ {
		label, out, tgt, more := c.Next()
		if !more {
			break
		}
		if label == b {
			return i, out, tgt, true
		}
		if label > b {
			break
		}
	}
	return 0, 0, 0, false
}
