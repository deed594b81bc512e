package fst

import "bytes"

// Builder is the streaming FST minimizer (C4). Keys must be pushed in
// strictly ascending lexicographic order; Builder maintains only the
// stack of transient states spelling out the previously pushed key, so
// its working set is O(longest current key + register size) as
// required by §5.
type Builder struct {
	reg      *register
	buf      []byte
	prevKey  []byte
	hasPrev  bool
	stack    []*builderState // stack[d] is the state reached after d bytes of prevKey
	count    uint64
	finished bool
}

// NewBuilder creates a Builder with the default register capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(DefaultRegisterCapacity)
}

// NewBuilderWithCapacity creates a Builder whose state register is
// bounded to the given number of distinct fingerprints.
func NewBuilderWithCapacity(registerCapacity int) *Builder {
	return &Builder{
		reg:   newRegister(registerCapacity),
		stack: []*builderState{{}}, // stack[0] is the in-progress root
	}
}

// Push inserts (key, value) into the FST under construction. key must
// be strictly greater than the previously pushed key.
func (b *Builder) Push(key []byte, value uint64) error {
	if b.finished {
		return ErrFrozen
	}
	if b.hasPrev {
		switch bytes.Compare(key, b.prevKey) {
		case 0:
			return ErrDuplicateKey
		case -1:
			return ErrOrder
		}
	}

	prefixLen := commonPrefixLen(b.prevKey, key)

	// Freeze every state beyond the shared prefix, bottom-up, resolving
	// each one's address into the arc that leads to it from its parent.
	if err := b.freezeBeyond(prefixLen); err != nil {
		return err
	}
	b.stack = b.stack[:prefixLen+1]

	// Walk the shared-prefix arcs, pushing back any excess output per
	// §4.4 step 4 so that the sum along the eventual accepting path for
	// key equals exactly value.
	remaining := value
	for d := 0; d < prefixLen; d++ {
		st := b.stack[d]
		last := &st.arcs[len(st.arcs)-1]
		common := semCommonPrefix(last.output, remaining)
		if common < last.output {
			excess := semSubtractPrefix(last.output, common)
			child := st.arcs[len(st.arcs)-1].child
			if child == nil {
				// The arc was already resolved in a previous push;
				// that can only happen if the subtree leaving it is
				// closed, which would mean prefixLen extends past a
				// frozen boundary -- an invariant violation.
				return ErrFormat
			}
			pushExcessInto(child, excess)
			last.output = common
		}
		remaining -= common
	}

	// Extend the stack with fresh states for the bytes of key beyond
	// the shared prefix. The first new arc -- the one hanging off the
	// last shared state -- carries the entire remaining output, so the
	// value is pushed as far toward the root as the key's own bytes
	// allow; every arc after it, and the eventual final state, carries
	// zero. This is what lets two keys whose suffixes coincide end up
	// sharing those suffix states: nothing about the value is left
	// behind to make an otherwise-identical subtree differ.
	for i := prefixLen; i < len(key); i++ {
		parent := b.stack[len(b.stack)-1]
		child := &builderState{}
		parent.arcs = append(parent.arcs, arc{label: key[i], output: remaining, child: child})
		b.stack = append(b.stack, child)
		remaining = 0
	}

	terminal := b.stack[len(b.stack)-1]
	terminal.final = true
	terminal.finalOutput = remaining

	if !b.hasPrev {
		b.prevKey = append([]byte(nil), key...)
		b.hasPrev = true
	} else {
		b.prevKey = append(b.prevKey[:0], key...)
	}
	b.count++
	return nil
}

// pushExcessInto adds excess to every one of child's own arc outputs
// and to its final output if it is final -- the "add the stolen amount
// to all sibling transitions' outputs" rule from §4.4 step 4. child is
// still mutable (not yet frozen), so this rewrite is free.
func pushExcessInto(child *builderState, excess uint64) {
	for i := range child.arcs {
		child.arcs[i].output += excess
	}
	if child.final {
		child.finalOutput += excess
	}
}

// freezeBeyond freezes every state at depth > prefixLen in the stack,
// deepest first, resolving each one's parent arc to the new offset.
func (b *Builder) freezeBeyond(prefixLen int) error {
	for d := len(b.stack) - 1; d > prefixLen; d-- {
		offset, err := b.freezeState(b.stack[d])
		if err != nil {
			return err
		}
		parent := b.stack[d-1]
		last := &parent.arcs[len(parent.arcs)-1]
		last.target = offset
		last.child = nil
	}
	return nil
}

// freezeState serializes st into the image, sharing storage with an
// existing equivalent state when the register already has one.
func (b *Builder) freezeState(st *builderState) (uint64, error) {
	for i := range st.arcs {
		if st.arcs[i].child != nil {
			return 0, ErrFormat // caller must freeze children first
		}
	}
	canon := canonicalize(st)
	if offset, ok := b.reg.lookup(canon); ok {
		return offset, nil
	}
	offset := uint64(len(b.buf))
	b.buf = encodeNode(b.buf, st, offset)
	b.reg.insert(canon, offset)
	return offset, nil
}

// Finish freezes every remaining transient state (including the root),
// appends the footer, and returns the serialized image. The Builder
// must not be used afterward.
func (b *Builder) Finish() ([]byte, error) {
	if b.finished {
		return nil, ErrFrozen
	}
	if err := b.freezeBeyond(0); err != nil {
		return nil, err
	}
	rootOffset, err := b.freezeState(b.stack[0])
	if err != nil {
		return nil, err
	}
	b.finished = true
	return appendFooter(b.buf, rootOffset, b.count), nil
}

// Len returns the number of keys pushed so far.
func (b *Builder) Len() int { return int(b.count) }

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
