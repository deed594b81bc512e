package fst

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRegisterCapacity bounds the number of distinct structural
// fingerprints the register remembers. Per §4.3 a bounded register is
// acceptable; it trades away some suffix sharing (and therefore some
// compression) for a fixed memory ceiling during very large builds.
const DefaultRegisterCapacity = 1 << 16

// candidate is one fingerprint bucket entry: the canonical encoding of
// a previously frozen state (for exact-match verification past a hash
// collision) and the offset at which it was written.
type candidate struct {
	canon  []byte
	offset uint64
}

// register is the builder's state-register (dedup cache, C3): a
// content-addressed index from a frozen state's structural fingerprint
// to the byte offset of an equivalent, already-serialized state. It is
// what gives the builder suffix sharing: two subtrees that are
// byte-for-byte identical once frozen collapse to a single physical
// node referenced from multiple parents.
type register struct {
	cache *lru.Cache[uint64, []candidate]
}

// newRegister builds a register bounded to capacity distinct
// fingerprints (not distinct states — a fingerprint bucket may hold a
// handful of colliding-but-distinct canonical forms).
func newRegister(capacity int) *register {
	c, err := lru.New[uint64, []candidate](capacity)
	if err != nil {
		// lru.New only fails for capacity <= 0; fall back to the
		// default rather than propagating a constructor error for
		// what is purely an internal sizing concern.
		c, _ = lru.New[uint64, []candidate](DefaultRegisterCapacity)
	}
	return &register{cache: c}
}

// canonicalize builds the hashable, comparable fingerprint input for a
// resolved builder state: finality, final output, and the ordered
// (label, output, absolute target offset) triples, exactly as §4.3
// defines state equivalence. This is deliberately distinct from the
// compact serialized node form in node.go, which stores relative
// deltas that depend on where the node ends up living in the image —
// two equivalent states frozen at different offsets must still hash
// and compare equal here even though their serialized bytes differ.
func canonicalize(st *builderState) []byte {
	buf := make([]byte, 0, 10+len(st.arcs)*18)
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
		buf = appendUvarint(buf, a.target)
	}
	return buf
}

// lookup returns the offset of an already-frozen state structurally
// equivalent to canon, if the register still remembers one.
func (r *register) lookup(canon []byte) (uint64, bool) {
	fp := xxhash.Sum64(canon)
	bucket, ok := r.cache.Get(fp)
	if !ok {
		return 0, false
	}
	for _, c := range bucket {
		if bytes.Equal(c.canon, canon) {
			return c.offset, true
		}
	}
	return 0, false
}

// insert remembers that the state with fingerprint input canon now
// lives at offset.
func (r *register) insert(canon []byte, offset uint64) {
	fp := xxhash.Sum64(canon)
	bucket, _ := r.cache.Get(fp)
	stored := make([]byte, len(canon))
	copy(stored, canon)
	bucket = append(bucket, candidate{canon: stored, offset: offset})
	r.cache.Add(fp, bucket)
}
