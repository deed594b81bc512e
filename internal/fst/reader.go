package fst

// Reader is a parsed, read-only view over a finished image (C5). It
// holds no mutable state beyond the footer it parsed at construction
// time, so any number of Readers, and any number of iterators derived
// from one, may be used concurrently across goroutines: every method
// below only reads the underlying byte slice.
type Reader struct {
	data []byte
	info footerInfo
}

// NewReader parses the footer of data and returns a Reader over it.
// data is never copied or mutated; the caller retains ownership (and
// must keep it alive for as long as the Reader or any iterator derived
// from it is in use).
func NewReader(data []byte) (*Reader, error) {
	info, err := parseFooter(data)
	if err != nil {
		return nil, err
	}
	return &Reader{data: data, info: info}, nil
}

// Len returns the number of keys recorded in the image's footer.
func (r *Reader) Len() int { return int(r.info.count) }

func (r *Reader) root() (node, error) {
	return decodeNode(r.data, r.info.root)
}

// Get walks the root's transitions matching key byte by byte. It
// reports the accumulated output on a hit (the sum of every transition
// output taken plus the terminal node's final output) and false on a
// miss.
func (r *Reader) Get(key []byte) (uint64, bool, error) {
	cur, err := r.root()
	if err != nil {
		return 0, false, err
	}
	total := semZero()
	for _, b := range key {
		_, output, target, ok := cur.TransitionFor(b)
		if !ok {
			return 0, false, nil
		}
		if total, err = semCombine(total, output); err != nil {
			return 0, false, err
		}
		cur, err = decodeNode(r.data, target)
		if err != nil {
			return 0, false, err
		}
	}
	if !cur.Final() {
		return 0, false, nil
	}
	total, err = semCombine(total, cur.FinalOutput())
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// Contains reports whether key is present, without computing its value.
func (r *Reader) Contains(key []byte) (bool, error) {
	_, ok, err := r.Get(key)
	return ok, err
}

// Iter returns an iterator over every (key, value) pair in ascending
// key order.
func (r *Reader) Iter() (*Iterator, error) {
	return r.Search(nil, Unbounded(), Unbounded())
}

// Range returns an iterator over the (key, value) pairs whose keys
// satisfy lower and upper.
func (r *Reader) Range(lower, upper Bound) (*Iterator, error) {
	return r.Search(nil, lower, upper)
}

// Search returns an automaton-guided iterator: a is stepped alongside
// the FST traversal and subtrees for which a.CanMatch returns false are
// pruned outright. A nil automaton behaves like Automaton Always().
func (r *Reader) Search(a Automaton, lower, upper Bound) (*Iterator, error) {
	if a == nil {
		a = Always()
	}
	return newIterator(r, a, lower, upper)
}
