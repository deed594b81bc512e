package fst

// boundKind distinguishes the three shapes a range endpoint can take.
type boundKind int

const (
	boundUnbounded boundKind = iota
	boundInclusive
	boundExclusive
)

// Bound is one endpoint of a range scan (§4.6): unbounded, or a key
// compared either inclusively (ge/le) or exclusively (gt/lt).
type Bound struct {
	kind boundKind
	key  []byte
}

// Unbounded places no constraint on this side of the range.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// Ge bounds the range to keys greater than or equal to key.
func Ge(key []byte) Bound { return Bound{kind: boundInclusive, key: key} }

// Gt bounds the range to keys strictly greater than key.
func Gt(key []byte) Bound { return Bound{kind: boundExclusive, key: key} }

// Le bounds the range to keys less than or equal to key.
func Le(key []byte) Bound { return Bound{kind: boundInclusive, key: key} }

// Lt bounds the range to keys strictly less than key.
func Lt(key []byte) Bound { return Bound{kind: boundExclusive, key: key} }
