package peg

// Result records one attempt of a rule at an input offset. Every rule
// application produces a fresh Result; results are never mutated after
// construction and form a tree owned by the top-level match.
type Result struct {
	// Pos is the offset the attempt started at.
	Pos int
	// Len is the number of bytes consumed. -1 means the attempt failed.
	Len int
	// Err is the furthest offset reached by this attempt or any of its
	// sub-attempts, including ones that were ultimately discarded. The
	// deepest such offset across a whole parse is the reported error
	// position ("farthest failure wins").
	Err int
	// Tag is the grammar label for this node; may be empty.
	Tag string
	// Kids are the sub-results in match order; empty for terminals.
	Kids []*Result
	// Text is the raw matched slice; set only by terminal matchers.
	Text string
}

// Fail constructs a failing result for the given position, carrying the
// furthest error offset seen while attempting the match.
func Fail(pos, err int, tag string) *Result {
	return &Result{Pos: pos, Len: -1, Err: err, Tag: tag}
}

// Failed reports whether r represents a failed attempt.
func (r *Result) Failed() bool {
	return r.Len == -1
}

// End returns the offset one past the last consumed byte. Meaningful
// only for successful results.
func (r *Result) End() int {
	return r.Pos + r.Len
}
