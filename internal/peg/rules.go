package peg

import "bytes"

// RuleKind identifies the concrete variant of a Rule. Rules are a closed
// set of combinator kinds rather than opaque functions, so a grammar can
// be inspected and tested node by node.
type RuleKind int

const (
	KindToken RuleKind = iota
	KindWhitespace
	KindNumber
	KindString
	KindSequence
	KindRepeat
	KindChoice
	KindRef
)

func (k RuleKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindWhitespace:
		return "whitespace"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindRepeat:
		return "repeat"
	case KindChoice:
		return "choice"
	case KindRef:
		return "ref"
	}
	return "unknown"
}

// DefaultMaxDepth bounds rule-application recursion when no explicit
// limit is given. The counter counts rule applications, not input
// nesting levels; a handful of applications happen per JSON nesting
// level, so this still admits deeply nested documents while keeping a
// hostile input from exhausting the call stack.
const DefaultMaxDepth = 4096

// Rule is one node of a grammar: a pure function from (source, offset)
// to a Result. Rules hold no mutable state; composition state lives in
// the matcher that drives an individual parse attempt.
type Rule interface {
	Kind() RuleKind
	match(m *matcher, at int) *Result
}

// matcher carries per-attempt state: the input buffer and the recursion
// depth guard.
type matcher struct {
	src      []byte
	depth    int
	maxDepth int
	tooDeep  bool
}

func (m *matcher) apply(r Rule, at int) *Result {
	if m.depth >= m.maxDepth {
		m.tooDeep = true
		return Fail(at, at, "")
	}
	m.depth++
	res := r.match(m, at)
	m.depth--
	return res
}

// Match applies r to src at the given offset with the default depth
// limit.
func Match(r Rule, src []byte, at int) *Result {
	res, _ := MatchMaxDepth(r, src, at, DefaultMaxDepth)
	return res
}

// MatchMaxDepth applies r with an explicit depth limit. The boolean
// reports whether the limit was hit, in which case the result is a
// failure at the offset where matching was cut off.
func MatchMaxDepth(r Rule, src []byte, at, maxDepth int) (*Result, bool) {
	m := &matcher{src: src, maxDepth: maxDepth}
	res := m.apply(r, at)
	return res, m.tooDeep
}

type tokenRule struct {
	text string
	tag  string
}

// Token matches text byte-for-byte at the current offset.
func Token(text, tag string) Rule {
	return &tokenRule{text: text, tag: tag}
}

func (r *tokenRule) Kind() RuleKind { return KindToken }

func (r *tokenRule) match(m *matcher, at int) *Result {
	if at <= len(m.src) && bytes.HasPrefix(m.src[at:], []byte(r.text)) {
		return &Result{Pos: at, Len: len(r.text), Err: at, Tag: r.tag, Text: r.text}
	}
	return Fail(at, at, r.tag)
}

type whitespaceRule struct{}

// Whitespace matches a maximal run of space, tab, carriage return, line
// feed and comma characters. It always succeeds; the run may be empty.
// Treating comma as whitespace is what lets list and member separators
// fall out of whitespace skipping instead of a dedicated separator rule.
func Whitespace() Rule {
	return whitespaceRule{}
}

func (whitespaceRule) Kind() RuleKind { return KindWhitespace }

func (whitespaceRule) match(m *matcher, at int) *Result {
	c := at
	for c < len(m.src) {
		switch m.src[c] {
		case ' ', '\t', '\r', '\n', ',':
			c++
			continue
		}
		break
	}
	return &Result{Pos: at, Len: c - at, Err: c, Tag: "ws"}
}

type numberRule struct{}

// NumberRun matches a maximal run of ASCII digits and '.' characters.
// It fails only when no characters are consumed. The run is a lenient
// superset of valid JSON numbers: "1.2.3" and ".5" both match.
func NumberRun() Rule {
	return numberRule{}
}

func (numberRule) Kind() RuleKind { return KindNumber }

func (numberRule) match(m *matcher, at int) *Result {
	c := at
	for c < len(m.src) && (m.src[c] >= '0' && m.src[c] <= '9' || m.src[c] == '.') {
		c++
	}
	if c == at {
		return Fail(at, at, "number")
	}
	return &Result{Pos: at, Len: c - at, Err: c, Tag: "number", Text: string(m.src[at:c])}
}

type stringRule struct{}

// StringRun matches a double-quoted run. A backslash unconditionally
// skips the following byte without interpreting it; no escape decoding
// happens here or anywhere downstream. The matched text includes both
// quote delimiters. Fails if the buffer ends before the closing quote.
func StringRun() Rule {
	return stringRule{}
}

func (stringRule) Kind() RuleKind { return KindString }

func (stringRule) match(m *matcher, at int) *Result {
	if at >= len(m.src) || m.src[at] != '"' {
		return Fail(at, at, "string")
	}
	for c := at + 1; ; c++ {
		if c >= len(m.src) {
			return Fail(at, c, "string")
		}
		if m.src[c] == '\\' {
			c++
			continue
		}
		if m.src[c] == '"' {
			return &Result{Pos: at, Len: c + 1 - at, Err: c, Tag: "string", Text: string(m.src[at : c+1])}
		}
	}
}

type sequenceRule struct {
	rules []Rule
	tag   string
}

// Sequence applies each rule in order, each starting where the previous
// one ended. The first sub-rule failure fails the whole sequence; rules
// after it are not attempted and already-matched rules are not
// backtracked. The failure carries the maximum error offset seen across
// every attempted sub-rule, including the failing one.
func Sequence(tag string, rules ...Rule) Rule {
	return &sequenceRule{rules: rules, tag: tag}
}

func (r *sequenceRule) Kind() RuleKind { return KindSequence }

func (r *sequenceRule) Rules() []Rule { return r.rules }

func (r *sequenceRule) match(m *matcher, at int) *Result {
	i := at
	kids := make([]*Result, 0, len(r.rules))
	for _, sub := range r.rules {
		a := m.apply(sub, i)
		if a.Failed() {
			kids = append(kids, a)
			err := at
			for _, k := range kids {
				if k.Err > err {
					err = k.Err
				}
			}
			return Fail(a.Pos, err, a.Tag)
		}
		i += a.Len
		kids = append(kids, a)
	}
	return &Result{Pos: at, Len: i - at, Err: at, Tag: r.tag, Kids: kids}
}

type repeatRule struct {
	rule Rule
	tag  string
}

// Repeat applies rule as many times as it succeeds, each application
// starting where the previous one ended. Repeat itself never fails: it
// stops and succeeds when the rule fails, when the next application
// would run past the end of the buffer, or when an application consumes
// nothing. The last guard matters: a wrapped rule that succeeds with a
// zero-length match would otherwise be retried at the same offset
// forever.
func Repeat(tag string, rule Rule) Rule {
	return &repeatRule{rule: rule, tag: tag}
}

func (r *repeatRule) Kind() RuleKind { return KindRepeat }

func (r *repeatRule) Rule() Rule { return r.rule }

func (r *repeatRule) match(m *matcher, at int) *Result {
	size := len(m.src)
	i := at
	var kids []*Result
	for {
		a := m.apply(r.rule, i)
		if a.Failed() || i+a.Len >= size || a.Len == 0 {
			return &Result{Pos: at, Len: i - at, Err: a.Err, Tag: r.tag, Kids: kids}
		}
		i += a.Len
		kids = append(kids, a)
	}
}

type choiceRule struct {
	rules []Rule
	tag   string
}

// Choice tries each rule in order at the same offset and commits to the
// first success, wrapping it as the single child of a node carrying the
// choice's tag, so the chosen branch stays distinguishable by its
// child's tag. If every branch fails, the failure carries the maximum
// error offset across all attempted branches.
func Choice(tag string, rules ...Rule) Rule {
	return &choiceRule{rules: rules, tag: tag}
}

func (r *choiceRule) Kind() RuleKind { return KindChoice }

func (r *choiceRule) Rules() []Rule { return r.rules }

func (r *choiceRule) match(m *matcher, at int) *Result {
	err := at
	for _, sub := range r.rules {
		a := m.apply(sub, at)
		if !a.Failed() {
			return &Result{Pos: at, Len: a.Len, Err: at, Tag: r.tag, Kids: []*Result{a}}
		}
		if a.Err > err {
			err = a.Err
		}
	}
	return Fail(at, err, r.tag)
}
