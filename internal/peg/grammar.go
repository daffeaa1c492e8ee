package peg

// Grammar is a registry of named rules. Mutually recursive rules (an
// array contains elements, an element can be an array) cannot be built
// bottom-up, so a rule refers to another by name through Ref and the
// name is resolved against the registry at match time, after every rule
// has been defined.
type Grammar struct {
	rules map[string]Rule
}

// NewGrammar returns an empty rule registry.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]Rule)}
}

// Define registers r under name, replacing any previous definition, and
// returns r for convenient wiring.
func (g *Grammar) Define(name string, r Rule) Rule {
	g.rules[name] = r
	return r
}

// Rule returns the rule registered under name.
func (g *Grammar) Rule(name string) (Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Ref returns a rule that resolves name against the registry on every
// application. Referring to a name before it is defined is fine as long
// as the definition exists by the time matching starts.
func (g *Grammar) Ref(name string) Rule {
	return &refRule{g: g, name: name}
}

// Match applies the named rule to src at the given offset with the
// default depth limit.
func (g *Grammar) Match(name string, src []byte, at int) *Result {
	res, _ := g.MatchMaxDepth(name, src, at, DefaultMaxDepth)
	return res
}

// MatchMaxDepth applies the named rule with an explicit depth limit.
// The boolean reports whether the limit was hit.
func (g *Grammar) MatchMaxDepth(name string, src []byte, at, maxDepth int) (*Result, bool) {
	r, ok := g.rules[name]
	if !ok {
		return Fail(at, at, name), false
	}
	return MatchMaxDepth(r, src, at, maxDepth)
}

type refRule struct {
	g    *Grammar
	name string
}

func (r *refRule) Kind() RuleKind { return KindRef }

// Name returns the referenced rule name.
func (r *refRule) Name() string { return r.name }

func (r *refRule) match(m *matcher, at int) *Result {
	sub, ok := r.g.rules[r.name]
	if !ok {
		return Fail(at, at, r.name)
	}
	return m.apply(sub, at)
}
