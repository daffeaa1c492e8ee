package parser

import "github.com/pegtools/jsonpeg/internal/peg"

// Tags the decoder dispatches on. The primitive matchers fix "number"
// and "string" themselves; the rest are assigned here.
const (
	tagBoolean = "boolean"
	tagNumber  = "number"
	tagString  = "string"
	tagArray   = "array"
	tagObject  = "object"
	tagElement = "element"
)

// newGrammar wires the JSON grammar:
//
//	boolean = "true" / "false"
//	member  = string ws ":" ws element
//	array   = "[" ws (element ws)* ws "]"
//	object  = "{" ws (member ws)* ws "}"
//	element = array / object / string / boolean / number
//
// Commas are whitespace, so element and member separators fall out of
// whitespace skipping: "[1 2 3]" and "[1,2,3]" parse identically. There
// is no null literal; "null" is a syntax error.
func newGrammar() *peg.Grammar {
	g := peg.NewGrammar()
	ws := peg.Whitespace()
	boolean := peg.Choice(tagBoolean, peg.Token("true", ""), peg.Token("false", ""))
	number := peg.NumberRun()
	str := peg.StringRun()
	member := peg.Sequence("", str, ws, peg.Token(":", ""), ws, g.Ref(tagElement))
	array := peg.Sequence(tagArray,
		peg.Token("[", ""), ws,
		peg.Repeat("", peg.Sequence("", g.Ref(tagElement), ws)),
		ws, peg.Token("]", ""))
	object := peg.Sequence(tagObject,
		peg.Token("{", ""), ws,
		peg.Repeat("", peg.Sequence("", member, ws)),
		ws, peg.Token("}", ""))
	g.Define(tagElement, peg.Choice(tagElement, array, object, str, boolean, number))
	return g
}

var grammar = newGrammar()
