package parser

import (
	"fmt"
	"strconv"

	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
	"github.com/pegtools/jsonpeg/internal/peg"
)

// Decode parses src as a single JSON element starting at offset 0 and
// returns its value tree. On a syntax failure the returned error wraps
// *errors.SyntaxError carrying the farthest offset the grammar reached;
// recover it with errors.Offset. Trailing bytes after a complete
// top-level element are ignored.
func Decode(src []byte) (*models.Value, error) {
	return DecodeMaxDepth(src, peg.DefaultMaxDepth)
}

// DecodeMaxDepth is Decode with an explicit limit on grammar recursion.
// Exceeding the limit fails fast with errors.ErrMaxDepth instead of
// exhausting the call stack.
func DecodeMaxDepth(src []byte, maxDepth int) (*models.Value, error) {
	res, tooDeep := grammar.MatchMaxDepth(tagElement, src, 0, maxDepth)
	if tooDeep {
		return nil, errors.NewParsingError(
			fmt.Sprintf("nesting exceeds the maximum depth of %d", maxDepth),
			errors.ErrMaxDepth,
		)
	}
	if res.Failed() {
		return nil, errors.NewParsingError(
			fmt.Sprintf("syntax error at offset %d", res.Err),
			&errors.SyntaxError{Offset: res.Err},
		)
	}
	return decodeElement(res)
}

// decodeElement turns an "element" match node into a value, dispatching
// on the tag of the branch the alternation committed to. An unknown tag
// means the grammar and this dispatch have drifted apart; that surfaces
// as an internal error, never as a user-facing decode failure.
func decodeElement(el *peg.Result) (*models.Value, error) {
	branch := el.Kids[0]
	switch branch.Tag {
	case tagBoolean:
		return models.Boolean(branch.Kids[0].Text == "true"), nil
	case tagNumber:
		n, err := parseNumber(branch.Text)
		if err != nil {
			return nil, errors.NewDecodeError(
				fmt.Sprintf("invalid number literal %q", branch.Text), err)
		}
		return models.Number(n), nil
	case tagString:
		return models.String(unquote(branch.Text)), nil
	case tagArray:
		v := models.Array()
		for _, e := range branch.Kids[2].Kids {
			item, err := decodeElement(e.Kids[0])
			if err != nil {
				return nil, err
			}
			v.Append(item)
		}
		return v, nil
	case tagObject:
		om := models.NewOrderedMap()
		for _, e := range branch.Kids[2].Kids {
			member := e.Kids[0]
			val, err := decodeElement(member.Kids[4])
			if err != nil {
				return nil, err
			}
			om.Set(unquote(member.Kids[0].Text), val)
		}
		return models.Object(om), nil
	}
	return nil, errors.NewInternalError(
		fmt.Sprintf("unknown grammar tag %q", branch.Tag), errors.ErrUnknownTag)
}

// unquote strips the surrounding quote delimiters. Escape sequences in
// the payload are left raw: the source literal \n decodes to the two
// characters backslash and n.
func unquote(s string) string {
	return s[1 : len(s)-1]
}

// parseNumber converts the matched run to a float64. The run is a
// lenient superset of JSON numbers ("1.2.3" matches), so conversion
// takes the longest parseable prefix, like C's strtod family: "1.2.3"
// yields 1.2. Text with no parseable prefix at all (".", "..") is a
// decode error.
func parseNumber(text string) (float64, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return n, nil
	}
	for end := len(text) - 1; end > 0; end-- {
		if p, perr := strconv.ParseFloat(text[:end], 64); perr == nil {
			return p, nil
		}
	}
	return 0, err
}
