package encoder

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
)

// DefaultMaxDepth bounds the encoding walk; a cyclic or absurdly deep
// tree fails fast instead of exhausting the call stack.
const DefaultMaxDepth = 512

// Encoder pretty-prints value trees. Output is deterministic for a
// given tree and indent width.
type Encoder struct {
	// Indent is the number of spaces added per nesting level.
	Indent int
	// MaxDepth is the maximum nesting depth accepted before failing.
	MaxDepth int
}

// New returns an Encoder with the standard 4-space indent.
func New() *Encoder {
	return &Encoder{Indent: 4, MaxDepth: DefaultMaxDepth}
}

// Encode renders v as pretty-printed text and is the package-level
// shorthand for New().Encode(v).
func Encode(v *models.Value) (string, error) {
	return New().Encode(v)
}

// Encode renders v as pretty-printed text: arrays and objects open on
// their own line, every element sits one level deeper, an object
// member's value sits one level below its key line, a comma+newline
// follows every element but the last, and the whole output ends with a
// newline.
//
// String payloads are emitted raw between quotes. A payload containing
// a quote or backslash therefore produces text that does not re-parse;
// use Compact for escaping-correct output.
func (e *Encoder) Encode(v *models.Value) (string, error) {
	var buf bytes.Buffer
	if err := e.encode(&buf, v, "", false, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Encoder) encode(buf *bytes.Buffer, v *models.Value, tab string, comma bool, depth int) error {
	if depth > e.MaxDepth {
		return errors.NewEncodeError(
			fmt.Sprintf("value nesting exceeds the maximum depth of %d", e.MaxDepth),
			errors.ErrMaxDepth,
		)
	}
	switch v.Kind() {
	case models.KindBoolean:
		buf.WriteString(tab)
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		buf.WriteString(terminator(comma))
	case models.KindNumber:
		buf.WriteString(tab)
		buf.WriteString(formatNumber(v.Float()))
		buf.WriteString(terminator(comma))
	case models.KindString:
		buf.WriteString(tab)
		buf.WriteByte('"')
		buf.WriteString(v.Text())
		buf.WriteByte('"')
		buf.WriteString(terminator(comma))
	case models.KindArray:
		buf.WriteString(tab)
		buf.WriteString("[\n")
		items := v.Items()
		for i, item := range items {
			if err := e.encode(buf, item, tab+e.pad(), i < len(items)-1, depth+1); err != nil {
				return err
			}
		}
		buf.WriteString(tab)
		buf.WriteByte(']')
		buf.WriteString(terminator(comma))
	case models.KindObject:
		buf.WriteString(tab)
		buf.WriteString("{\n")
		members := v.Map().Members()
		for i, m := range members {
			buf.WriteString(tab)
			buf.WriteString(e.pad())
			buf.WriteByte('"')
			buf.WriteString(m.Key)
			buf.WriteString("\":\n")
			if err := e.encode(buf, m.Value, tab+e.pad()+e.pad(), i < len(members)-1, depth+1); err != nil {
				return err
			}
		}
		buf.WriteString(tab)
		buf.WriteByte('}')
		buf.WriteString(terminator(comma))
	default:
		return errors.NewInternalError(
			fmt.Sprintf("cannot encode value of kind %d", int(v.Kind())), nil)
	}
	return nil
}

func (e *Encoder) pad() string {
	return strings.Repeat(" ", e.Indent)
}

// terminator closes an emitted value: comma+newline between siblings,
// bare newline after the last one.
func terminator(comma bool) string {
	if comma {
		return ",\n"
	}
	return "\n"
}

// formatNumber uses the shortest representation that round-trips the
// double. Trailing representation artifacts ("1e+07") are possible and
// a known round-trip hazard for consumers expecting fixed notation.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
