package transform

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
)

// KeyCase names an object-key rewriting style.
type KeyCase string

const (
	CaseSnake          KeyCase = "snake"
	CaseCamel          KeyCase = "camel"
	CasePascal         KeyCase = "pascal"
	CaseKebab          KeyCase = "kebab"
	CaseScreamingSnake KeyCase = "screaming-snake"
)

// ParseKeyCase validates a user-supplied style name.
func ParseKeyCase(s string) (KeyCase, error) {
	switch KeyCase(s) {
	case CaseSnake, CaseCamel, CasePascal, CaseKebab, CaseScreamingSnake:
		return KeyCase(s), nil
	}
	return "", errors.NewTransformError(
		fmt.Sprintf("unknown key case style %q", s), errors.ErrUnknownKeyCase)
}

// RewriteKeys returns a structural copy of v with every object key,
// at every nesting level, rewritten to the requested style. Member
// order is preserved; if two rewritten keys collide, the later member
// overwrites the earlier one in place, like any re-insertion. The input
// tree is never touched and shares no nodes with the result.
func RewriteKeys(v *models.Value, style KeyCase) (*models.Value, error) {
	convert, err := converter(style)
	if err != nil {
		return nil, err
	}
	return rewrite(v, convert), nil
}

func converter(style KeyCase) (func(string) string, error) {
	switch style {
	case CaseSnake:
		return strcase.ToSnake, nil
	case CaseCamel:
		return strcase.ToLowerCamel, nil
	case CasePascal:
		return strcase.ToCamel, nil
	case CaseKebab:
		return strcase.ToKebab, nil
	case CaseScreamingSnake:
		return strcase.ToScreamingSnake, nil
	}
	return nil, errors.NewTransformError(
		fmt.Sprintf("unknown key case style %q", style), errors.ErrUnknownKeyCase)
}

func rewrite(v *models.Value, convert func(string) string) *models.Value {
	switch v.Kind() {
	case models.KindArray:
		out := models.Array()
		for _, item := range v.Items() {
			out.Append(rewrite(item, convert))
		}
		return out
	case models.KindObject:
		om := models.NewOrderedMap()
		for _, m := range v.Map().Members() {
			om.Set(convert(m.Key), rewrite(m.Value, convert))
		}
		return models.Object(om)
	default:
		return v.Clone()
	}
}
