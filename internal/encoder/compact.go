package encoder

import (
	json "github.com/goccy/go-json"

	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
)

// Compact renders v as strict single-line JSON. Unlike Encode, this
// path escapes string payloads and object keys, so its output always
// re-parses; object member order is preserved.
func Compact(v *models.Value) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.NewEncodeError("failed to marshal value", err)
	}
	return string(b), nil
}
