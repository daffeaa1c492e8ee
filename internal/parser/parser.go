package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
	"github.com/pegtools/jsonpeg/internal/peg"
)

// Parse reads everything from reader and decodes it as a single JSON
// element.
func Parse(reader io.Reader) (*models.Value, error) {
	return ParseMaxDepth(reader, peg.DefaultMaxDepth)
}

// ParseMaxDepth is Parse with an explicit grammar recursion limit.
func ParseMaxDepth(reader io.Reader, maxDepth int) (*models.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}
	return DecodeMaxDepth(data, maxDepth)
}

// ParseString decodes JSON from a string
func ParseString(jsonString string) (*models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Decode([]byte(jsonString))
}

// ParseFile decodes JSON from a file path
func ParseFile(filePath string) (*models.Value, error) {
	return ParseFileMaxDepth(filePath, peg.DefaultMaxDepth)
}

// ParseFileMaxDepth is ParseFile with an explicit grammar recursion
// limit.
func ParseFileMaxDepth(filePath string, maxDepth int) (*models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseMaxDepth(file, maxDepth)
}
