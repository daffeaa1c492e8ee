package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name:     "with wrapped error",
			appError: NewInputError("failed to read input", stderrors.New("underlying error")),
			want:     "input: failed to read input: underlying error",
		},
		{
			name:     "without wrapped error",
			appError: NewParsingError("unexpected token", nil),
			want:     "parsing: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := stderrors.New("underlying")
	appErr := NewDecodeError("decode failed", underlying)

	assert.Equal(t, underlying, appErr.Unwrap())
	assert.True(t, stderrors.Is(appErr, underlying))

	assert.Nil(t, NewEncodeError("no cause", nil).Unwrap())
}

func TestAppError_Is(t *testing.T) {
	err := NewParsingError("bad input", nil)

	assert.True(t, stderrors.Is(err, &AppError{Type: ErrorTypeParsing}))
	assert.False(t, stderrors.Is(err, &AppError{Type: ErrorTypeEncode}))
	assert.False(t, stderrors.Is(err, stderrors.New("parsing")))
}

func TestSyntaxError(t *testing.T) {
	err := &SyntaxError{Offset: 17}
	assert.Equal(t, "syntax error at offset 17", err.Error())
}

func TestOffset(t *testing.T) {
	wrapped := NewParsingError("input is not parseable JSON", &SyntaxError{Offset: 5})
	assert.Equal(t, 5, Offset(wrapped))

	doubly := fmt.Errorf("while parsing: %w", wrapped)
	assert.Equal(t, 5, Offset(doubly))

	assert.Equal(t, -1, Offset(stderrors.New("no offset here")))
	assert.Equal(t, -1, Offset(nil))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "input app error",
			err:  NewInputError("bad input", nil),
			want: "Input error: bad input",
		},
		{
			name: "parsing app error",
			err:  NewParsingError("bad syntax", nil),
			want: "JSON parsing error: bad syntax",
		},
		{
			name: "decode app error",
			err:  NewDecodeError("bad number", nil),
			want: "JSON decode error: bad number",
		},
		{
			name: "transform app error",
			err:  NewTransformError("bad style", nil),
			want: "Transform error: bad style",
		},
		{
			name: "encode app error",
			err:  NewEncodeError("too deep", nil),
			want: "Encoding error: too deep",
		},
		{
			name: "output app error",
			err:  NewOutputError("cannot write", nil),
			want: "Output error: cannot write",
		},
		{
			name: "internal app error",
			err:  NewInternalError("tree drift", nil),
			want: "Internal error: tree drift",
		},
		{
			name: "empty input sentinel",
			err:  ErrEmptyInput,
			want: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name: "file not found sentinel",
			err:  ErrFileNotFound,
			want: "Error: The specified file could not be found. Please check the file path.",
		},
		{
			name: "max depth sentinel",
			err:  ErrMaxDepth,
			want: "Error: The input is nested too deeply. Raise --max-depth to process it.",
		},
		{
			name: "unknown key case sentinel",
			err:  ErrUnknownKeyCase,
			want: "Error: Unknown key case style. Valid styles: snake, camel, pascal, kebab, screaming-snake.",
		},
		{
			name: "unknown error",
			err:  stderrors.New("something odd"),
			want: "Error: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFriendlyError(tt.err))
		})
	}
}
