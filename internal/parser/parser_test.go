package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/pegtools/jsonpeg/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30, "isStudent": false}`
	reader := strings.NewReader(jsonStr)
	v, err := Parse(reader)

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if v.Kind() != models.KindObject {
		t.Fatalf("Parse() kind = %v, want object", v.Kind())
	}

	keys := v.Map().Keys()
	wantKeys := []string{"name", "age", "isStudent"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("Parse() keys = %v, want %v", keys, wantKeys)
	}
	for i := range wantKeys {
		if keys[i] != wantKeys[i] {
			t.Errorf("Parse() key %d = %q, want %q", i, keys[i], wantKeys[i])
		}
	}

	name, _ := v.Map().Get("name")
	if name.Text() != "John Doe" {
		t.Errorf("Parse() name = %q, want %q", name.Text(), "John Doe")
	}
	age, _ := v.Map().Get("age")
	if age.Float() != 30 {
		t.Errorf("Parse() age = %v, want 30", age.Float())
	}
}

func TestParse_SimpleArray(t *testing.T) {
	jsonStr := `[1, "test", true, 3.14]`
	reader := strings.NewReader(jsonStr)
	v, err := Parse(reader)

	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if v.Kind() != models.KindArray {
		t.Fatalf("Parse() kind = %v, want array", v.Kind())
	}

	want := models.Array(
		models.Number(1),
		models.String("test"),
		models.Boolean(true),
		models.Number(3.14),
	)
	if !v.Equal(want) {
		t.Errorf("Parse() = %#v, want %#v", v, want)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	reader := strings.NewReader("")
	_, err := Parse(reader)
	if err == nil {
		t.Errorf("Parse() with empty reader, err = nil, want error")
	} else if !strings.Contains(err.Error(), "input is empty") {
		t.Errorf("Parse() with empty reader, err = %v, want error containing 'input is empty'", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	_, err := ParseString("")
	if err == nil {
		t.Errorf("ParseString() with empty string, err = nil, want error")
	} else if !strings.Contains(err.Error(), "input string is empty or consists only of whitespace") {
		t.Errorf("ParseString() with empty string, err = %v, want error containing 'input string is empty or consists only of whitespace'", err)
	}

	_, err = ParseString("   ") // Whitespace only
	if err == nil {
		t.Errorf("ParseString() with whitespace string, err = nil, want error")
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	jsonStr := `{"name": "John Doe", "age": 30` // Missing closing brace
	reader := strings.NewReader(jsonStr)
	_, err := Parse(reader)
	if err == nil {
		t.Errorf("Parse() with malformed JSON, err = nil, want error")
	} else if !strings.Contains(err.Error(), "syntax error at offset") {
		t.Errorf("Parse() with malformed JSON, err = %v, want error containing 'syntax error at offset'", err)
	}
}

func TestParseString_MalformedJSON(t *testing.T) {
	jsonStr := `["item1", "item2"` // Missing closing bracket
	_, err := ParseString(jsonStr)
	if err == nil {
		t.Errorf("ParseString() with malformed JSON, err = nil, want error")
	} else if !strings.Contains(err.Error(), "syntax error at offset") {
		t.Errorf("ParseString() with malformed JSON, err = %v, want error containing 'syntax error at offset'", err)
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	content := `{"product": "Laptop", "price": 1200.50}`
	tmpfile, err := os.CreateTemp("", "test_simple_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	v, err := ParseFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}

	price, ok := v.Map().Get("price")
	if !ok || price.Float() != 1200.50 {
		t.Errorf("ParseFile() price = %v, want 1200.50", price)
	}
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile("nonexistentfile.json")
	if err == nil {
		t.Errorf("ParseFile() with non-existent file, err = nil, want error")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("ParseFile() with non-existent file, err = %v, want error containing 'not found'", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	if err == nil {
		t.Errorf("ParseFile() with empty path, err = nil, want error")
	} else if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("ParseFile() with empty path, err = %v, want error containing 'file path is empty'", err)
	}
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_empty_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name()) // clean up

	// File is created, but nothing is written to it, so it's empty.
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	_, err = ParseFile(tmpfile.Name())
	if err == nil {
		t.Errorf("ParseFile() with empty file content, err = nil, want error")
	} else if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("ParseFile() with empty file content, err = %v, want error containing 'is empty'", err)
	}
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name     string
		jsonStr  string
		expected *models.Value
	}{
		{"RootString", `"hello world"`, models.String("hello world")},
		{"RootNumber", `123.45`, models.Number(123.45)},
		{"RootBooleanTrue", `true`, models.Boolean(true)},
		{"RootBooleanFalse", `false`, models.Boolean(false)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := strings.NewReader(tc.jsonStr)
			v, err := Parse(reader)

			if err != nil {
				t.Fatalf("Parse() error = %v, wantErr nil for %s", err, tc.name)
			}

			if !v.Equal(tc.expected) {
				t.Errorf("Parse() = %#v, want %#v for %s", v, tc.expected, tc.name)
			}
		})
	}
}
