package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pegtools/jsonpeg/internal/config"
	"github.com/pegtools/jsonpeg/internal/encoder"
	"github.com/pegtools/jsonpeg/internal/errors"
	"github.com/pegtools/jsonpeg/internal/models"
	"github.com/pegtools/jsonpeg/internal/parser"
	"github.com/pegtools/jsonpeg/internal/transform"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to config file. If not specified, searches for .jsonpeg.yml upwards from the working directory." short:"c" type:"path"`
	Indent      int    `help:"Spaces per indentation level in pretty output." default:"4"`
	KeyCase     string `help:"Rewrite object keys to a case style: snake, camel, pascal, kebab, screaming-snake." short:"k"`
	Compact     bool   `help:"Emit strict single-line JSON with escaping instead of the pretty format."`
	MaxDepth    int    `help:"Maximum nesting depth accepted while parsing." default:"4096"`
	Check       bool   `help:"Validate the input only; on failure report the syntax error offset."`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsonpeg"),
		kong.Description("A PEG-combinator JSON pretty-printer and validator"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonpeg version %s\n", Version)
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonpeg --help\n")

		os.Exit(1)
	}
}

// buildConfig resolves the config file (explicit flag or discovery) and
// merges CLI overrides onto it
func buildConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	return config.LoadConfigWithCLI(configPath, CLI.Indent, CLI.KeyCase, CLI.MaxDepth, CLI.Compact)
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Decode the JSON input into a value tree
	value, err := parseInput(ctx)
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// Check mode stops after a successful parse
	if CLI.Check {
		fmt.Fprintln(os.Stderr, "input is valid")
		return nil
	}

	// 2. Rewrite object keys if a case style was requested
	if ctx.Config.KeyCase != "" {
		style, err := transform.ParseKeyCase(ctx.Config.KeyCase)
		if err != nil {
			return err
		}
		value, err = transform.RewriteKeys(value, style)
		if err != nil {
			return err
		}
	}

	// 3. Encode the value tree back to text
	text, err := encodeValue(ctx, value)
	if err != nil {
		return err
	}

	// 4. Output the result
	return writeOutput(text)
}

// encodeValue picks the output format: strict compact JSON or the
// pretty printer
func encodeValue(ctx *Context, value *models.Value) (string, error) {
	if ctx.Config.Compact {
		return encoder.Compact(value)
	}
	enc := encoder.New()
	enc.Indent = ctx.Config.Indent
	return enc.Encode(value)
}

// parseInput reads JSON from file or stdin
func parseInput(ctx *Context) (*models.Value, error) {
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "jsonpeg: max depth %d\n", ctx.Config.MaxDepth)
	}
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFileMaxDepth(CLI.Input, ctx.Config.MaxDepth)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput(ctx)
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.DecodeMaxDepth(jsonData, ctx.Config.MaxDepth)
}

// writeOutput writes text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(text), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSuffix(text, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(ctx *Context) (*models.Value, error) {
	fmt.Fprintln(os.Stderr, "jsonpeg Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.DecodeMaxDepth([]byte(jsonData), ctx.Config.MaxDepth)
}
