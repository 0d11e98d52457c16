package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter writes command output in one of the supported formats,
// keeping output shape consistent across all commands.
type Formatter interface {
	// Format writes the given data to the output writer
	Format(data interface{}) error
}

// NewFormatter creates a formatter for the given format string.
// Supported formats: text (default), json, yaml.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		return &jsonFormatter{w: w}, nil
	case "yaml":
		return &yamlFormatter{w: w}, nil
	case "text", "":
		return &textFormatter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

type jsonFormatter struct {
	w io.Writer
}

func (f *jsonFormatter) Format(data interface{}) error {
	encoder := json.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

type yamlFormatter struct {
	w io.Writer
}

func (f *yamlFormatter) Format(data interface{}) error {
	encoder := yaml.NewEncoder(f.w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(data)
}

// textFormatter renders strings and Stringers; anything else must provide
// its own text rendering before reaching the formatter.
type textFormatter struct {
	w io.Writer
}

func (f *textFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(f.w, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.w, v.String())
		return err
	default:
		return fmt.Errorf("text formatter requires a string or fmt.Stringer, got %T", data)
	}
}

var (
	_ Formatter = (*jsonFormatter)(nil)
	_ Formatter = (*yamlFormatter)(nil)
	_ Formatter = (*textFormatter)(nil)
)
