package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names a description format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatOf picks the format from a file extension: .yaml and .yml are
// YAML, .hcl is HCL, .txt, .in and no extension are puzzle text.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".txt", ".in", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Load reads the description at path in the format given by its extension.
func Load(path string) (*NetworkSpec, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer file.Close()

	return Read(file, f, path)
}

// Read decodes r in format f. name is used in diagnostics.
func Read(r io.Reader, f Format, name string) (*NetworkSpec, error) {
	switch f {
	case FormatText:
		return ParseText(r)
	case FormatYAML:
		return ParseYAML(r)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("input: read %s: %w", name, err)
		}
		return ParseHCL(src, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
