package preset

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned for a format name or value that is not
// supported.
var ErrUnknownFormat = errors.New("preset: unknown format")

// Format selects the grammar used to import a preset text.
type Format int

const (
	// FormatAuto picks the grammar with DetectFormat.
	FormatAuto Format = iota
	// FormatAPO is the Equalizer APO parametric config grammar.
	FormatAPO
	// FormatGraphicEQ is the single-line GraphicEQ grammar.
	FormatGraphicEQ
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatAPO:
		return "apo"
	case FormatGraphicEQ:
		return "graphiceq"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat resolves a format name. The empty string means FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "apo":
		return FormatAPO, nil
	case "graphiceq", "graphic-eq", "geq":
		return FormatGraphicEQ, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat returns FormatGraphicEQ when a non-comment line starts with a
// "GraphicEQ:" header and FormatAPO otherwise.
func DetectFormat(text string) Format {
	for _, line := range splitLines(text) {
		if isComment(line) {
			continue
		}
		if reGraphicHeader.MatchString(line) {
			return FormatGraphicEQ
		}
	}
	return FormatAPO
}

// Import parses text with the given grammar.
func Import(format Format, text string) (Result, error) {
	if format == FormatAuto {
		format = DetectFormat(text)
	}

	switch format {
	case FormatAPO:
		return ImportAPO(text), nil
	case FormatGraphicEQ:
		return ImportGraphicEQ(text), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ImportReader reads all of r and imports it with the given grammar.
func ImportReader(r io.Reader, format Format) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("preset: read: %w", err)
	}
	return Import(format, string(data))
}
