package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/colourpick/internal/colour"
)

// outputFormat is a pflag.Value restricted to the supported formats.
type outputFormat string

const (
	formatHex   outputFormat = "hex"
	formatRGB   outputFormat = "rgb"
	formatHSL   outputFormat = "hsl"
	formatJSON  outputFormat = "json"
	formatTable outputFormat = "table"
)

var validFormats = []outputFormat{formatHex, formatRGB, formatHSL, formatJSON, formatTable}

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	for _, valid := range validFormats {
		if outputFormat(s) == valid {
			*f = valid
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: hex, rgb, hsl, json, table)", s)
}

func (f *outputFormat) Type() string { return "format" }

// previewWidth is the width of colour blocks in terminal output.
const previewWidth = 8

// formatPalette renders the palette in the requested format.
func formatPalette(palette *colour.Palette, format outputFormat, showPreview bool) (string, error) {
	switch format {
	case formatHex:
		return formatLines(palette, showPreview, colour.Colour.Hex), nil
	case formatRGB:
		return formatLines(palette, showPreview, colour.Colour.String), nil
	case formatHSL:
		return formatLines(palette, showPreview, func(c colour.Colour) string { return c.HSL().String() }), nil
	case formatJSON:
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case formatTable:
		return formatTableOutput(palette, showPreview), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatLines prints one colour per line, prefixed by a preview block if requested.
func formatLines(palette *colour.Palette, showPreview bool, text func(colour.Colour) string) string {
	var sb strings.Builder
	for _, c := range palette.Colours {
		if showPreview {
			sb.WriteString(colour.Preview(c, previewWidth))
			sb.WriteString(" ")
		}
		sb.WriteString(text(c))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatTableOutput describes each colour in a table, including its contrast
// against white and black text.
func formatTableOutput(palette *colour.Palette, showPreview bool) string {
	headers := []string{"#", "HEX", "ARGB", "HSL", "DARK", "COMPACT", "VS WHITE", "VS BLACK", "NEAREST"}
	if showPreview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	for i, c := range palette.Colours {
		row := []string{
			strconv.Itoa(i + 1),
			c.ShortHex(),
			fmt.Sprintf("0x%08x", c.Uint32()),
			c.HSL().String(),
			yesNo(c.IsDark()),
			yesNo(c.IsCompactable()),
			fmt.Sprintf("%.2f", colour.ContrastRatio(c, colour.White)),
			fmt.Sprintf("%.2f", colour.ContrastRatio(c, colour.Black)),
			colour.NearestName(c).Name,
		}
		if showPreview {
			row = append([]string{colour.PreviewWithText(c, c.ShortHex(), previewWidth)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
