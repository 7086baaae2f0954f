// Package report renders an ordered colour tally as text, a table or JSON.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jmylchreest/colourcount/internal/colour"
	"github.com/jmylchreest/colourcount/internal/tally"
)

// Format selects the report layout.
type Format string

const (
	// FormatText prints "#COLOUR\tTOTAL" followed by "\tCOUNT\tKEY" lines.
	FormatText Format = "text"
	// FormatTable prints an aligned table.
	FormatTable Format = "table"
	// FormatJSON prints an indented JSON document.
	FormatJSON Format = "json"
)

// ValidFormats returns all supported formats.
func ValidFormats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON}
}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	if !slices.Contains(ValidFormats(), f) {
		return "", fmt.Errorf("unsupported format: %s (supported: text, table, json)", name)
	}
	return f, nil
}

// Options controls how a report is written.
type Options struct {
	Format Format
	// Preview prefixes colour lines with an ANSI swatch. Ignored for JSON.
	Preview bool
}

// Write renders colours to w in the requested format.
func Write(w io.Writer, colours []tally.ColourCount, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, colours, opts.Preview)
	case FormatTable:
		return writeTable(w, colours, opts.Preview)
	case FormatJSON:
		return writeJSON(w, colours)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, table, json)", opts.Format)
	}
}

func writeText(w io.Writer, colours []tally.ColourCount, preview bool) error {
	bw := bufio.NewWriter(w)
	for _, cc := range colours {
		if preview {
			bw.WriteString(swatchPrefix(cc.Colour))
		}
		fmt.Fprintf(bw, "%s\t%d\n", cc.Colour, cc.Total)
		for _, u := range cc.Usage {
			fmt.Fprintf(bw, "\t%d\t%s\n", u.Count, u.Key)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, colours []tally.ColourCount, preview bool) error {
	table := NewTable([]string{"Colour", "Total", "Key", "Count"})
	table.SetAlignment(1, AlignRight)
	table.SetAlignment(3, AlignRight)

	// prefixes[i] decorates data row i.
	var prefixes []string
	blank := strings.Repeat(" ", colour.SwatchWidth+1)
	for _, cc := range colours {
		table.AddRow([]string{cc.Colour, strconv.Itoa(cc.Total), "", ""})
		prefixes = append(prefixes, swatchPrefix(cc.Colour))
		for _, u := range cc.Usage {
			table.AddRow([]string{"", "", u.Key, strconv.Itoa(u.Count)})
			prefixes = append(prefixes, blank)
		}
	}

	out := table.Render()
	if preview {
		var b strings.Builder
		for i, line := range table.Lines() {
			if i < 2 {
				b.WriteString(blank)
			} else {
				b.WriteString(prefixes[i-2])
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		out = b.String()
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// swatchPrefix returns the preview block for a normalised colour followed by
// a space.
func swatchPrefix(c string) string {
	rgb, err := colour.ParseHex(c)
	if err != nil {
		return strings.Repeat(" ", colour.SwatchWidth+1)
	}
	return colour.Swatch(rgb, colour.SwatchWidth) + " "
}

// UsageJSON is one key's reference count in JSON output.
type UsageJSON struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ColourJSON is one colour in JSON output.
type ColourJSON struct {
	Colour string      `json:"colour"`
	Hex    string      `json:"hex"`
	RGB    colour.RGB  `json:"rgb"`
	Total  int         `json:"total"`
	Usage  []UsageJSON `json:"usage"`
}

// ReportJSON is the top-level JSON document.
type ReportJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

func writeJSON(w io.Writer, colours []tally.ColourCount) error {
	doc := ReportJSON{
		Count:   len(colours),
		Colours: make([]ColourJSON, 0, len(colours)),
	}

	for _, cc := range colours {
		rgb, err := colour.ParseHex(cc.Colour)
		if err != nil {
			return fmt.Errorf("invalid colour %s: %w", cc.Colour, err)
		}

		usage := make([]UsageJSON, len(cc.Usage))
		for i, u := range cc.Usage {
			usage[i] = UsageJSON{Key: u.Key, Count: u.Count}
		}

		doc.Colours = append(doc.Colours, ColourJSON{
			Colour: cc.Colour,
			Hex:    rgb.Hex(),
			RGB:    rgb,
			Total:  cc.Total,
			Usage:  usage,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
