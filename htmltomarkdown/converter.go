// Package htmltomarkdown renders race cards as Markdown tables.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/autorace"
)

// Ensure Converter implements autorace.Converter at compile time.
var _ autorace.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with table support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", autorace.Errorf(autorace.EINVALID, "empty HTML input")
	}
	return c.conv.ConvertString(html)
}

// ConvertRaces renders each race with autorace.FormatRaceHTML and converts
// the result. Races are separated by a blank line.
func ConvertRaces(conv autorace.Converter, races []*autorace.Race) (string, error) {
	parts := make([]string, 0, len(races))
	for _, race := range races {
		md, err := conv.Convert(autorace.FormatRaceHTML(race))
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimSpace(md))
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
