package autorace

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is typically a race card from FormatRaceHTML.
	Convert(html string) (string, error)
}
