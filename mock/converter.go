package mock

import "github.com/fwojciec/autorace"

var _ autorace.Converter = (*Converter)(nil)

// Converter is a mock implementation of autorace.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
