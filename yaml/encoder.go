// Package yaml encodes race cards as YAML documents.
package yaml

import (
	"bytes"
	"io"

	"github.com/fwojciec/autorace"
	"gopkg.in/yaml.v3"
)

// Encode writes races to w as a single YAML sequence. Absent fields are
// written as null.
func Encode(w io.Writer, races []*autorace.Race) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(races); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalRace returns race as a YAML mapping.
func MarshalRace(race *autorace.Race) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(race); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
