package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/autorace"
	"github.com/fwojciec/autorace/htmltomarkdown"
	autoraceyaml "github.com/fwojciec/autorace/yaml"
)

// csvRaceColumns prefix every CSV row so rows from different races can be
// told apart.
var csvRaceColumns = []string{"Date", "Circuit", "Race", "Title"}

// write renders races in the selected format to the output file or stdout.
// When list is false a single race is rendered as an object, not a list.
func (f OutputFlags) write(deps *Dependencies, races []*autorace.Race, list bool) error {
	data, err := render(f.Format, races, list, deps.Converter)
	if err != nil {
		return err
	}

	if f.Output == "" {
		_, err := deps.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.Output, data, 0o644); err != nil {
		return autorace.Errorf(autorace.EINVALID, "failed to write %s: %v", f.Output, err)
	}
	fmt.Fprintf(deps.Stderr, "Wrote %d race(s) to %s\n", len(races), f.Output)
	return nil
}

func render(format string, races []*autorace.Race, list bool, conv autorace.Converter) ([]byte, error) {
	switch format {
	case "json":
		var v any = races
		if !list && len(races) == 1 {
			v = races[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		if !list && len(races) == 1 {
			return autoraceyaml.MarshalRace(races[0])
		}
		var buf bytes.Buffer
		if err := autoraceyaml.Encode(&buf, races); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "csv":
		return renderCSV(races)
	case "markdown":
		md, err := htmltomarkdown.ConvertRaces(conv, races)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case "html":
		parts := make([]string, 0, len(races))
		for _, race := range races {
			parts = append(parts, autorace.FormatRaceHTML(race))
		}
		return []byte(strings.Join(parts, "\n")), nil
	case "text", "":
		parts := make([]string, 0, len(races))
		for _, race := range races {
			parts = append(parts, autorace.FormatRaceText(race))
		}
		return []byte(strings.Join(parts, "\n")), nil
	default:
		return nil, autorace.Errorf(autorace.EINVALID, "unknown output format %q", format)
	}
}

// renderCSV writes one row per rider.
func renderCSV(races []*autorace.Race) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, csvRaceColumns...), autorace.RiderColumns...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, race := range races {
		prefix := []string{
			race.Key.Date,
			strconv.Itoa(race.Key.Circuit),
			strconv.Itoa(race.Key.Number),
			race.Title.String(),
		}
		for _, rider := range race.Riders {
			if err := w.Write(append(append([]string{}, prefix...), rider.Values()...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
