package autorace

import (
	"html"
	"strconv"
	"strings"
)

// RaceColumns names the race-level fields in display order.
var RaceColumns = []string{"Weather", "Temperature", "Humidity", "Pavement Temperature", "Track Condition"}

// RiderColumns names the rider fields in display order. Values returns
// cells in the same order.
var RiderColumns = []string{
	"No", "Name", "Locker Ground", "Term", "Age", "Class", "Rank", "Points",
	"Handicap", "Trial", "Deviation", "Avg Trial", "Avg Race", "Fastest",
}

// Values returns the race-level fields as display strings. Absent fields
// are empty.
func (r *Race) Values() []string {
	return []string{
		r.Weather.String(),
		r.Temperature.String(),
		r.Humidity.String(),
		r.PavementTemperature.String(),
		r.TrackCondition.String(),
	}
}

// Values returns the rider fields as display strings in RiderColumns order.
// Absent fields are empty.
func (r Rider) Values() []string {
	return []string{
		strconv.Itoa(r.Number),
		r.Name,
		r.LockerGround.String(),
		r.RegistrationTerm.String(),
		r.Age.String(),
		r.BikeClass.String(),
		r.Rank.String(),
		r.Points.String(),
		r.Handicap.String(),
		r.TrialTime.String(),
		r.TrialDeviation.String(),
		r.AverageTrialTime.String(),
		r.AverageRaceTime.String(),
		r.FastestRaceTime.String(),
	}
}

// FormatRaceText formats a race for terminal display.
// Absent fields are shown as "-".
func FormatRaceText(race *Race) string {
	var b strings.Builder

	heading := race.Heading()
	if heading == "" {
		heading = race.SourceURL
	}
	b.WriteString(heading)
	b.WriteString("\n")

	for i, value := range race.Values() {
		b.WriteString(RaceColumns[i] + ": " + orDash(value) + "\n")
	}

	if len(race.Riders) == 0 {
		b.WriteString("No riders.\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, rider := range race.Riders {
		values := rider.Values()
		b.WriteString(values[0] + ". " + values[1] + "\n")
		for i := 2; i < len(values); i++ {
			b.WriteString("   " + RiderColumns[i] + ": " + orDash(values[i]) + "\n")
		}
	}
	return b.String()
}

// FormatRaceHTML renders a race as a small HTML document with one table for
// race conditions and one for riders.
func FormatRaceHTML(race *Race) string {
	var b strings.Builder

	if heading := race.Heading(); heading != "" {
		b.WriteString("<h1>" + html.EscapeString(heading) + "</h1>\n")
	}
	if race.SourceURL != "" {
		b.WriteString(`<p><a href="` + html.EscapeString(race.SourceURL) + `">` + html.EscapeString(race.SourceURL) + "</a></p>\n")
	}

	writeHTMLTable(&b, RaceColumns, [][]string{race.Values()})

	rows := make([][]string, 0, len(race.Riders))
	for _, rider := range race.Riders {
		rows = append(rows, rider.Values())
	}
	writeHTMLTable(&b, RiderColumns, rows)

	return b.String()
}

func writeHTMLTable(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("<table>\n<thead><tr>")
	for _, h := range header {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
