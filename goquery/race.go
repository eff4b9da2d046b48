package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/autorace"
)

const (
	raceTitleSelector    = ".race-detail__ttl"
	raceSubtitleSelector = "div.race-detail__sub-ttl"
	weatherBlockSelector = "div.race-detail__weather"
)

// Positions of the spans inside the weather block.
const (
	weatherSpan = 2
	// Same span as weather. The live page has not been checked for a
	// separate temperature span.
	temperatureSpan         = 2
	humiditySpan            = 3
	pavementTemperatureSpan = 4
	trackConditionSpan      = 5
)

// labelSeparator divides a label from its value, as in "天候：晴".
const labelSeparator = "："

func weatherSpanSelector(position int) string {
	return fmt.Sprintf("%s span:nth-of-type(%d)", weatherBlockSelector, position)
}

// SplitLabel returns the trimmed text after the first full-width colon.
// The result is absent when there is no colon or nothing follows it.
func SplitLabel(text string) autorace.Optional[string] {
	_, value, found := strings.Cut(text, labelSeparator)
	if !found {
		return autorace.None[string]()
	}
	return nonBlank(value)
}

func labeledSpan(doc *goquery.Document, position int) autorace.Optional[string] {
	return autorace.AndThen(Text(doc, weatherSpanSelector(position)), SplitLabel)
}

// RaceTitle returns the race title.
func RaceTitle(doc *goquery.Document) autorace.Optional[string] {
	return Text(doc, raceTitleSelector)
}

// RaceSubtitle returns the race subtitle.
func RaceSubtitle(doc *goquery.Document) autorace.Optional[string] {
	return Text(doc, raceSubtitleSelector)
}

// RaceWeather returns the weather value, e.g. "晴" from "天候：晴".
func RaceWeather(doc *goquery.Document) autorace.Optional[string] {
	return labeledSpan(doc, weatherSpan)
}

// RaceTemperature returns the air temperature value.
func RaceTemperature(doc *goquery.Document) autorace.Optional[string] {
	return labeledSpan(doc, temperatureSpan)
}

// RaceHumidity returns the humidity value.
func RaceHumidity(doc *goquery.Document) autorace.Optional[string] {
	return labeledSpan(doc, humiditySpan)
}

// RacePavementTemperature returns the track surface temperature value.
func RacePavementTemperature(doc *goquery.Document) autorace.Optional[string] {
	return labeledSpan(doc, pavementTemperatureSpan)
}

// RaceTrackCondition returns the track condition. The span carries no label.
func RaceTrackCondition(doc *goquery.Document) autorace.Optional[string] {
	return Text(doc, weatherSpanSelector(trackConditionSpan))
}
