package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/autorace"
)

// Positions inside the slash-delimited rider info text, e.g.
// "伊勢崎 / 31期 / 38歳1級 / S-1 / 123.456".
const (
	lockerGroundPart = iota
	registrationTermPart
	ageClassPart
	rankPart
	pointsPart
)

const riderInfoSeparator = "/"

var ageClassPattern = regexp.MustCompile(`^(\p{Nd}+歳)(\p{Nd}+級)`)

// riderInfo is the rider info text split into its parts.
type riderInfo []string

func readRiderInfo(doc *goquery.Document, rider int) riderInfo {
	text, ok := Text(doc, riderInfoSelector(rider)).Get()
	if !ok {
		return nil
	}
	return strings.Split(text, riderInfoSeparator)
}

func (info riderInfo) part(i int) autorace.Optional[string] {
	if i >= len(info) {
		return autorace.None[string]()
	}
	return nonBlank(info[i])
}

func (info riderInfo) ageClass() (age, bikeClass autorace.Optional[string]) {
	text, ok := info.part(ageClassPart).Get()
	if !ok {
		return autorace.None[string](), autorace.None[string]()
	}
	return SplitAgeClass(text)
}

// SplitAgeClass splits text such as "36歳2級" into "36歳" and "2級". Both
// are absent unless the text starts with that pattern.
func SplitAgeClass(text string) (age, bikeClass autorace.Optional[string]) {
	m := ageClassPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return autorace.None[string](), autorace.None[string]()
	}
	return autorace.Some(m[1]), autorace.Some(m[2])
}

func riderCell(doc *goquery.Document, rider int, c cell) autorace.Optional[string] {
	return Text(doc, riderCellSelector(rider, c))
}

// RiderName returns the name of the rider in the given slot. A rider is
// considered present only when the name is.
func RiderName(doc *goquery.Document, rider int) autorace.Optional[string] {
	return Text(doc, riderNameSelector(rider))
}

// RiderLockerGround returns the rider's home track.
func RiderLockerGround(doc *goquery.Document, rider int) autorace.Optional[string] {
	return readRiderInfo(doc, rider).part(lockerGroundPart)
}

// RiderRegistrationTerm returns the rider's training class, e.g. "31期".
func RiderRegistrationTerm(doc *goquery.Document, rider int) autorace.Optional[string] {
	return readRiderInfo(doc, rider).part(registrationTermPart)
}

// RiderAge returns the age part of the rider info, e.g. "38歳".
func RiderAge(doc *goquery.Document, rider int) autorace.Optional[string] {
	age, _ := readRiderInfo(doc, rider).ageClass()
	return age
}

// RiderBikeClass returns the class part of the rider info, e.g. "1級".
func RiderBikeClass(doc *goquery.Document, rider int) autorace.Optional[string] {
	_, bikeClass := readRiderInfo(doc, rider).ageClass()
	return bikeClass
}

// RiderRank returns the rider's rank, e.g. "S-1".
func RiderRank(doc *goquery.Document, rider int) autorace.Optional[string] {
	return readRiderInfo(doc, rider).part(rankPart)
}

// RiderPoints returns the rider's rating points.
func RiderPoints(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(readRiderInfo(doc, rider).part(pointsPart))
}

// RiderHandicap returns the rider's handicap distance in meters.
func RiderHandicap(doc *goquery.Document, rider int) autorace.Optional[int] {
	return parseInt(riderCell(doc, rider, handicapCell))
}

// RiderAverageTrialTime returns the rider's average trial run time.
func RiderAverageTrialTime(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(riderCell(doc, rider, averageTrialTimeCell))
}

// RiderTrialTime returns the rider's trial run time for this race.
func RiderTrialTime(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(riderCell(doc, rider, trialTimeCell))
}

// RiderAverageRaceTime returns the rider's average race lap time.
func RiderAverageRaceTime(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(riderCell(doc, rider, averageRaceTimeCell))
}

// RiderTrialDeviation returns the rider's trial time deviation.
func RiderTrialDeviation(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(riderCell(doc, rider, trialDeviationCell))
}

// RiderFastestRaceTime returns the rider's fastest race lap time.
func RiderFastestRaceTime(doc *goquery.Document, rider int) autorace.Optional[float64] {
	return parseFloat(riderCell(doc, rider, fastestRaceTimeCell))
}
