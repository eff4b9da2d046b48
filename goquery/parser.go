package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/autorace"
)

// Ensure Parser implements autorace.RaceParser.
var _ autorace.RaceParser = (*Parser)(nil)

// Parser extracts races from race-detail HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and extracts the race card.
func (p *Parser) Parse(html string) (*autorace.Race, error) {
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}
	return ExtractRace(doc), nil
}

// ExtractRace reads race fields and every populated rider slot from doc.
// Riders is never nil.
func ExtractRace(doc *goquery.Document) *autorace.Race {
	race := &autorace.Race{
		Title:               RaceTitle(doc),
		Subtitle:            RaceSubtitle(doc),
		Weather:             RaceWeather(doc),
		Temperature:         RaceTemperature(doc),
		Humidity:            RaceHumidity(doc),
		PavementTemperature: RacePavementTemperature(doc),
		TrackCondition:      RaceTrackCondition(doc),
		Riders:              []autorace.Rider{},
	}
	for n := 1; n <= autorace.RiderSlots; n++ {
		if rider, ok := ExtractRider(doc, n); ok {
			race.Riders = append(race.Riders, rider)
		}
	}
	return race
}

// ExtractRider reads the rider in slot n. It reports false when the slot has
// no rider name.
func ExtractRider(doc *goquery.Document, n int) (autorace.Rider, bool) {
	name, ok := RiderName(doc, n).Get()
	if !ok {
		return autorace.Rider{}, false
	}

	info := readRiderInfo(doc, n)
	age, bikeClass := info.ageClass()

	return autorace.Rider{
		Number:           n,
		Name:             name,
		LockerGround:     info.part(lockerGroundPart),
		RegistrationTerm: info.part(registrationTermPart),
		Age:              age,
		BikeClass:        bikeClass,
		Rank:             info.part(rankPart),
		Points:           parseFloat(info.part(pointsPart)),
		Handicap:         RiderHandicap(doc, n),
		TrialTime:        RiderTrialTime(doc, n),
		TrialDeviation:   RiderTrialDeviation(doc, n),
		AverageTrialTime: RiderAverageTrialTime(doc, n),
		AverageRaceTime:  RiderAverageRaceTime(doc, n),
		FastestRaceTime:  RiderFastestRaceTime(doc, n),
	}, true
}
