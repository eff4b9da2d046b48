package autorace

import (
	"fmt"
	"strings"
)

// RiderSlots is the number of rider slots on a race card.
const RiderSlots = 8

// MaxRaceNumber is the highest race number held on a single day.
const MaxRaceNumber = 12

// RaceKey identifies a race by date, circuit and race number.
type RaceKey struct {
	// Date is the race date in YYYYMMDD form.
	Date    string `json:"date" yaml:"date"`
	Circuit int    `json:"circuit" yaml:"circuit"`
	Number  int    `json:"number" yaml:"number"`
}

// NewRaceKey normalizes date and returns a validated key.
func NewRaceKey(date string, circuit, number int) (RaceKey, error) {
	normalized, err := FormatRaceDate(date)
	if err != nil {
		return RaceKey{}, err
	}
	key := RaceKey{Date: normalized, Circuit: circuit, Number: number}
	if err := key.Validate(); err != nil {
		return RaceKey{}, err
	}
	return key, nil
}

// Validate returns an error if the key cannot address a race page.
func (k RaceKey) Validate() error {
	if normalized, err := FormatRaceDate(k.Date); err != nil {
		return err
	} else if normalized != k.Date {
		return Errorf(EINVALID, "race date %q must be in YYYYMMDD form", k.Date)
	}
	if k.Circuit < 1 {
		return Errorf(EINVALID, "invalid circuit %d: must be positive", k.Circuit)
	}
	if k.Number < 1 || k.Number > MaxRaceNumber {
		return Errorf(EINVALID, "invalid race number %d: must be between 1 and %d", k.Number, MaxRaceNumber)
	}
	return nil
}

// String returns the key as date/circuit/race.
func (k RaceKey) String() string {
	return fmt.Sprintf("%s/%d/%d", k.Date, k.Circuit, k.Number)
}

// Race is the race card extracted from a race-detail page.
type Race struct {
	// Key and SourceURL are set by the scraper; both are zero when a page
	// is parsed directly.
	Key       RaceKey `json:"key" yaml:"key"`
	SourceURL string  `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`

	Title               Optional[string] `json:"title" yaml:"title"`
	Subtitle            Optional[string] `json:"subtitle" yaml:"subtitle"`
	Weather             Optional[string] `json:"weather" yaml:"weather"`
	Temperature         Optional[string] `json:"temperature" yaml:"temperature"`
	Humidity            Optional[string] `json:"humidity" yaml:"humidity"`
	PavementTemperature Optional[string] `json:"pavementTemperature" yaml:"pavementTemperature"`
	TrackCondition      Optional[string] `json:"trackCondition" yaml:"trackCondition"`

	// Riders holds the riders in slot order. Empty slots are omitted.
	Riders []Rider `json:"riders" yaml:"riders"`
}

// Rider is a single entrant of a race.
type Rider struct {
	// Number is the rider's slot position on the card, 1 through RiderSlots.
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`

	LockerGround     Optional[string]  `json:"lockerGround" yaml:"lockerGround"`
	RegistrationTerm Optional[string]  `json:"registrationTerm" yaml:"registrationTerm"`
	Age              Optional[string]  `json:"age" yaml:"age"`
	BikeClass        Optional[string]  `json:"bikeClass" yaml:"bikeClass"`
	Rank             Optional[string]  `json:"rank" yaml:"rank"`
	Points           Optional[float64] `json:"points" yaml:"points"`
	Handicap         Optional[int]     `json:"handicap" yaml:"handicap"`
	TrialTime        Optional[float64] `json:"trialTime" yaml:"trialTime"`
	TrialDeviation   Optional[float64] `json:"trialDeviation" yaml:"trialDeviation"`
	AverageTrialTime Optional[float64] `json:"averageTrialTime" yaml:"averageTrialTime"`
	AverageRaceTime  Optional[float64] `json:"averageRaceTime" yaml:"averageRaceTime"`
	FastestRaceTime  Optional[float64] `json:"fastestRaceTime" yaml:"fastestRaceTime"`
}

// Rider returns the rider in the given slot.
func (r *Race) Rider(number int) (Rider, bool) {
	for _, rider := range r.Riders {
		if rider.Number == number {
			return rider, true
		}
	}
	return Rider{}, false
}

// Heading returns the title and subtitle joined by a space, skipping absent
// parts.
func (r *Race) Heading() string {
	var parts []string
	if v, ok := r.Title.Get(); ok {
		parts = append(parts, v)
	}
	if v, ok := r.Subtitle.Get(); ok {
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}
