package http

import (
	"net/url"
	"strconv"

	"github.com/fwojciec/autorace"
)

// DefaultBaseURL is the site root race pages are served from.
const DefaultBaseURL = "https://www.tokyo-sports.co.jp/autorace"

// Ensure URLBuilder implements autorace.URLBuilder at compile time.
var _ autorace.URLBuilder = (*URLBuilder)(nil)

// URLBuilder addresses race pages as {BaseURL}/race/{date}/{circuit}/{race}.
type URLBuilder struct {
	BaseURL string
}

// NewURLBuilder returns a URLBuilder for baseURL, or DefaultBaseURL when
// baseURL is empty.
func NewURLBuilder(baseURL string) *URLBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &URLBuilder{BaseURL: baseURL}
}

// RaceURL returns the race-detail page URL for key.
func (b *URLBuilder) RaceURL(key autorace.RaceKey) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	base, err := url.Parse(b.BaseURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return "", autorace.Errorf(autorace.EINVALID, "invalid base URL %q", b.BaseURL)
	}

	return base.JoinPath("race", key.Date, strconv.Itoa(key.Circuit), strconv.Itoa(key.Number)).String(), nil
}
