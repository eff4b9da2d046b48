package goquery

import (
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/autorace"
	"golang.org/x/text/width"
)

// normalizeNumber folds full-width digits and signs to ASCII.
func normalizeNumber(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}

// parseFloat converts text to a finite float. Anything else is absent.
func parseFloat(text autorace.Optional[string]) autorace.Optional[float64] {
	return autorace.AndThen(text, func(s string) autorace.Optional[float64] {
		f, err := strconv.ParseFloat(normalizeNumber(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return autorace.None[float64]()
		}
		return autorace.Some(f)
	})
}

// parseInt converts text to an int. Anything else is absent.
func parseInt(text autorace.Optional[string]) autorace.Optional[int] {
	return autorace.AndThen(text, func(s string) autorace.Optional[int] {
		n, err := strconv.Atoi(normalizeNumber(s))
		if err != nil {
			return autorace.None[int]()
		}
		return autorace.Some(n)
	})
}
