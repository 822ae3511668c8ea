package home

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/ducktracker/reports-backend-go/internal/geo"
)

// DigitSource yields decimal digits for coordinate anonymization. It is an
// injected capability so exports can be made deterministic in tests.
type DigitSource interface {
	Digit() int
}

type randDigits struct {
	r *rand.Rand
}

// NewRandDigits returns a DigitSource backed by math/rand.
func NewRandDigits() DigitSource {
	return &randDigits{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randDigits) Digit() int {
	return s.r.Intn(10)
}

// MaskedCoordinate is an anonymized home coordinate: the 4-decimal strings of
// the real home with the last digit of each axis replaced. Computed once per
// user per run and reused for every row at that user's home.
type MaskedCoordinate struct {
	Lat string
	Lon string
}

// Mask anonymizes a home coordinate by replacing the final digit of its
// latitude and longitude strings with independently drawn digits. The real
// coordinate still drives all dwell bookkeeping; only the printed form is
// masked.
func Mask(c geo.Coordinate, digits DigitSource) MaskedCoordinate {
	return MaskedCoordinate{
		Lat: replaceLastDigit(c.LatString(), digits.Digit()),
		Lon: replaceLastDigit(c.LonString(), digits.Digit()),
	}
}

func replaceLastDigit(s string, d int) string {
	return s[:len(s)-1] + strconv.Itoa(d)
}
