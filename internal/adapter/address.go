package adapter

import (
	"regexp"
	"strconv"
	"strings"
)

// countryPrefix is the country token the geocoding service prepends to
// Japanese formatted addresses. It carries no information for a user who
// is already in Japan, so display addresses drop it.
const countryPrefix = "日本、"

// postalCodePattern matches a Japanese postal code at the start of an
// address: an optional 〒 mark, three digits, an optional hyphen, four
// digits, and trailing whitespace.
var postalCodePattern = regexp.MustCompile(`^〒?\d{3}-?\d{4}\s*`)

// NormalizeAddress strips the leading country token and postal code from a
// geocoded formatted address, leaving the part a person would actually
// write down.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	address = strings.TrimPrefix(address, countryPrefix)
	address = postalCodePattern.ReplaceAllString(address, "")

	return strings.TrimSpace(address)
}

// FormatCoordinates renders a coordinate pair as "lat, lng" with the
// shortest exact decimal representation. Used as the address fallback when
// reverse geocoding is unavailable.
func FormatCoordinates(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lng, 'f', -1, 64)
}
