// Package coords decodes the hemisphere-prefixed degrees.minutes.seconds
// coordinates used in sector files, e.g. "N051.28.39.000".
package coords

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ParseError reports a coordinate that could not be decoded.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid coordinate '%s': %s", e.Value, e.Reason)
}

// Decimal converts "<H><DD|DDD>.<MM>.<SS>.<fff>" into decimal degrees.
// Southern and western hemispheres are negative. The hemisphere letter is
// not checked against the axis: "E051.00.00.000" decodes like a latitude
// would.
func Decimal(s string) (float64, error) {
	if len(s) == 0 {
		return 0, &ParseError{Value: s, Reason: "empty value"}
	}

	sign := 1.
	switch s[0] {
	case 'N', 'E':
	case 'S', 'W':
		sign = -1.
	default:
		return 0, &ParseError{Value: s, Reason: "missing N/S/E/W hemisphere"}
	}

	parts := strings.Split(s[1:], ".")
	if len(parts) != 4 {
		return 0, &ParseError{Value: s, Reason: fmt.Sprintf("expected 4 dotted fields, got %d", len(parts))}
	}

	deg, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Value: s, Reason: fmt.Sprintf("bad degrees '%s'", parts[0])}
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ParseError{Value: s, Reason: fmt.Sprintf("bad minutes '%s'", parts[1])}
	}
	sec, err := strconv.ParseFloat(parts[2]+"."+parts[3], 64)
	if err != nil {
		return 0, &ParseError{Value: s, Reason: fmt.Sprintf("bad seconds '%s.%s'", parts[2], parts[3])}
	}

	return sign * (float64(deg) + float64(min)/60 + sec/3600), nil
}

// DecimalOrZero is Decimal with malformed input mapped to 0.
func DecimalOrZero(s string) float64 {
	v, err := Decimal(s)
	if err != nil {
		return 0
	}
	return v
}

// Point decodes a latitude/longitude pair into an orb.Point (lon, lat).
func Point(lat, lon string) (orb.Point, error) {
	y, err := Decimal(lat)
	if err != nil {
		return orb.Point{}, err
	}
	x, err := Decimal(lon)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

// HasLatitudePrefix reports whether s starts with a N or S hemisphere letter.
func HasLatitudePrefix(s string) bool {
	return strings.HasPrefix(s, "N") || strings.HasPrefix(s, "S")
}
