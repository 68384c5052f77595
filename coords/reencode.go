package coords

import (
	"fmt"
	"regexp"
	"strings"
)

const dmsExpr = `(\d{2,3})\.(\d{2})\.(\d{2})\.(\d{2,3})$`

var (
	latitudeExpr  = regexp.MustCompile(`^([NS])` + dmsExpr)
	longitudeExpr = regexp.MustCompile(`^([EW])` + dmsExpr)
)

// Reencode turns a sector-file lat/lon pair such as "S028.34.14.350",
// "E016.32.01.798" into "283414S 163201E". Fractional seconds are dropped.
// Unlike Decimal this is strict: the second return value is false unless
// both values match exactly.
func Reencode(lat, lon string) (string, bool) {
	la, ok := reencodeOne(latitudeExpr, strings.TrimSpace(lat))
	if !ok {
		return "", false
	}
	lo, ok := reencodeOne(longitudeExpr, strings.TrimSpace(lon))
	if !ok {
		return "", false
	}
	return la + " " + lo, true
}

func reencodeOne(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hemi, deg, min, sec := m[1], m[2], m[3], m[4]
	if len(deg) == 3 && deg[0] == '0' {
		deg = deg[1:]
	}
	return fmt.Sprintf("%s%s%s%s", deg, min, padSeconds(sec), hemi), true
}

func padSeconds(sec string) string {
	for len(sec) < 2 {
		sec = "0" + sec
	}
	return sec
}
