package types

import (
	"fmt"
	"strings"
)

// Region is one of the seven fixed geographic buckets a funding belongs to.
type Region string

const (
	RegionSeoul           Region = "SEOUL"
	RegionIncheonGyeonggi Region = "INCHEON_GYEONGGI"
	RegionGyeongsang      Region = "GYEONGSANG"
	RegionChungcheong     Region = "CHUNGCHEONG"
	RegionGangwon         Region = "GANGWON"
	RegionJeolla          Region = "JEOLLA"
	RegionJeju            Region = "JEJU"
)

// DefaultRegion is used when the user's saved region cannot be loaded.
const DefaultRegion = RegionSeoul

// Regions lists all regions in display order.
var Regions = []Region{
	RegionSeoul,
	RegionIncheonGyeonggi,
	RegionGyeongsang,
	RegionChungcheong,
	RegionGangwon,
	RegionJeolla,
	RegionJeju,
}

var regionLabels = map[Region]string{
	RegionSeoul:           "Seoul",
	RegionIncheonGyeonggi: "Incheon/Gyeonggi",
	RegionGyeongsang:      "Gyeongsang-do",
	RegionChungcheong:     "Chungcheong-do",
	RegionGangwon:         "Gangwon-do",
	RegionJeolla:          "Jeolla-do",
	RegionJeju:            "Jeju-do",
}

// Valid reports whether r is one of the seven known regions.
func (r Region) Valid() bool {
	_, ok := regionLabels[r]
	return ok
}

// Label returns the human-readable display label. Unknown regions fall back
// to the raw code.
func (r Region) Label() string {
	if label, ok := regionLabels[r]; ok {
		return label
	}
	return string(r)
}

// ParseRegion accepts a region code in any case ("jeju", "JEJU",
// "incheon_gyeonggi") and returns the canonical Region.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}
