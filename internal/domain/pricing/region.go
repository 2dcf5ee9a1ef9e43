package pricing

import (
	"strings"

	"quotesmith/internal/domain/entities"
)

type regionEntry struct {
	match  string
	region entities.Region
}

// Ordered state-abbreviation table scanned first. First containing match
// wins; there is no ambiguity resolution beyond "first found".
var stateAbbreviations = []regionEntry{
	{"ME", entities.RegionNortheast}, {"NH", entities.RegionNortheast},
	{"VT", entities.RegionNortheast}, {"MA", entities.RegionNortheast},
	{"RI", entities.RegionNortheast}, {"CT", entities.RegionNortheast},
	{"NY", entities.RegionNortheast}, {"NJ", entities.RegionNortheast},
	{"PA", entities.RegionNortheast},
	{"DE", entities.RegionSoutheast}, {"MD", entities.RegionSoutheast},
	{"VA", entities.RegionSoutheast}, {"WV", entities.RegionSoutheast},
	{"NC", entities.RegionSoutheast}, {"SC", entities.RegionSoutheast},
	{"GA", entities.RegionSoutheast}, {"FL", entities.RegionSoutheast},
	{"KY", entities.RegionSoutheast}, {"TN", entities.RegionSoutheast},
	{"AL", entities.RegionSoutheast}, {"MS", entities.RegionSoutheast},
	{"AR", entities.RegionSoutheast}, {"LA", entities.RegionSoutheast},
	{"OH", entities.RegionMidwest}, {"IN", entities.RegionMidwest},
	{"IL", entities.RegionMidwest}, {"MI", entities.RegionMidwest},
	{"WI", entities.RegionMidwest}, {"MN", entities.RegionMidwest},
	{"IA", entities.RegionMidwest}, {"MO", entities.RegionMidwest},
	{"ND", entities.RegionMidwest}, {"SD", entities.RegionMidwest},
	{"NE", entities.RegionMidwest}, {"KS", entities.RegionMidwest},
	{"TX", entities.RegionSouthwest}, {"OK", entities.RegionSouthwest},
	{"NM", entities.RegionSouthwest}, {"AZ", entities.RegionSouthwest},
	{"CO", entities.RegionWest}, {"WY", entities.RegionWest},
	{"MT", entities.RegionWest}, {"ID", entities.RegionWest},
	{"WA", entities.RegionWest}, {"OR", entities.RegionWest},
	{"UT", entities.RegionWest}, {"NV", entities.RegionWest},
	{"CA", entities.RegionWest}, {"AK", entities.RegionWest},
	{"HI", entities.RegionWest},
}

// Full state names scanned when no abbreviation matched.
var stateNames = []regionEntry{
	{"maine", entities.RegionNortheast}, {"new hampshire", entities.RegionNortheast},
	{"vermont", entities.RegionNortheast}, {"massachusetts", entities.RegionNortheast},
	{"rhode island", entities.RegionNortheast}, {"connecticut", entities.RegionNortheast},
	{"new york", entities.RegionNortheast}, {"new jersey", entities.RegionNortheast},
	{"pennsylvania", entities.RegionNortheast},
	{"delaware", entities.RegionSoutheast}, {"maryland", entities.RegionSoutheast},
	{"virginia", entities.RegionSoutheast}, {"west virginia", entities.RegionSoutheast},
	{"north carolina", entities.RegionSoutheast}, {"south carolina", entities.RegionSoutheast},
	{"georgia", entities.RegionSoutheast}, {"florida", entities.RegionSoutheast},
	{"kentucky", entities.RegionSoutheast}, {"tennessee", entities.RegionSoutheast},
	{"alabama", entities.RegionSoutheast}, {"mississippi", entities.RegionSoutheast},
	{"arkansas", entities.RegionSoutheast}, {"louisiana", entities.RegionSoutheast},
	{"ohio", entities.RegionMidwest}, {"indiana", entities.RegionMidwest},
	{"illinois", entities.RegionMidwest}, {"michigan", entities.RegionMidwest},
	{"wisconsin", entities.RegionMidwest}, {"minnesota", entities.RegionMidwest},
	{"iowa", entities.RegionMidwest}, {"missouri", entities.RegionMidwest},
	{"north dakota", entities.RegionMidwest}, {"south dakota", entities.RegionMidwest},
	{"nebraska", entities.RegionMidwest}, {"kansas", entities.RegionMidwest},
	{"texas", entities.RegionSouthwest}, {"oklahoma", entities.RegionSouthwest},
	{"new mexico", entities.RegionSouthwest}, {"arizona", entities.RegionSouthwest},
	{"colorado", entities.RegionWest}, {"wyoming", entities.RegionWest},
	{"montana", entities.RegionWest}, {"idaho", entities.RegionWest},
	{"washington", entities.RegionWest}, {"oregon", entities.RegionWest},
	{"utah", entities.RegionWest}, {"nevada", entities.RegionWest},
	{"california", entities.RegionWest}, {"alaska", entities.RegionWest},
	{"hawaii", entities.RegionWest},
}

// ResolveRegion maps a free-text location to a benchmarking region. It is a
// pure function of the input string and returns the default bucket when
// nothing matches, including an empty location.
//
// Both scans are plain containing matches: an abbreviation fires even inside
// an ordinary word ("Springfield" hits RI), and the table order decides
// between overlapping hits.
func ResolveRegion(location string) entities.Region {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return entities.RegionDefault
	}

	upper := strings.ToUpper(loc)
	for _, e := range stateAbbreviations {
		if strings.Contains(upper, e.match) {
			return e.region
		}
	}

	lower := strings.ToLower(loc)
	for _, e := range stateNames {
		if strings.Contains(lower, e.match) {
			return e.region
		}
	}
	return entities.RegionDefault
}
