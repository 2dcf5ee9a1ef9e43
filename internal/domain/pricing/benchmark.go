package pricing

import (
	"strings"

	"quotesmith/internal/domain/entities"
)

// regionalBenchmarks holds historical average margins per (job type, region).
// Lookups fall back first to the "default" job-type row, then to the default
// region column within a row.
var regionalBenchmarks = map[string]map[entities.Region]float64{
	"bathroom remodel": {
		entities.RegionNortheast: 0.32,
		entities.RegionSoutheast: 0.27,
		entities.RegionMidwest:   0.26,
		entities.RegionSouthwest: 0.28,
		entities.RegionWest:      0.34,
		entities.RegionDefault:   0.29,
	},
	"kitchen remodel": {
		entities.RegionNortheast: 0.33,
		entities.RegionSoutheast: 0.28,
		entities.RegionMidwest:   0.27,
		entities.RegionSouthwest: 0.29,
		entities.RegionWest:      0.35,
		entities.RegionDefault:   0.30,
	},
	"lawn mowing": {
		entities.RegionNortheast: 0.30,
		entities.RegionSoutheast: 0.34,
		entities.RegionMidwest:   0.29,
		entities.RegionSouthwest: 0.32,
		entities.RegionWest:      0.31,
		entities.RegionDefault:   0.31,
	},
	"oil change": {
		entities.RegionNortheast: 0.36,
		entities.RegionSoutheast: 0.33,
		entities.RegionMidwest:   0.32,
		entities.RegionSouthwest: 0.33,
		entities.RegionWest:      0.37,
		entities.RegionDefault:   0.34,
	},
	"house cleaning": {
		entities.RegionNortheast: 0.42,
		entities.RegionSoutheast: 0.38,
		entities.RegionMidwest:   0.37,
		entities.RegionSouthwest: 0.39,
		entities.RegionWest:      0.43,
		entities.RegionDefault:   0.40,
	},
	"water heater replacement": {
		entities.RegionNortheast: 0.31,
		entities.RegionSoutheast: 0.28,
		entities.RegionMidwest:   0.28,
		entities.RegionSouthwest: 0.29,
		entities.RegionWest:      0.33,
		entities.RegionDefault:   0.30,
	},
	"panel upgrade": {
		entities.RegionNortheast: 0.34,
		entities.RegionSoutheast: 0.30,
		entities.RegionMidwest:   0.29,
		entities.RegionSouthwest: 0.31,
		entities.RegionWest:      0.35,
		entities.RegionDefault:   0.32,
	},
	"lock rekey": {
		entities.RegionNortheast: 0.46,
		entities.RegionSoutheast: 0.43,
		entities.RegionMidwest:   0.42,
		entities.RegionSouthwest: 0.44,
		entities.RegionWest:      0.47,
		entities.RegionDefault:   0.45,
	},
	DefaultIndustry: {
		entities.RegionNortheast: 0.32,
		entities.RegionSoutheast: 0.29,
		entities.RegionMidwest:   0.28,
		entities.RegionSouthwest: 0.30,
		entities.RegionWest:      0.33,
		entities.RegionDefault:   0.30,
	},
}

// BenchmarkMargin returns the historical average margin for a job type in a
// region. Unknown job types use the default row; unknown regions use the
// default column. It never fails.
func BenchmarkMargin(jobType string, region entities.Region) float64 {
	row, ok := regionalBenchmarks[strings.ToLower(strings.TrimSpace(jobType))]
	if !ok {
		row = regionalBenchmarks[DefaultIndustry]
	}
	if v, ok := row[region]; ok {
		return v
	}
	return row[entities.RegionDefault]
}
