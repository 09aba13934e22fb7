package catalog

import "github.com/ppiankov/floatchat/internal/model"

// defaultEntries are the demo answers
var defaultEntries = []Entry{
	{
		Key: "salinity profiles near equator march 2023",
		Record: model.ResponseRecord{
			Answer:      "Based on analysis of ARGO floats near the equatorial region, salinity profiles show typical stratification with surface values around 34.8-35.2 PSU, decreasing with depth to 34.2-34.5 PSU at 1000m. The halocline is most pronounced between 50-200m depth.",
			CitedFloats: []string{"ARGO003", "ARGO005"},
			Confidence:  0.89,
			VisualLink:  "/dashboard#profile",
			PhysicsCheck: model.Validation{
				Passed: true,
				Notes:  "Density stratification consistent with T-S relationship",
			},
		},
	},
	{
		Key: "bgc parameters arabian sea last 6 months",
		Record: model.ResponseRecord{
			Answer:      "Arabian Sea BGC analysis reveals elevated chlorophyll concentrations during monsoon periods, with oxygen minimum zones between 200-1000m. Surface productivity peaks correlate with upwelling events along the western coast.",
			CitedFloats: []string{"ARGO001", "ARGO004", "ARGO006"},
			Confidence:  0.92,
			VisualLink:  "/dashboard#bgc",
			PhysicsCheck: model.Validation{
				Passed: true,
				Notes:  "Biogeochemical cycles within expected seasonal ranges",
			},
		},
	},
	{
		Key: "nearest floats to 14.5n 72.9e",
		Record: model.ResponseRecord{
			Answer:      "Closest active ARGO floats to coordinates 14.5°N, 72.9°E are ARGO006 (18.7°N, 72.9°E) at ~460km distance and ARGO001 (15.5°N, 68.7°E) at ~420km distance. Both floats show recent data within the last 6 hours.",
			CitedFloats: []string{"ARGO006", "ARGO001"},
			Confidence:  0.95,
			VisualLink:  "/dashboard#map",
			PhysicsCheck: model.Validation{
				Passed: true,
				Notes:  "Geographic proximity and data currency verified",
			},
		},
	},
}

// Default returns the built-in demo catalog
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic("catalog: invalid default entries: " + err.Error())
	}
	return c
}

// SuggestedQueries returns the prompts offered to new chat users
func SuggestedQueries() []string {
	return []string{
		"Show me salinity profiles near equator March 2023",
		"Compare BGC parameters in Arabian Sea last 6 months",
		"Nearest floats to 14.5N, 72.9E",
		"Temperature anomalies in the last week",
		"Oxygen levels in the Indian Ocean",
		"Chlorophyll concentrations during monsoon",
	}
}
