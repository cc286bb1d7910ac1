package distance

import (
	"math"
	"strings"
)

const (
	earthRadiusMiles = 3959

	// Straight-line centroid distance understates driving distance; the
	// circuity factor and buffer compensate.
	circuityFactor = 1.3
	fallbackBuffer = 1.2

	// Returned when either state is missing from the centroid table.
	defaultFallbackMiles = 500
)

// stateCentroids holds approximate center-point coordinates per state.
var stateCentroids = map[string][2]float64{
	"AL": {32.806671, -86.791130}, "AK": {61.370716, -152.404419}, "AZ": {33.729759, -111.431221},
	"AR": {34.969704, -92.373123}, "CA": {36.116203, -119.681564}, "CO": {39.059811, -105.311104},
	"CT": {41.767, -72.677}, "DE": {39.161921, -75.526755}, "FL": {27.4518, -81.5158},
	"GA": {32.9866, -83.6487}, "HI": {21.1098, -157.5311}, "ID": {44.2394, -114.5103},
	"IL": {40.3363, -89.0022}, "IN": {39.8647, -86.2604}, "IA": {42.0046, -93.214},
	"KS": {38.5111, -96.8005}, "KY": {37.669, -84.6514}, "LA": {31.1801, -91.8749},
	"ME": {44.323535, -69.765261}, "MD": {39.0458, -76.6413}, "MA": {42.2373, -71.5314},
	"MI": {43.3504, -84.5603}, "MN": {45.7326, -93.9196}, "MS": {32.7673, -89.6812},
	"MO": {38.4623, -92.302}, "MT": {47.0527, -110.2854}, "NE": {41.1289, -98.2883},
	"NV": {38.4199, -117.1219}, "NH": {43.4108, -71.5653}, "NJ": {40.314, -74.5089},
	"NM": {34.8375, -106.2371}, "NY": {42.9538, -75.5268}, "NC": {35.630066, -79.806419},
	"ND": {47.5362, -99.793}, "OH": {40.3963, -82.7755}, "OK": {35.5376, -96.9247},
	"OR": {44.931109, -120.767178}, "PA": {40.269789, -76.875613}, "RI": {41.82355, -71.422132},
	"SC": {33.836082, -81.163727}, "SD": {44.299782, -99.438828}, "TN": {35.747845, -86.692345},
	"TX": {31.106, -97.6475}, "UT": {40.1135, -111.8535}, "VT": {44.0407, -72.7093},
	"VA": {37.768, -78.2057}, "WA": {47.3917, -121.5708}, "WV": {38.468, -80.9696},
	"WI": {44.2563, -89.6385}, "WY": {42.7475, -107.2085},
}

// Fallback deterministically estimates the driving distance between two
// states from their centroid coordinates. Unknown states yield the default
// distance.
func Fallback(originState, destinationState string) float64 {
	origin, okO := stateCentroids[strings.ToUpper(strings.TrimSpace(originState))]
	dest, okD := stateCentroids[strings.ToUpper(strings.TrimSpace(destinationState))]
	if !okO || !okD {
		return defaultFallbackMiles
	}

	miles := haversine(origin[0], origin[1], dest[0], dest[1])
	return miles * circuityFactor * fallbackBuffer
}

// haversine returns the great-circle distance in miles.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
