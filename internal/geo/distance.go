// Package geo provides the great-circle distance math behind the nearby
// query and the distance annotations on its results.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius used across the app.
const earthRadiusMiles = 3958.8

// Distance returns the Haversine great-circle distance in miles between two
// coordinate pairs. The exact value is returned; display code rounds with
// Round1.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// Round1 rounds a distance to one decimal place for display.
func Round1(miles float64) float64 {
	return math.Round(miles*10) / 10
}

func toRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
