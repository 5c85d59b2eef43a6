package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// EncodeCoordinates converts coordinates to a geohash string
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, precision)
}

// DecodeGeohash returns the center of the geohash cell
func DecodeGeohash(hash string) models.Coordinates {
	lat, lng := geohash.Decode(hash)
	return models.Coordinates{Lat: lat, Lng: lng}
}

// HaversineKm returns the great-circle distance between two points in km
func HaversineKm(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
