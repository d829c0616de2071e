package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 42.8, -76.5, 42.8, -76.5, 0, 0.001},
		// One degree of latitude is about 111.2 km everywhere.
		{"one degree latitude", 42.0, -76.0, 43.0, -76.0, 111195, 100},
		// ~0.0003 deg latitude is about 33 m, typical sensor spacing.
		{"adjacent sensors", 42.0, -76.0, 42.0003, -76.0, 33.4, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineDistance = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(42.0, -76.0, 42.9, -76.4)
	d2 := HaversineDistance(42.9, -76.4, 42.0, -76.0)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestValidCoordinate(t *testing.T) {
	region := BoundingBox{LatMin: 40, LatMax: 45, LonMin: -80, LonMax: -72}

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"inside region", 42.8, -76.5, true},
		{"null island", 0, 0, false},
		{"north of region", 50, -76.5, false},
		{"east of region", 42.8, -60, false},
		{"on boundary", 40, -80, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinate(tt.lat, tt.lon, region); got != tt.want {
				t.Errorf("ValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	lat, lon := Centroid([]float64{42.0, 42.2, 42.4}, []float64{-76.0, -76.2, -76.4})
	if math.Abs(lat-42.2) > 1e-9 || math.Abs(lon-(-76.2)) > 1e-9 {
		t.Errorf("Centroid = (%v, %v), want (42.2, -76.2)", lat, lon)
	}

	if lat, lon := Centroid(nil, nil); lat != 0 || lon != 0 {
		t.Errorf("empty centroid = (%v, %v), want (0, 0)", lat, lon)
	}
	if lat, lon := Centroid([]float64{1}, []float64{2, 3}); lat != 0 || lon != 0 {
		t.Errorf("mismatched lengths = (%v, %v), want (0, 0)", lat, lon)
	}
}
