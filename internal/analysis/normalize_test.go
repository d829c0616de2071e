package analysis

import (
	"testing"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "ML-5", "ML-5"},
		{"lowercase", "ml-5", "ML-5"},
		{"trailing whitespace", "ml-5 ", "ML-5"},
		{"surrounding whitespace", "  Tank 2\t", "TANK 2"},
		{"interior whitespace preserved", "NORTH  WOODS", "NORTH  WOODS"},
		{"empty", "", models.UnknownLocation},
		{"whitespace only", "   ", models.UnknownLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLocation(tt.in); got != tt.want {
				t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLocationIdempotent(t *testing.T) {
	for _, in := range []string{"ml-5 ", "", "Tank 2", "UNKNOWN"} {
		once := NormalizeLocation(in)
		if twice := NormalizeLocation(once); twice != once {
			t.Errorf("NormalizeLocation not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
