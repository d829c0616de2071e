package analysis

import (
	"strings"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

// NormalizeLocation canonicalizes a free-text location identifier so
// timesheet rows and sensor exports can be joined despite inconsistent
// casing and whitespace. Blank input maps to the UNKNOWN sentinel.
func NormalizeLocation(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.UnknownLocation
	}
	return strings.ToUpper(trimmed)
}
