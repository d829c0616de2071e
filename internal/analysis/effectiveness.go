package analysis

import (
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

// OfflineVacuumFloor is the reading level at or below which a sample is
// treated as sensor-offline noise rather than a real pressure value.
// Filtering these keeps zero/error readings from corrupting daily averages.
const OfflineVacuumFloor = 1.0

// CorrelateEffectiveness joins work sessions to before/after vacuum
// aggregates per location. Before is the mean vacuum one calendar day
// before the session, falling back to two days before; after is symmetric
// at +1/+2 days. A record is emitted only when both aggregates exist.
//
// The diagnostics counters are part of the contract: operators use them to
// spot location naming mismatches between the timesheet and sensor tables.
func CorrelateEffectiveness(sessions []models.WorkSession, readings []models.SensorReading) ([]models.EffectivenessRecord, models.EffectivenessDiagnostics) {
	var diag models.EffectivenessDiagnostics

	series := BuildDailySeries(readings, OfflineVacuumFloor)
	diag.SensorLocations = len(series)

	sessionLocs := make(map[string]bool)
	var records []models.EffectivenessRecord

	for _, w := range sessions {
		if w.Date.IsZero() {
			// Unparsable work date: dropped before matching, not counted
			// in any bucket.
			continue
		}
		diag.TotalSessions++

		loc := NormalizeLocation(w.LocationID)
		if !sessionLocs[loc] {
			sessionLocs[loc] = true
			diag.SessionLocations++
			if _, ok := series[loc]; ok {
				diag.MatchedLocations++
			}
		}

		locSeries, ok := series[loc]
		if !ok || len(locSeries) == 0 {
			diag.NoMatchCount++
			continue
		}

		before, ok := locSeries.MeanWithFallback(w.Date, -1, -2)
		if !ok {
			diag.NoBeforeCount++
			continue
		}
		after, ok := locSeries.MeanWithFallback(w.Date, 1, 2)
		if !ok {
			diag.NoAfterCount++
			continue
		}

		records = append(records, models.EffectivenessRecord{
			EmployeeID:   w.EmployeeID,
			LocationID:   loc,
			WorkDate:     w.Date,
			VacuumBefore: before,
			VacuumAfter:  after,
			Improvement:  after - before,
			Hours:        w.Hours,
		})
		diag.SuccessCount++
	}

	return records, diag
}
