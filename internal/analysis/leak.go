package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/stats"
)

// LeakParams configures the two sliding-window leak checks.
type LeakParams struct {
	SuddenWindowHours float64
	SuddenThreshold   float64
	GradualWindowDays float64
	GradualThreshold  float64
}

// minGradualReadings is the smallest trailing sample that makes the
// early-quarter average meaningful.
const minGradualReadings = 10

// DetectLeaks scans each sensor's own time series for sudden and gradual
// vacuum degradation.
//
// Sudden: within the trailing window ending at the latest reading, the
// maximum observed vacuum minus the latest reading must meet the
// threshold. Needs at least two readings in the window; fewer is
// insufficient data and the check is skipped, never reported as healthy.
//
// Gradual: only when no sudden leak was raised. Within the trailing
// day-window, the mean of the oldest quarter of readings is compared to
// the latest reading. A sensor therefore never carries both events in one
// call — a fast collapse already explains a slow decline.
//
// Output is sorted most urgent first: priority ascending (sudden before
// gradual), then drop magnitude descending.
func DetectLeaks(readings []models.SensorReading, p LeakParams) []models.LeakEvent {
	bySensor := make(map[string][]models.SensorReading)
	for _, r := range readings {
		if r.Timestamp.IsZero() {
			continue
		}
		id := NormalizeLocation(r.SensorID)
		bySensor[id] = append(bySensor[id], r)
	}

	sensors := make([]string, 0, len(bySensor))
	for id := range bySensor {
		sensors = append(sensors, id)
	}
	sort.Strings(sensors)

	var events []models.LeakEvent
	for _, id := range sensors {
		series := bySensor[id]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Timestamp.Before(series[j].Timestamp)
		})
		if len(series) < 2 {
			continue
		}

		latest := series[len(series)-1]
		current := latest.Vacuum

		if ev, ok := suddenLeak(id, series, latest.Timestamp, current, p); ok {
			events = append(events, ev)
			continue
		}
		if ev, ok := gradualLeak(id, series, latest.Timestamp, current, p); ok {
			events = append(events, ev)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Priority != events[j].Priority {
			return events[i].Priority < events[j].Priority
		}
		return events[i].Drop > events[j].Drop
	})
	return events
}

func suddenLeak(id string, series []models.SensorReading, latestAt time.Time, current float64, p LeakParams) (models.LeakEvent, bool) {
	cutoff := latestAt.Add(-time.Duration(p.SuddenWindowHours * float64(time.Hour)))

	var recent []float64
	for _, r := range series {
		if !r.Timestamp.Before(cutoff) {
			recent = append(recent, r.Vacuum)
		}
	}
	if len(recent) < 2 {
		// Insufficient data, not evidence of health.
		return models.LeakEvent{}, false
	}

	maxRecent := stats.Max(recent)
	drop := maxRecent - current
	if drop < p.SuddenThreshold {
		return models.LeakEvent{}, false
	}

	severity := models.SeverityHigh
	if drop > 8 {
		severity = models.SeverityCritical
	}
	return models.LeakEvent{
		SensorID:        id,
		Kind:            models.LeakSudden,
		CurrentVacuum:   current,
		ReferenceVacuum: maxRecent,
		Drop:            drop,
		Window:          fmt.Sprintf("%gh", p.SuddenWindowHours),
		Severity:        severity,
		DetectedAt:      latestAt,
		Priority:        1,
	}, true
}

func gradualLeak(id string, series []models.SensorReading, latestAt time.Time, current float64, p LeakParams) (models.LeakEvent, bool) {
	cutoff := latestAt.Add(-time.Duration(p.GradualWindowDays * 24 * float64(time.Hour)))

	var window []float64
	for _, r := range series {
		if !r.Timestamp.Before(cutoff) {
			window = append(window, r.Vacuum)
		}
	}
	if len(window) < minGradualReadings {
		return models.LeakEvent{}, false
	}

	earlyAvg := stats.Mean(window[:len(window)/4])
	drop := earlyAvg - current
	if drop < p.GradualThreshold {
		return models.LeakEvent{}, false
	}

	severity := models.SeverityMedium
	if drop >= 5 {
		severity = models.SeverityHigh
	}
	return models.LeakEvent{
		SensorID:        id,
		Kind:            models.LeakGradual,
		CurrentVacuum:   current,
		ReferenceVacuum: earlyAvg,
		Drop:            drop,
		Window:          fmt.Sprintf("%gd", p.GradualWindowDays),
		Severity:        severity,
		DetectedAt:      latestAt,
		Priority:        2,
	}, true
}
