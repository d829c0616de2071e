package analysis

import (
	"sort"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/stats"
)

// DailySeries holds one location's vacuum readings bucketed by calendar day.
type DailySeries map[string][]float64

// BuildDailySeries groups readings by normalized location and calendar day.
// Readings with a zero timestamp or a vacuum at or below floor are
// excluded from the buckets.
func BuildDailySeries(readings []models.SensorReading, floor float64) map[string]DailySeries {
	out := make(map[string]DailySeries)
	for _, r := range readings {
		if r.Timestamp.IsZero() {
			continue
		}
		if r.Vacuum <= floor {
			continue
		}
		id := NormalizeLocation(r.SensorID)
		day := models.DayKey(r.Timestamp)
		if out[id] == nil {
			out[id] = make(DailySeries)
		}
		out[id][day] = append(out[id][day], r.Vacuum)
	}
	return out
}

// MeanWithFallback returns the mean reading for the first offset (in days
// relative to target) whose calendar day has any readings. The bool is
// false when every offset day is empty.
func (s DailySeries) MeanWithFallback(target time.Time, offsets ...int) (float64, bool) {
	for _, off := range offsets {
		day := models.DayKey(target.AddDate(0, 0, off))
		if vs, ok := s[day]; ok && len(vs) > 0 {
			return stats.Mean(vs), true
		}
	}
	return 0, false
}

// DailyMeans collapses the series to one mean per day.
func (s DailySeries) DailyMeans() map[string]float64 {
	means := make(map[string]float64, len(s))
	for day, vs := range s {
		means[day] = stats.Mean(vs)
	}
	return means
}

// SortedDays returns the series' day keys in ascending calendar order.
func (s DailySeries) SortedDays() []string {
	days := make([]string, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}
