package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/stats"
)

// FreezeDropParams configures freeze-day drop detection.
type FreezeDropParams struct {
	FreezingPoint float64
	DropThreshold float64
	RateWatch     float64
	RateLikely    float64
}

// IsFreezeThawDay reports whether a day crosses the freezing point: low
// below it and high above it. During these transitions open or leaking
// lines freeze faster than sealed ones, so vacuum drops reveal problems.
func IsFreezeThawDay(high, low, freezingPoint float64) bool {
	return low < freezingPoint && high > freezingPoint
}

// ClassifyFreezeStatus labels the current day's monitoring priority from
// today's and tomorrow's temperature extremes. Today's urgency dominates
// tomorrow's forecast: a freeze/thaw day is always CRITICAL even when
// tomorrow also qualifies. Missing today inputs yield UNKNOWN.
func ClassifyFreezeStatus(todayHigh, todayLow, tomorrowHigh, tomorrowLow *float64, freezingPoint float64) models.FreezeStatus {
	status := models.FreezeStatus{
		TodayHigh:    todayHigh,
		TodayLow:     todayLow,
		TomorrowHigh: tomorrowHigh,
		TomorrowLow:  tomorrowLow,
		Label:        models.FreezeUnknown,
	}

	if todayHigh == nil || todayLow == nil {
		return status
	}

	status.IsFreezeThaw = IsFreezeThawDay(*todayHigh, *todayLow, freezingPoint)
	status.TomorrowFreezeThaw = tomorrowHigh != nil && tomorrowLow != nil &&
		IsFreezeThawDay(*tomorrowHigh, *tomorrowLow, freezingPoint)
	status.SapFlowScore = SapFlowScore(*todayHigh, *todayLow, freezingPoint)

	switch {
	case status.IsFreezeThaw:
		status.Label = models.FreezeCritical
	case status.TomorrowFreezeThaw:
		status.Label = models.FreezeUpcoming
	default:
		status.Label = models.FreezeLowPriority
	}
	return status
}

// SapFlowScore estimates sap flow likelihood (0-100) from one day's
// temperature extremes. Ideal conditions: a freeze/thaw cycle, a 15-25
// degree swing, lows near 25 and highs near 45.
func SapFlowScore(high, low, freezingPoint float64) int {
	score := 0.0

	if IsFreezeThawDay(high, low, freezingPoint) {
		score += 40
	}

	swing := high - low
	if swing >= 15 && swing <= 25 {
		score += 30
	}

	lowScore := math.Max(0, 20-math.Abs(low-25)*2)
	highScore := math.Max(0, 20-math.Abs(high-45)*2)
	score += (lowScore + highScore) / 2

	return int(stats.Clamp(score, 0, 100))
}

// DetectFreezeDropSensors identifies sensors whose vacuum disproportionately
// drops on freeze/thaw days, indicating a hidden leak.
//
// For each sensor, one daily-mean vacuum per calendar day is computed.
// A freeze/thaw day qualifies as observed only when the immediately
// preceding calendar day also has a mean to compare against; it counts as
// a drop day when the freeze day's mean sits at least DropThreshold below
// the prior day's. Sensors with no qualifying freeze day, or fewer than
// two daily points overall, are excluded from output entirely: absence of
// evidence is not evidence of health.
func DetectFreezeDropSensors(readings []models.SensorReading, temps []models.DailyTemperature, p FreezeDropParams) []models.FreezeDropProfile {
	freezeDays := make(map[string]bool)
	for _, t := range temps {
		if t.Date.IsZero() {
			continue
		}
		if IsFreezeThawDay(t.High, t.Low, p.FreezingPoint) {
			freezeDays[models.DayKey(t.Date)] = true
		}
	}
	if len(freezeDays) == 0 {
		return nil
	}

	// Offline zeros stay in: a frozen or leaking line reads low, not missing.
	series := BuildDailySeries(readings, math.Inf(-1))

	sensors := make([]string, 0, len(series))
	for id := range series {
		sensors = append(sensors, id)
	}
	sort.Strings(sensors)

	var profiles []models.FreezeDropProfile
	for _, id := range sensors {
		days := series[id].SortedDays()
		if len(days) < 2 {
			continue
		}
		means := series[id].DailyMeans()

		observed := 0
		dropDays := 0
		sumDrops := 0.0
		for _, day := range days {
			if !freezeDays[day] {
				continue
			}
			prior, ok := means[previousDay(day)]
			if !ok {
				// No prior-day aggregate to compare against: the day is
				// not a qualifying observation.
				continue
			}
			observed++
			drop := prior - means[day]
			if drop >= p.DropThreshold {
				dropDays++
				sumDrops += drop
			}
		}
		if observed == 0 {
			continue
		}

		avgDrop := 0.0
		if dropDays > 0 {
			avgDrop = sumDrops / float64(dropDays)
		}
		rate := float64(dropDays) / float64(observed)

		status := models.FreezeDropOk
		switch {
		case rate >= p.RateLikely:
			status = models.FreezeDropLikelyLeak
		case rate >= p.RateWatch:
			status = models.FreezeDropWatch
		}

		profiles = append(profiles, models.FreezeDropProfile{
			SensorID:           id,
			AvgDrop:            avgDrop,
			FreezeDaysObserved: observed,
			FreezeDaysWithDrop: dropDays,
			DropRate:           rate,
			LatestVacuum:       means[days[len(days)-1]],
			Status:             status,
		})
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].DropRate != profiles[j].DropRate {
			return profiles[i].DropRate > profiles[j].DropRate
		}
		return profiles[i].SensorID < profiles[j].SensorID
	})
	return profiles
}

func previousDay(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return ""
	}
	return models.DayKey(t.AddDate(0, 0, -1))
}
