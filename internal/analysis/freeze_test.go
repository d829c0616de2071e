package analysis

import (
	"testing"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

func f(v float64) *float64 { return &v }

func testFreezeDropParams() FreezeDropParams {
	return FreezeDropParams{
		FreezingPoint: 32,
		DropThreshold: 3,
		RateWatch:     0.30,
		RateLikely:    0.60,
	}
}

func TestIsFreezeThawDay(t *testing.T) {
	tests := []struct {
		name      string
		high, low float64
		want      bool
	}{
		{"crossing", 40, 28, true},
		{"all below", 25, 20, false},
		{"all above", 50, 35, false},
		{"low at freezing point", 40, 32, false},
		{"high at freezing point", 32, 28, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFreezeThawDay(tt.high, tt.low, 32); got != tt.want {
				t.Errorf("IsFreezeThawDay(%v, %v) = %v, want %v", tt.high, tt.low, got, tt.want)
			}
		})
	}
}

func TestClassifyFreezeStatusCritical(t *testing.T) {
	status := ClassifyFreezeStatus(f(40), f(28), f(45), f(35), 32)
	if status.Label != models.FreezeCritical {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeCritical)
	}
	if !status.IsFreezeThaw {
		t.Error("IsFreezeThaw = false, want true")
	}
}

func TestClassifyFreezeStatusUpcoming(t *testing.T) {
	// Today stays above freezing; tomorrow crosses.
	status := ClassifyFreezeStatus(f(50), f(35), f(42), f(27), 32)
	if status.Label != models.FreezeUpcoming {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeUpcoming)
	}
	if !status.TomorrowFreezeThaw {
		t.Error("TomorrowFreezeThaw = false, want true")
	}
}

func TestClassifyFreezeStatusLowPriority(t *testing.T) {
	status := ClassifyFreezeStatus(f(25), f(20), f(26), f(19), 32)
	if status.Label != models.FreezeLowPriority {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeLowPriority)
	}
}

func TestClassifyFreezeStatusTodayDominatesTomorrow(t *testing.T) {
	// Both days cross: today's urgency wins.
	status := ClassifyFreezeStatus(f(40), f(28), f(41), f(27), 32)
	if status.Label != models.FreezeCritical {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeCritical)
	}
}

func TestClassifyFreezeStatusUnknown(t *testing.T) {
	status := ClassifyFreezeStatus(nil, f(28), f(41), f(27), 32)
	if status.Label != models.FreezeUnknown {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeUnknown)
	}
	if status.SapFlowScore != 0 {
		t.Errorf("SapFlowScore = %d, want 0 without today's extremes", status.SapFlowScore)
	}
}

func TestClassifyFreezeStatusMissingTomorrow(t *testing.T) {
	// Today is classifiable on its own; a missing forecast only
	// disables the UPCOMING branch.
	status := ClassifyFreezeStatus(f(40), f(28), nil, nil, 32)
	if status.Label != models.FreezeCritical {
		t.Errorf("Label = %v, want %v", status.Label, models.FreezeCritical)
	}
	if status.TomorrowFreezeThaw {
		t.Error("TomorrowFreezeThaw = true with nil forecast")
	}
}

func TestSapFlowScore(t *testing.T) {
	tests := []struct {
		name      string
		high, low float64
		want      int
	}{
		{"ideal day", 45, 25, 90},
		{"warm no crossing", 50, 40, 5},
		{"deep freeze", 20, 10, 0},
		{"crossing small swing", 38, 28, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SapFlowScore(tt.high, tt.low, 32)
			if got != tt.want {
				t.Errorf("SapFlowScore(%v, %v) = %d, want %d", tt.high, tt.low, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0, 100]", got)
			}
		})
	}
}

func dailyReading(sensor string, y int, m time.Month, d int, vacuum float64) models.SensorReading {
	return models.SensorReading{
		SensorID:  sensor,
		Timestamp: time.Date(y, m, d, 12, 0, 0, 0, time.UTC),
		Vacuum:    vacuum,
	}
}

func freezeTemps() []models.DailyTemperature {
	return []models.DailyTemperature{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), High: 50, Low: 40},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), High: 40, Low: 25},
		{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), High: 48, Low: 36},
		{Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), High: 38, Low: 27},
	}
}

func TestDetectFreezeDropSensorsClassification(t *testing.T) {
	readings := []models.SensorReading{
		// LEAKY drops hard on both freeze days (Mar 2 and Mar 4).
		dailyReading("LEAKY", 2024, 3, 1, 20),
		dailyReading("LEAKY", 2024, 3, 2, 14),
		dailyReading("LEAKY", 2024, 3, 3, 20),
		dailyReading("LEAKY", 2024, 3, 4, 15),
		// WOBBLY drops on one of the two freeze days.
		dailyReading("WOBBLY", 2024, 3, 1, 20),
		dailyReading("WOBBLY", 2024, 3, 2, 16),
		dailyReading("WOBBLY", 2024, 3, 3, 20),
		dailyReading("WOBBLY", 2024, 3, 4, 19.5),
		// SOLID holds vacuum through both.
		dailyReading("SOLID", 2024, 3, 1, 22),
		dailyReading("SOLID", 2024, 3, 2, 21.5),
		dailyReading("SOLID", 2024, 3, 3, 22),
		dailyReading("SOLID", 2024, 3, 4, 21),
	}

	profiles := DetectFreezeDropSensors(readings, freezeTemps(), testFreezeDropParams())
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}

	// Sorted worst-first.
	if profiles[0].SensorID != "LEAKY" || profiles[0].Status != models.FreezeDropLikelyLeak {
		t.Errorf("profiles[0] = %+v, want LEAKY/LIKELY_LEAK", profiles[0])
	}
	if profiles[0].DropRate != 1.0 || profiles[0].FreezeDaysObserved != 2 {
		t.Errorf("LEAKY rate/observed = %v/%d, want 1.0/2", profiles[0].DropRate, profiles[0].FreezeDaysObserved)
	}
	if profiles[0].AvgDrop != 5.5 {
		t.Errorf("LEAKY AvgDrop = %v, want 5.5", profiles[0].AvgDrop)
	}
	if profiles[1].SensorID != "WOBBLY" || profiles[1].Status != models.FreezeDropWatch {
		t.Errorf("profiles[1] = %+v, want WOBBLY/WATCH", profiles[1])
	}
	if profiles[1].DropRate != 0.5 {
		t.Errorf("WOBBLY DropRate = %v, want 0.5", profiles[1].DropRate)
	}
	if profiles[2].SensorID != "SOLID" || profiles[2].Status != models.FreezeDropOk {
		t.Errorf("profiles[2] = %+v, want SOLID/OK", profiles[2])
	}
	if profiles[2].LatestVacuum != 21 {
		t.Errorf("SOLID LatestVacuum = %v, want 21", profiles[2].LatestVacuum)
	}
}

func TestDetectFreezeDropSensorsExclusions(t *testing.T) {
	readings := []models.SensorReading{
		// Freeze-day reading with no prior day: nothing to compare against.
		dailyReading("NO-BASELINE", 2024, 3, 2, 14),
		dailyReading("NO-BASELINE", 2024, 3, 3, 20),
		// Only one daily point total.
		dailyReading("SPARSE", 2024, 3, 2, 14),
		// Data exists but never touches a freeze day.
		dailyReading("OFF-SEASON", 2024, 3, 1, 20),
		dailyReading("OFF-SEASON", 2024, 3, 3, 20),
	}

	profiles := DetectFreezeDropSensors(readings, freezeTemps(), testFreezeDropParams())
	if len(profiles) != 0 {
		t.Errorf("expected no profiles, got %+v", profiles)
	}
}

func TestDetectFreezeDropSensorsNoFreezeDays(t *testing.T) {
	temps := []models.DailyTemperature{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), High: 50, Low: 40},
	}
	readings := []models.SensorReading{
		dailyReading("ML-1", 2024, 3, 1, 20),
		dailyReading("ML-1", 2024, 3, 2, 19),
	}
	if profiles := DetectFreezeDropSensors(readings, temps, testFreezeDropParams()); profiles != nil {
		t.Errorf("expected nil without freeze days, got %+v", profiles)
	}
}

func TestDetectFreezeDropSensorsTieBreakBySensorID(t *testing.T) {
	readings := []models.SensorReading{
		dailyReading("B", 2024, 3, 1, 20),
		dailyReading("B", 2024, 3, 2, 14),
		dailyReading("A", 2024, 3, 1, 20),
		dailyReading("A", 2024, 3, 2, 13),
	}

	profiles := DetectFreezeDropSensors(readings, freezeTemps(), testFreezeDropParams())
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].SensorID != "A" || profiles[1].SensorID != "B" {
		t.Errorf("order = [%s %s], want [A B]", profiles[0].SensorID, profiles[1].SensorID)
	}
}
