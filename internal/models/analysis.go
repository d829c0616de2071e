package models

import "time"

// UnknownLocation is the sentinel for blank or missing location identifiers.
const UnknownLocation = "UNKNOWN"

// EffectivenessRecord is one matched work session with its before/after
// vacuum aggregates. Improvement is after minus before, so positive means
// the work raised vacuum.
type EffectivenessRecord struct {
	EmployeeID   string    `json:"employee_id"`
	LocationID   string    `json:"location_id"`
	WorkDate     time.Time `json:"work_date"`
	VacuumBefore float64   `json:"vacuum_before"`
	VacuumAfter  float64   `json:"vacuum_after"`
	Improvement  float64   `json:"improvement"`
	Hours        float64   `json:"hours,omitempty"`
}

// EffectivenessDiagnostics are the join-troubleshooting counters emitted
// alongside effectiveness records. Operators read these to diagnose
// location naming mismatches between timesheets and sensor exports.
type EffectivenessDiagnostics struct {
	TotalSessions    int `json:"total_sessions"`
	SessionLocations int `json:"session_locations"`
	SensorLocations  int `json:"sensor_locations"`
	MatchedLocations int `json:"matched_locations"`
	NoMatchCount     int `json:"no_match_count"`
	NoBeforeCount    int `json:"no_before_count"`
	NoAfterCount     int `json:"no_after_count"`
	SuccessCount     int `json:"success_count"`
}

// LeakKind distinguishes a fast collapse from a slow decline.
type LeakKind string

const (
	LeakSudden  LeakKind = "SUDDEN"
	LeakGradual LeakKind = "GRADUAL"
)

// LeakSeverity ranks detected leaks for dispatch.
type LeakSeverity string

const (
	SeverityCritical LeakSeverity = "CRITICAL"
	SeverityHigh     LeakSeverity = "HIGH"
	SeverityMedium   LeakSeverity = "MEDIUM"
)

// LeakEvent is one detected leak on one sensor. A sensor produces at most
// one event per call: sudden takes priority over gradual.
type LeakEvent struct {
	SensorID        string       `json:"sensor_id"`
	Kind            LeakKind     `json:"kind"`
	CurrentVacuum   float64      `json:"current_vacuum"`
	ReferenceVacuum float64      `json:"reference_vacuum"`
	Drop            float64      `json:"drop"`
	Window          string       `json:"window"`
	Severity        LeakSeverity `json:"severity"`
	DetectedAt      time.Time    `json:"detected_at"`
	// Priority orders output: 1 for sudden, 2 for gradual.
	Priority int `json:"priority"`
}

// ProblemCluster is a group of geographically close, concurrently
// underperforming sensors found by single-linkage growth.
type ProblemCluster struct {
	ClusterID   int      `json:"cluster_id"`
	SensorCount int      `json:"sensor_count"`
	Sensors     []string `json:"sensors"`
	AvgVacuum   float64  `json:"avg_vacuum"`
	MinVacuum   float64  `json:"min_vacuum"`
	MaxVacuum   float64  `json:"max_vacuum"`
	CenterLat   float64  `json:"center_lat"`
	CenterLon   float64  `json:"center_lon"`
}

// ClusterResult bundles clusters with the sanity-filter counter.
type ClusterResult struct {
	Clusters        []ProblemCluster `json:"clusters"`
	FilteredSensors int              `json:"filtered_sensors"`
	ProblemSensors  int              `json:"problem_sensors"`
}

// FreezeLabel is today's monitoring priority.
type FreezeLabel string

const (
	FreezeCritical    FreezeLabel = "CRITICAL"
	FreezeUpcoming    FreezeLabel = "UPCOMING"
	FreezeLowPriority FreezeLabel = "LOW_PRIORITY"
	FreezeUnknown     FreezeLabel = "UNKNOWN"
)

// FreezeStatus is the current day's freeze/thaw classification. It is
// recomputed on demand and never persisted.
type FreezeStatus struct {
	IsFreezeThaw       bool        `json:"is_freeze_thaw"`
	TodayHigh          *float64    `json:"today_high"`
	TodayLow           *float64    `json:"today_low"`
	TomorrowHigh       *float64    `json:"tomorrow_high"`
	TomorrowLow        *float64    `json:"tomorrow_low"`
	TomorrowFreezeThaw bool        `json:"tomorrow_freeze_thaw"`
	SapFlowScore       int         `json:"sap_flow_score"`
	Label              FreezeLabel `json:"label"`
}

// FreezeDropStatus classifies a sensor's freeze-day drop history.
type FreezeDropStatus string

const (
	FreezeDropLikelyLeak FreezeDropStatus = "LIKELY_LEAK"
	FreezeDropWatch      FreezeDropStatus = "WATCH"
	FreezeDropOk         FreezeDropStatus = "OK"
)

// FreezeDropProfile summarizes how often a sensor's vacuum drops on
// freeze/thaw days. Sensors with no qualifying freeze day are excluded
// from output rather than reported as Ok.
type FreezeDropProfile struct {
	SensorID           string           `json:"sensor_id"`
	AvgDrop            float64          `json:"avg_drop"`
	FreezeDaysObserved int              `json:"freeze_days_observed"`
	FreezeDaysWithDrop int              `json:"freeze_days_with_drop"`
	DropRate           float64          `json:"drop_rate"`
	LatestVacuum       float64          `json:"latest_vacuum"`
	Status             FreezeDropStatus `json:"status"`
}
