package models

import "time"

// SensorReading is one vacuum telemetry sample from a mainline sensor.
// Readings arrive already deduplicated; input order is not guaranteed.
type SensorReading struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	SensorID  string    `json:"sensor_id" db:"sensor_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	// Vacuum in inches of mercury. 0 means the sensor was offline or errored.
	Vacuum               float64 `json:"vacuum" db:"vacuum"`
	Latitude             float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude            float64 `json:"longitude,omitempty" db:"longitude"`
	ReleaserDifferential float64 `json:"releaser_differential,omitempty" db:"releaser_differential"`
}

// WorkSession is one logged unit of field work on a mainline.
type WorkSession struct {
	ID         int64  `json:"id,omitempty" db:"id"`
	EmployeeID string `json:"employee_id" db:"employee_id"`
	LocationID string `json:"location_id" db:"location_id"`
	// Date is the calendar day the work happened. A zero Date marks an
	// unparsable source value; such sessions are dropped before matching.
	Date    time.Time `json:"date" db:"date"`
	Hours   float64   `json:"hours,omitempty" db:"hours"`
	JobCode string    `json:"job_code,omitempty" db:"job_code"`
}

// DailyTemperature is one day's temperature extremes in Fahrenheit.
type DailyTemperature struct {
	Date time.Time `json:"date" db:"date"`
	High float64   `json:"high" db:"high"`
	Low  float64   `json:"low" db:"low"`
}

// DayKey formats a timestamp as the calendar-day bucket key used by all
// daily aggregation in the analysis engines.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
