package config

import (
	"os"
	"strconv"
)

// Config holds server settings and the analysis thresholds.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Vacuum below this is "poor" and feeds clustering and problem lists.
	VacuumFairThreshold float64

	// Leak detection windows and thresholds.
	SuddenWindowHours float64
	SuddenThreshold   float64
	GradualWindowDays float64
	GradualThreshold  float64

	// Geo clustering.
	ClusterDistanceMeters float64
	MinClusterSize        int

	// Freeze/thaw analysis. FreezingPoint is Fahrenheit.
	FreezingPoint       float64
	FreezeDropThreshold float64
	FreezeRateWatch     float64
	FreezeRateLikely    float64

	// Bounding box used to reject bad GPS coordinates before clustering.
	RegionLatMin float64
	RegionLatMax float64
	RegionLonMin float64
	RegionLonMax float64

	// Default site coordinates for weather lookups.
	SiteLatitude  float64
	SiteLongitude float64
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", ":8080"),
		DBPath:    getEnv("DB_PATH", "./data/vacuum.db"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),

		VacuumFairThreshold: getEnvFloat("VACUUM_FAIR_THRESHOLD", 15.0),

		SuddenWindowHours: getEnvFloat("SUDDEN_WINDOW_HOURS", 6),
		SuddenThreshold:   getEnvFloat("SUDDEN_THRESHOLD", 5.0),
		GradualWindowDays: getEnvFloat("GRADUAL_WINDOW_DAYS", 7),
		GradualThreshold:  getEnvFloat("GRADUAL_THRESHOLD", 3.0),

		ClusterDistanceMeters: getEnvFloat("CLUSTER_DISTANCE_M", 100),
		MinClusterSize:        getEnvInt("MIN_CLUSTER_SIZE", 3),

		FreezingPoint:       getEnvFloat("FREEZING_POINT", 32.0),
		FreezeDropThreshold: getEnvFloat("FREEZE_DROP_THRESHOLD", 3.0),
		FreezeRateWatch:     getEnvFloat("FREEZE_RATE_WATCH", 0.30),
		FreezeRateLikely:    getEnvFloat("FREEZE_RATE_LIKELY", 0.60),

		RegionLatMin: getEnvFloat("REGION_LAT_MIN", 40.0),
		RegionLatMax: getEnvFloat("REGION_LAT_MAX", 45.0),
		RegionLonMin: getEnvFloat("REGION_LON_MIN", -80.0),
		RegionLonMax: getEnvFloat("REGION_LON_MAX", -72.0),

		SiteLatitude:  getEnvFloat("SITE_LATITUDE", 42.8),
		SiteLongitude: getEnvFloat("SITE_LONGITUDE", -76.5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
