package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/analysis"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/config"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/repository"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/spatial"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/weather"
)

// AnalysisService loads the raw tables, runs the pure analysis engines and
// memoizes results. The engines themselves hold no cross-call state; all
// caching lives here, keyed by a content hash of inputs and parameters.
type AnalysisService struct {
	cfg           *config.Config
	readingRepo   *repository.ReadingRepository
	sessionRepo   *repository.SessionRepository
	tempRepo      *repository.TemperatureRepository
	weatherClient *weather.Client
	cache         *resultCache
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	cfg *config.Config,
	readingRepo *repository.ReadingRepository,
	sessionRepo *repository.SessionRepository,
	tempRepo *repository.TemperatureRepository,
	weatherClient *weather.Client,
) *AnalysisService {
	return &AnalysisService{
		cfg:           cfg,
		readingRepo:   readingRepo,
		sessionRepo:   sessionRepo,
		tempRepo:      tempRepo,
		weatherClient: weatherClient,
		cache:         newResultCache(5 * time.Minute),
	}
}

// EffectivenessResult pairs the records with their diagnostics.
type EffectivenessResult struct {
	Records     []models.EffectivenessRecord    `json:"records"`
	Diagnostics models.EffectivenessDiagnostics `json:"diagnostics"`
}

// Effectiveness correlates work sessions with before/after vacuum averages.
func (s *AnalysisService) Effectiveness() (*EffectivenessResult, error) {
	sessions, err := s.sessionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load work sessions: %w", err)
	}
	readings, err := s.readingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor readings: %w", err)
	}

	key := cacheKey("effectiveness", sessions, readings)
	if cached, ok := s.cache.get(key); ok {
		return cached.(*EffectivenessResult), nil
	}

	records, diag := analysis.CorrelateEffectiveness(sessions, readings)
	log.Printf("[AnalysisService] Effectiveness: %d/%d sessions matched (no-match=%d no-before=%d no-after=%d)",
		diag.SuccessCount, diag.TotalSessions, diag.NoMatchCount, diag.NoBeforeCount, diag.NoAfterCount)

	result := &EffectivenessResult{Records: records, Diagnostics: diag}
	s.cache.put(key, result)
	return result, nil
}

// Leaks runs sudden and gradual leak detection over all stored readings.
func (s *AnalysisService) Leaks(params analysis.LeakParams) ([]models.LeakEvent, error) {
	readings, err := s.readingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor readings: %w", err)
	}

	key := cacheKey("leaks", params, readings)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]models.LeakEvent), nil
	}

	events := analysis.DetectLeaks(readings, params)
	log.Printf("[AnalysisService] Leak detection: %d events across %d readings", len(events), len(readings))

	s.cache.put(key, events)
	return events, nil
}

// DefaultLeakParams builds leak parameters from configuration.
func (s *AnalysisService) DefaultLeakParams() analysis.LeakParams {
	return analysis.LeakParams{
		SuddenWindowHours: s.cfg.SuddenWindowHours,
		SuddenThreshold:   s.cfg.SuddenThreshold,
		GradualWindowDays: s.cfg.GradualWindowDays,
		GradualThreshold:  s.cfg.GradualThreshold,
	}
}

// Clusters groups underperforming sensors into geographic problem clusters.
func (s *AnalysisService) Clusters(params analysis.ClusterParams) (*models.ClusterResult, error) {
	readings, err := s.readingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor readings: %w", err)
	}

	key := cacheKey("clusters", params, readings)
	if cached, ok := s.cache.get(key); ok {
		return cached.(*models.ClusterResult), nil
	}

	result := analysis.FindProblemClusters(readings, params)
	log.Printf("[AnalysisService] Clustering: %d clusters from %d problem sensors (%d filtered)",
		len(result.Clusters), result.ProblemSensors, result.FilteredSensors)

	s.cache.put(key, &result)
	return &result, nil
}

// DefaultClusterParams builds clustering parameters from configuration.
func (s *AnalysisService) DefaultClusterParams() analysis.ClusterParams {
	return analysis.ClusterParams{
		DistanceThresholdMeters: s.cfg.ClusterDistanceMeters,
		MinClusterSize:          s.cfg.MinClusterSize,
		VacuumThreshold:         s.cfg.VacuumFairThreshold,
		Region: spatial.BoundingBox{
			LatMin: s.cfg.RegionLatMin,
			LatMax: s.cfg.RegionLatMax,
			LonMin: s.cfg.RegionLonMin,
			LonMax: s.cfg.RegionLonMax,
		},
	}
}

// FreezeStatus fetches the two-day forecast and classifies today's
// monitoring priority. Never cached: the forecast itself moves.
func (s *AnalysisService) FreezeStatus(ctx context.Context) (models.FreezeStatus, error) {
	forecast, err := s.weatherClient.FetchDailyForecast(ctx, s.cfg.SiteLatitude, s.cfg.SiteLongitude, 2)
	if err != nil {
		// Weather unavailable degrades to UNKNOWN, not an error page.
		log.Printf("[AnalysisService] Weather fetch failed: %v", err)
		return analysis.ClassifyFreezeStatus(nil, nil, nil, nil, s.cfg.FreezingPoint), nil
	}

	return analysis.ClassifyFreezeStatus(
		forecast.TodayHigh, forecast.TodayLow,
		forecast.TomorrowHigh, forecast.TomorrowLow,
		s.cfg.FreezingPoint,
	), nil
}

// FreezeDrops identifies sensors whose vacuum drops on freeze/thaw days.
func (s *AnalysisService) FreezeDrops() ([]models.FreezeDropProfile, error) {
	readings, err := s.readingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor readings: %w", err)
	}
	temps, err := s.tempRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load daily temperatures: %w", err)
	}

	params := analysis.FreezeDropParams{
		FreezingPoint: s.cfg.FreezingPoint,
		DropThreshold: s.cfg.FreezeDropThreshold,
		RateWatch:     s.cfg.FreezeRateWatch,
		RateLikely:    s.cfg.FreezeRateLikely,
	}

	key := cacheKey("freeze_drops", params, readings, temps)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]models.FreezeDropProfile), nil
	}

	profiles := analysis.DetectFreezeDropSensors(readings, temps, params)
	log.Printf("[AnalysisService] Freeze drops: %d sensors profiled over %d temperature days",
		len(profiles), len(temps))

	s.cache.put(key, profiles)
	return profiles, nil
}

// ProblemSensor is one sensor currently reading below the fair threshold.
type ProblemSensor struct {
	SensorID string    `json:"sensor_id"`
	Vacuum   float64   `json:"vacuum"`
	LastSeen time.Time `json:"last_seen"`
}

// ProblemSensors lists sensors whose latest reading sits below the fair
// vacuum threshold, worst first.
func (s *AnalysisService) ProblemSensors() ([]ProblemSensor, error) {
	readings, err := s.readingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensor readings: %w", err)
	}

	latest := make(map[string]models.SensorReading)
	for _, r := range readings {
		if r.Timestamp.IsZero() {
			continue
		}
		id := analysis.NormalizeLocation(r.SensorID)
		if prev, ok := latest[id]; !ok || r.Timestamp.After(prev.Timestamp) {
			latest[id] = r
		}
	}

	var problems []ProblemSensor
	for id, r := range latest {
		if r.Vacuum < s.cfg.VacuumFairThreshold {
			problems = append(problems, ProblemSensor{
				SensorID: id,
				Vacuum:   r.Vacuum,
				LastSeen: r.Timestamp,
			})
		}
	}
	sort.Slice(problems, func(i, j int) bool {
		if problems[i].Vacuum != problems[j].Vacuum {
			return problems[i].Vacuum < problems[j].Vacuum
		}
		return problems[i].SensorID < problems[j].SensorID
	})
	return problems, nil
}
