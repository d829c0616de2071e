package analysis

import (
	"sort"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/spatial"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/stats"
)

// ClusterParams configures problem-cluster detection.
type ClusterParams struct {
	DistanceThresholdMeters float64
	MinClusterSize          int
	VacuumThreshold         float64
	Region                  spatial.BoundingBox
}

// sensorSnapshot is one sensor's most recent usable reading.
type sensorSnapshot struct {
	SensorID string
	Vacuum   float64
	Lat      float64
	Lon      float64
}

// FindProblemClusters groups geographically close, concurrently
// underperforming sensors into problem clusters.
//
// Only each sensor's single latest reading is considered. Readings at
// (0,0) or outside the service region are dropped as bad GPS data and
// counted in FilteredSensors. Growth is single-linkage with one hop: each
// unvisited seed absorbs every unvisited sensor within the distance
// threshold of the seed itself, without re-expanding from absorbed
// members. Groups smaller than MinClusterSize are discarded and their
// members stay available to seed or join later groups.
//
// Traversal order is the sorted sensor ID list, so output is
// deterministic for identical input.
func FindProblemClusters(readings []models.SensorReading, p ClusterParams) models.ClusterResult {
	result := models.ClusterResult{Clusters: []models.ProblemCluster{}}

	latest := make(map[string]models.SensorReading)
	for _, r := range readings {
		if r.Timestamp.IsZero() {
			continue
		}
		id := NormalizeLocation(r.SensorID)
		if prev, ok := latest[id]; !ok || r.Timestamp.After(prev.Timestamp) {
			latest[id] = r
		}
	}

	ids := make([]string, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var snap []sensorSnapshot
	for _, id := range ids {
		r := latest[id]
		if !spatial.ValidCoordinate(r.Latitude, r.Longitude, p.Region) {
			result.FilteredSensors++
			continue
		}
		if r.Vacuum >= p.VacuumThreshold {
			continue
		}
		snap = append(snap, sensorSnapshot{
			SensorID: id,
			Vacuum:   r.Vacuum,
			Lat:      r.Latitude,
			Lon:      r.Longitude,
		})
	}
	result.ProblemSensors = len(snap)

	if len(snap) < p.MinClusterSize {
		return result
	}

	used := make([]bool, len(snap))
	for i := range snap {
		if used[i] {
			continue
		}

		members := []int{i}
		for j := range snap {
			if j == i || used[j] {
				continue
			}
			dist := spatial.HaversineDistance(snap[i].Lat, snap[i].Lon, snap[j].Lat, snap[j].Lon)
			if dist <= p.DistanceThresholdMeters {
				members = append(members, j)
			}
		}

		if len(members) < p.MinClusterSize {
			continue
		}
		for _, m := range members {
			used[m] = true
		}

		var names []string
		var vacuums, lats, lons []float64
		for _, m := range members {
			names = append(names, snap[m].SensorID)
			vacuums = append(vacuums, snap[m].Vacuum)
			lats = append(lats, snap[m].Lat)
			lons = append(lons, snap[m].Lon)
		}
		centerLat, centerLon := spatial.Centroid(lats, lons)

		result.Clusters = append(result.Clusters, models.ProblemCluster{
			ClusterID:   len(result.Clusters) + 1,
			SensorCount: len(members),
			Sensors:     names,
			AvgVacuum:   stats.Mean(vacuums),
			MinVacuum:   stats.Min(vacuums),
			MaxVacuum:   stats.Max(vacuums),
			CenterLat:   centerLat,
			CenterLon:   centerLon,
		})
	}

	return result
}
