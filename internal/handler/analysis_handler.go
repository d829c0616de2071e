package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/service"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis results
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetEffectiveness handles GET /api/v1/analysis/effectiveness
func (h *AnalysisHandler) GetEffectiveness(c *gin.Context) {
	result, err := h.analysisService.Effectiveness()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, result)
}

// GetLeaks handles GET /api/v1/analysis/leaks
// Query parameters override the configured windows and thresholds.
func (h *AnalysisHandler) GetLeaks(c *gin.Context) {
	params := h.analysisService.DefaultLeakParams()

	var ok bool
	if params.SuddenWindowHours, ok = floatQuery(c, "sudden_hours", params.SuddenWindowHours); !ok {
		response.BadRequest(c, "Invalid sudden_hours parameter")
		return
	}
	if params.SuddenThreshold, ok = floatQuery(c, "sudden_threshold", params.SuddenThreshold); !ok {
		response.BadRequest(c, "Invalid sudden_threshold parameter")
		return
	}
	if params.GradualWindowDays, ok = floatQuery(c, "gradual_days", params.GradualWindowDays); !ok {
		response.BadRequest(c, "Invalid gradual_days parameter")
		return
	}
	if params.GradualThreshold, ok = floatQuery(c, "gradual_threshold", params.GradualThreshold); !ok {
		response.BadRequest(c, "Invalid gradual_threshold parameter")
		return
	}

	events, err := h.analysisService.Leaks(params)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, events)
}

// GetClusters handles GET /api/v1/analysis/clusters
func (h *AnalysisHandler) GetClusters(c *gin.Context) {
	params := h.analysisService.DefaultClusterParams()

	var ok bool
	if params.DistanceThresholdMeters, ok = floatQuery(c, "distance_m", params.DistanceThresholdMeters); !ok {
		response.BadRequest(c, "Invalid distance_m parameter")
		return
	}
	if params.VacuumThreshold, ok = floatQuery(c, "vacuum_threshold", params.VacuumThreshold); !ok {
		response.BadRequest(c, "Invalid vacuum_threshold parameter")
		return
	}
	if raw := c.Query("min_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "Invalid min_size parameter")
			return
		}
		params.MinClusterSize = n
	}

	result, err := h.analysisService.Clusters(params)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, result)
}

// GetFreezeStatus handles GET /api/v1/analysis/freeze/status
func (h *AnalysisHandler) GetFreezeStatus(c *gin.Context) {
	status, err := h.analysisService.FreezeStatus(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, status)
}

// GetFreezeDrops handles GET /api/v1/analysis/freeze/drops
func (h *AnalysisHandler) GetFreezeDrops(c *gin.Context) {
	profiles, err := h.analysisService.FreezeDrops()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, profiles)
}

// GetProblemSensors handles GET /api/v1/sensors/problems
func (h *AnalysisHandler) GetProblemSensors(c *gin.Context) {
	problems, err := h.analysisService.ProblemSensors()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, problems)
}

// floatQuery parses an optional float query parameter, returning the
// fallback when absent. The bool is false on a malformed value.
func floatQuery(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
