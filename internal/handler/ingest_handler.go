package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/repository"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/pkg/response"
)

// IngestHandler handles HTTP requests that load raw tables into storage
type IngestHandler struct {
	readingRepo *repository.ReadingRepository
	sessionRepo *repository.SessionRepository
	tempRepo    *repository.TemperatureRepository
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(
	readingRepo *repository.ReadingRepository,
	sessionRepo *repository.SessionRepository,
	tempRepo *repository.TemperatureRepository,
) *IngestHandler {
	return &IngestHandler{
		readingRepo: readingRepo,
		sessionRepo: sessionRepo,
		tempRepo:    tempRepo,
	}
}

// PostReadings handles POST /api/v1/ingest/readings
func (h *IngestHandler) PostReadings(c *gin.Context) {
	var readings []models.SensorReading
	if err := c.ShouldBindJSON(&readings); err != nil {
		response.BadRequest(c, "Invalid reading payload: "+err.Error())
		return
	}

	if err := h.readingRepo.InsertBatch(readings); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"inserted": len(readings)})
}

// PostSessions handles POST /api/v1/ingest/sessions
func (h *IngestHandler) PostSessions(c *gin.Context) {
	var sessions []models.WorkSession
	if err := c.ShouldBindJSON(&sessions); err != nil {
		response.BadRequest(c, "Invalid session payload: "+err.Error())
		return
	}

	if err := h.sessionRepo.InsertBatch(sessions); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"inserted": len(sessions)})
}

// PostTemperatures handles POST /api/v1/ingest/temperatures
func (h *IngestHandler) PostTemperatures(c *gin.Context) {
	var temps []models.DailyTemperature
	if err := c.ShouldBindJSON(&temps); err != nil {
		response.BadRequest(c, "Invalid temperature payload: "+err.Error())
		return
	}

	if err := h.tempRepo.UpsertBatch(temps); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"upserted": len(temps)})
}
