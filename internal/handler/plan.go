package handler

import (
	"errors"
	"net/http"
	"strconv"

	"fit-trainer/internal/logger"
	"fit-trainer/internal/model"
	"fit-trainer/internal/oracle"
	"fit-trainer/internal/service"

	"github.com/gin-gonic/gin"
)

const notConfiguredMsg = "Azure OpenAI is not configured. Check env vars."

type PlanHandler struct {
	svc     *service.PlanService
	history *service.HistoryService
}

func NewPlanHandler(svc *service.PlanService, history *service.HistoryService) *PlanHandler {
	return &PlanHandler{svc: svc, history: history}
}

// GET /api/user
func (h *PlanHandler) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Profile())
}

// POST /api/plan/generate
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cal, err := h.svc.Generate(c.Request.Context(), profile)
	if err != nil {
		logger.Error("plan.generate failed", "err", err)
		if errors.Is(err, oracle.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": notConfiguredMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan", "detail": err.Error()})
		return
	}

	logger.Info("plan.generate", "startDate", cal.Meta.StartDate, "days", len(cal.Calendar))
	c.JSON(http.StatusOK, cal)
}

// POST /api/fitTrAIner
func (h *PlanHandler) Override(c *gin.Context) {
	var req model.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	messages, err := h.svc.ApplyOverride(c.Request.Context(), req.Input)
	if err != nil {
		if errors.Is(err, service.ErrEmptyInstruction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a non-empty instruction."})
			return
		}
		logger.Error("plan.override failed", "err", err)
		if errors.Is(err, oracle.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": notConfiguredMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan", "detail": err.Error()})
		return
	}

	logger.Info("plan.override", "turns", len(messages))
	c.JSON(http.StatusOK, model.OverrideResponse{Messages: messages})
}

// GET /api/events?year=YYYY&month=MM
func (h *PlanHandler) GetEvents(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 || year < 1900 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide valid year (e.g., 2025) and month (1-12)."})
		return
	}

	events, err := service.ProjectEvents(h.svc.Calendar())
	if err != nil {
		logger.Error("events.project failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project events", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.EventsResponse{Events: service.EventsForMonth(events, year, month)})
}

// GET /api/plan/history
func (h *PlanHandler) GetHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, []model.PlanSnapshot{})
		return
	}
	snaps, err := h.history.Recent(c.Request.Context(), 50)
	if err != nil {
		logger.Error("plan.history failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history", "detail": err.Error()})
		return
	}
	if snaps == nil {
		snaps = []model.PlanSnapshot{}
	}
	c.JSON(http.StatusOK, snaps)
}
