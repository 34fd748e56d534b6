package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

type CheckInHandler struct {
	svc        *services.CheckInService
	milestones domain.MilestoneRepository
}

func NewCheckInHandler(svc *services.CheckInService, milestones domain.MilestoneRepository) *CheckInHandler {
	return &CheckInHandler{
		svc:        svc,
		milestones: milestones,
	}
}

type submitCheckInRequest struct {
	Date         string                `json:"date"`
	Exercises    []domain.ExerciseType `json:"exercises"`
	Diet         domain.DietType       `json:"diet"`
	Water        *bool                 `json:"water"`
	Sleep        domain.SleepQuality   `json:"sleep"`
	Mood         domain.MoodType       `json:"mood"`
	Note         string                `json:"note"`
	Weight       *float64              `json:"weight"`
	Measurements *domain.Measurements  `json:"measurements"`
	Photo        string                `json:"photo"`
}

func (h *CheckInHandler) RegisterRoutes(router *gin.RouterGroup) {
	checkins := router.Group("/checkins")
	{
		checkins.POST("", h.Submit)
		checkins.GET("", h.ListRange)
		checkins.GET("/today", h.Today)
		checkins.GET("/:date", h.GetByDate)
	}

	progress := router.Group("/progress")
	{
		progress.GET("/streak", h.Streak)
		progress.GET("/churn", h.ChurnRisk)
		progress.GET("/milestones", h.ListMilestones)
	}
}

func (h *CheckInHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req submitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date domain.Date
	if req.Date != "" {
		var err error
		date, err = domain.ParseDate(req.Date)
		if err != nil {
			handleError(c, err)
			return
		}
	}

	input := services.SubmitCheckInInput{
		UserID:       userID,
		Date:         date,
		Exercises:    req.Exercises,
		Diet:         req.Diet,
		Water:        req.Water,
		Sleep:        req.Sleep,
		Mood:         req.Mood,
		Note:         req.Note,
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Photo:        req.Photo,
	}

	result, err := h.svc.Submit(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CheckInHandler) Today(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	entry, err := h.svc.GetByDate(c.Request.Context(), userID, domain.Today())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *CheckInHandler) GetByDate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	entry, err := h.svc.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *CheckInHandler) ListRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	from, err := domain.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, use YYYY-MM-DD"})
		return
	}
	to, err := domain.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, use YYYY-MM-DD"})
		return
	}

	entries, err := h.svc.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *CheckInHandler) Streak(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	streak, err := h.svc.Streak(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

func (h *CheckInHandler) ChurnRisk(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	risk, err := h.svc.ChurnRisk(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, risk)
}

func (h *CheckInHandler) ListMilestones(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	milestones, err := h.milestones.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, milestones)
}
