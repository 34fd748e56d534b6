package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type updateProfileRequest struct {
	Name            string                 `json:"name"`
	Phone           string                 `json:"phone"`
	RecordIntensity domain.RecordIntensity `json:"record_intensity"`
	StylePreference domain.Tone            `json:"style_preference"`
}

type setWeightGoalRequest struct {
	StartWeight  float64 `json:"start_weight" binding:"required"`
	TargetWeight float64 `json:"target_weight" binding:"required"`
	PeriodDays   int     `json:"period_days" binding:"required"`
}

type addWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight" binding:"required"`
	Note   string  `json:"note"`
}

type privacySettingsRequest struct {
	ShareWeight       bool `json:"share_weight"`
	ShareMeasurements bool `json:"share_measurements"`
	SharePhoto        bool `json:"share_photo"`
	ShareMood         bool `json:"share_mood"`
	ShareNote         bool `json:"share_note"`
}

type reminderSettingsRequest struct {
	CheckInReminderEnabled     bool     `json:"check_in_reminder_enabled"`
	CheckInReminderTimes       []string `json:"check_in_reminder_times"`
	PartnerCheckInNotification bool     `json:"partner_check_in_notification"`
	WeeklyRecapEnabled         bool     `json:"weekly_recap_enabled"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.PUT("/goal", h.SetWeightGoal)
		profile.GET("/goals", h.ListGoals)
	}

	weights := router.Group("/weights")
	{
		weights.POST("", h.AddWeight)
		weights.GET("", h.ListWeights)
		weights.DELETE("/:id", h.DeleteWeight)
	}

	settings := router.Group("/settings")
	{
		settings.GET("/privacy", h.GetPrivacy)
		settings.PUT("/privacy", h.UpdatePrivacy)
		settings.GET("/reminders", h.GetReminders)
		settings.PUT("/reminders", h.UpdateReminders)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateProfileInput{
		UserID:          userID,
		Name:            req.Name,
		Phone:           req.Phone,
		RecordIntensity: req.RecordIntensity,
		StylePreference: req.StylePreference,
	}

	profile, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SetWeightGoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req setWeightGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.SetWeightGoalInput{
		UserID:       userID,
		StartWeight:  req.StartWeight,
		TargetWeight: req.TargetWeight,
		PeriodDays:   req.PeriodDays,
	}

	goal, err := h.svc.SetWeightGoal(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (h *ProfileHandler) ListGoals(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	goals, err := h.svc.ListGoals(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *ProfileHandler) AddWeight(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req addWeightRequest
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

	input := services.AddWeightInput{
		UserID: userID,
		Date:   date,
		Weight: req.Weight,
		Note:   req.Note,
	}

	entry, err := h.svc.AddWeight(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *ProfileHandler) ListWeights(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	entries, err := h.svc.ListWeights(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *ProfileHandler) DeleteWeight(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	if err := h.svc.DeleteWeight(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) GetPrivacy(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	settings, err := h.svc.GetPrivacy(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ProfileHandler) UpdatePrivacy(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req privacySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &domain.PrivacySettings{
		UserID:            userID,
		ShareWeight:       req.ShareWeight,
		ShareMeasurements: req.ShareMeasurements,
		SharePhoto:        req.SharePhoto,
		ShareMood:         req.ShareMood,
		ShareNote:         req.ShareNote,
	}

	if err := h.svc.UpdatePrivacy(c.Request.Context(), settings); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ProfileHandler) GetReminders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	settings, err := h.svc.GetReminders(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ProfileHandler) UpdateReminders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req reminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &domain.ReminderSettings{
		UserID:                     userID,
		CheckInReminderEnabled:     req.CheckInReminderEnabled,
		CheckInReminderTimes:       req.CheckInReminderTimes,
		PartnerCheckInNotification: req.PartnerCheckInNotification,
		WeeklyRecapEnabled:         req.WeeklyRecapEnabled,
	}

	if err := h.svc.UpdateReminders(c.Request.Context(), settings); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
