package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

type CoupleHandler struct {
	couple *services.CoupleService
	cheers *services.CheerService
}

func NewCoupleHandler(couple *services.CoupleService, cheers *services.CheerService) *CoupleHandler {
	return &CoupleHandler{
		couple: couple,
		cheers: cheers,
	}
}

type upsertCoupleGoalRequest struct {
	Type         domain.GoalType `json:"type" binding:"required"`
	TargetValue  float64         `json:"target_value"`
	CurrentValue float64         `json:"current_value"`
}

type sendCheerRequest struct {
	Type domain.CheerType `json:"type"`
	Tone domain.Tone      `json:"tone"`
}

func (h *CoupleHandler) RegisterRoutes(router *gin.RouterGroup) {
	couple := router.Group("/couple")
	{
		couple.GET("/partner/today", h.PartnerToday)
		couple.PUT("/goals", h.UpsertGoal)
		couple.GET("/goals", h.ListGoals)
	}

	cheers := router.Group("/cheers")
	{
		cheers.POST("", h.SendCheer)
		cheers.GET("", h.ListCheers)
		cheers.PUT("/:id/read", h.MarkCheerRead)
	}
}

func (h *CoupleHandler) PartnerToday(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	view, err := h.couple.PartnerToday(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CoupleHandler) UpsertGoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req upsertCoupleGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpsertCoupleGoalInput{
		UserID:       userID,
		Type:         req.Type,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
	}

	goal, err := h.couple.UpsertCoupleGoal(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (h *CoupleHandler) ListGoals(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	goals, err := h.couple.ListCoupleGoals(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *CoupleHandler) SendCheer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req sendCheerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.SendCheerInput{
		FromUserID: userID,
		Type:       req.Type,
		Tone:       req.Tone,
	}

	card, err := h.cheers.Send(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *CoupleHandler) ListCheers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	direction := domain.CheerDirection(c.Query("direction"))

	cards, err := h.cheers.ListForUser(c.Request.Context(), userID, direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *CoupleHandler) MarkCheerRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	if err := h.cheers.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
