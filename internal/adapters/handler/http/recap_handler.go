package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

type RecapHandler struct {
	svc *services.RecapService
}

func NewRecapHandler(svc *services.RecapService) *RecapHandler {
	return &RecapHandler{svc: svc}
}

func (h *RecapHandler) RegisterRoutes(router *gin.RouterGroup) {
	recaps := router.Group("/recaps")
	{
		recaps.GET("/current", h.Current)
		recaps.GET("", h.GetByWeek)
		recaps.POST("/generate", h.Generate)
	}
}

// Current returns this week's stored recap, generating it on the fly when
// no check-in has triggered one yet.
func (h *RecapHandler) Current(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	recap, err := h.svc.GetForWeek(c.Request.Context(), userID, domain.Today())
	if err == nil {
		c.JSON(http.StatusOK, recap)
		return
	}

	recap, err = h.svc.Generate(c.Request.Context(), userID, domain.Today())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recap)
}

func (h *RecapHandler) GetByWeek(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	anchor, err := domain.ParseDate(c.Query("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week date, use YYYY-MM-DD"})
		return
	}

	recap, err := h.svc.GetForWeek(c.Request.Context(), userID, anchor)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recap)
}

func (h *RecapHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	anchor := domain.Today()
	if week := c.Query("week"); week != "" {
		var err error
		anchor, err = domain.ParseDate(week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week date, use YYYY-MM-DD"})
			return
		}
	}

	recap, err := h.svc.Generate(c.Request.Context(), userID, anchor)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recap)
}
