package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/adapters/handler/http/middleware"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/services"
)

type BindingHandler struct {
	svc *services.BindingService
}

func NewBindingHandler(svc *services.BindingService) *BindingHandler {
	return &BindingHandler{svc: svc}
}

type joinBindingRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *BindingHandler) RegisterRoutes(router *gin.RouterGroup) {
	binding := router.Group("/binding")
	{
		binding.POST("", h.Create)
		binding.POST("/join", h.Join)
		binding.GET("", h.Get)
		binding.DELETE("", h.Unbind)
	}
}

func (h *BindingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	binding, err := h.svc.Create(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, binding)
}

func (h *BindingHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	var req joinBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	binding, err := h.svc.Join(c.Request.Context(), userID, req.Code)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, binding)
}

func (h *BindingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	binding, err := h.svc.Active(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, binding)
}

func (h *BindingHandler) Unbind(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userContextMissing(c)
		return
	}

	if err := h.svc.Unbind(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
