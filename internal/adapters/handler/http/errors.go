package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// handleError maps domain errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body; the real error goes to the gin error log.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoFacetSelected),
		errors.Is(err, domain.ErrDateOutOfWindow),
		errors.Is(err, domain.ErrInvalidFacetValue),
		errors.Is(err, domain.ErrNoteTooLong),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmptyBindCode),
		errors.Is(err, domain.ErrInvalidBindCode),
		errors.Is(err, domain.ErrInvalidCheerType),
		errors.Is(err, domain.ErrCheerToSelf),
		errors.Is(err, domain.ErrInvalidGoalType),
		errors.Is(err, domain.ErrInvalidTargetValue),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidReminder),
		errors.Is(err, domain.ErrInvalidIntensity),
		errors.Is(err, domain.ErrInvalidStyle),
		errors.Is(err, domain.ErrInvalidGoalWeight),
		errors.Is(err, domain.ErrInvalidGoalPeriod),
		errors.Is(err, domain.ErrNameEmpty),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})

	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrCheckInNotFound),
		errors.Is(err, domain.ErrBindingNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrCoupleGoalNotFound),
		errors.Is(err, domain.ErrWeightEntryNotFound),
		errors.Is(err, domain.ErrCheerCardNotFound),
		errors.Is(err, domain.ErrRecapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrAlreadyBound),
		errors.Is(err, domain.ErrInvalidOrUsedCode),
		errors.Is(err, domain.ErrBindingNotPending),
		errors.Is(err, domain.ErrBindingNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func userContextMissing(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
}
