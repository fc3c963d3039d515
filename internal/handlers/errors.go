package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to a status code. Server-side failures
// get a generic message; the detail only goes to the log.
func respondError(c *gin.Context, err error, publicMsg string) {
	status := apperrors.StatusCode(err)
	_ = c.Error(err)

	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error(publicMsg, zap.Error(err))
		c.JSON(status, gin.H{"error": publicMsg})
		return
	}

	msg := err.Error()
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		msg = "Not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		msg = "Unauthorized"
	}
	c.JSON(status, gin.H{"error": msg})
}
