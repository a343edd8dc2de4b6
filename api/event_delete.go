package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) EventDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	eventID := c.Param("id")

	err := a.DB.
		Where("id = ?", eventID).
		Delete(model.Event{}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event " + eventID + " deleted.",
	})
}
