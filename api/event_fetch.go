package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) EventFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	eventID := c.Param("id")

	var event model.Event

	err := a.DB.
		Where("id = ?", eventID).
		First(&event).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Event not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch event from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, event)
}
