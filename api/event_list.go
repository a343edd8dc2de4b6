package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) EventList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var events []model.Event

	if err := a.DB.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch events from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, events)
}
