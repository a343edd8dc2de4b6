package api

import (
	"net/http"

	"parasport/games-api/model"
	"parasport/games-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) RegionCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var region model.Region
	if err := c.BindJSON(&region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.RegionValidator(&region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Create(&region).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create region", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Region added with NOC= " + region.NOC,
	})
}
