package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegionList returns every region. Public, served from the response
// cache for a short while.
func (a *API) RegionList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var regions []model.Region

	if err := a.DB.Find(&regions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch regions from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, regions)
}
